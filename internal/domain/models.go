package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Broker struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID       int    `db:"id"`
	BrokerID int    `db:"broker_id"`
	Number   string `db:"number"`
	Balance  int64  `db:"balance"`
}

const (
	TxTypeSignupBonus     string = "signup_bonus"
	TxTypePurchase        string = "purchase"
	TxTypeDebit           string = "debit"
	TxTypeBidDebit        string = "bid_debit"
	TxTypeRefund          string = "refund"
	TxTypeAdminAdjustment string = "admin_adjustment"
)

const (
	TxStatusPending   string = "pending"
	TxStatusCompleted string = "completed"
	TxStatusFailed    string = "failed"
)

// Transaction is one immutable balance change. Amount is signed; BalanceAfter
// snapshots the wallet balance right after the change, so replaying the log in
// creation order reproduces the balance.
type Transaction struct {
	ID             int       `db:"id"`
	WalletID       int       `db:"wallet_id"`
	Type           string    `db:"type"`
	Amount         int64     `db:"amount"`
	BalanceAfter   int64     `db:"balance_after"`
	Status         string    `db:"status"`
	Description    string    `db:"description"`
	IdempotencyKey *string   `db:"idempotency_key"`
	RefundOf       *string   `db:"refund_of"`
	OrderID        *string   `db:"order_id"`
	PaymentID      *string   `db:"payment_id"`
	CreatedAt      time.Time `db:"created_at"`
}

const (
	BidStatusActive   string = "ACTIVE"
	BidStatusRefunded string = "REFUNDED"
)

type Bid struct {
	ID              int        `db:"id"`
	BrokerID        int        `db:"broker_id"`
	EnquiryID       int        `db:"enquiry_id"`
	CreditsUsed     int64      `db:"credits_used"`
	Status          string     `db:"status"`
	Rank            *int       `db:"rank"`
	IsOnLeaderboard bool       `db:"is_on_leaderboard"`
	RefundedAt      *time.Time `db:"refunded_at"`
	CreatedAt       time.Time  `db:"created_at"`
}

const (
	EnquiryStatusOpen      string = "OPEN"
	EnquiryStatusClosed    string = "CLOSED"
	EnquiryStatusCancelled string = "CANCELLED"
)

type Enquiry struct {
	ID          int       `db:"id"`
	BrokerID    int       `db:"broker_id"`
	Title       string    `db:"title"`
	Status      string    `db:"status"`
	BidDeadline time.Time `db:"bid_deadline"`
	CreatedAt   time.Time `db:"created_at"`
}

// LeaderboardEntry is derived from the active bids of one enquiry; it is never
// stored.
type LeaderboardEntry struct {
	Rank        int
	BidID       int
	BrokerID    int
	CreditsUsed int64
	CreatedAt   time.Time
}

type CreditPrice struct {
	Action  string `db:"action"`
	Credits int64  `db:"credits"`
}

type CreditPackage struct {
	ID       int             `db:"id"`
	Credits  int64           `db:"credits"`
	Price    decimal.Decimal `db:"price"`
	Currency string          `db:"currency"`
}
