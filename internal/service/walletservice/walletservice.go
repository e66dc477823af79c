package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	CreateWallet(ctx context.Context, brokerID int, number string) (*domain.Wallet, error)
	GetWalletByBrokerID(ctx context.Context, brokerID int) (*domain.Wallet, error)
	LockWallet(ctx context.Context, brokerID int) (*domain.Wallet, error)
	LockWalletByID(ctx context.Context, walletID int) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, walletID int, balance int64) error
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindTransactionByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)
	FindTransactionByRefundOf(ctx context.Context, ref string) (*domain.Transaction, error)
	FindTransactionsByWalletID(ctx context.Context, walletID, limit, offset int) ([]domain.Transaction, error)
	FindPendingPurchases(ctx context.Context, limit uint32) ([]domain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, txID int, status string, balanceAfter int64, paymentID *string) error
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrAlreadyRefunded   = errors.New("debit already refunded")
)

// CreditParams describes one credit movement into a wallet. IdempotencyKey,
// when set, makes retries of the same credit return the original transaction.
type CreditParams struct {
	BrokerID       int
	Amount         int64
	Type           string
	Description    string
	IdempotencyKey string
	OrderID        string
	PaymentID      string
	RefundOf       string
}

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (s *Service) CreateWallet(ctx context.Context, brokerID int) (*domain.Wallet, error) {
	wallet, err := s.repo.CreateWallet(ctx, brokerID, uuid.NewString())
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetBalance(ctx context.Context, brokerID int) (*domain.Wallet, error) {
	wallet, err := s.repo.GetWalletByBrokerID(ctx, brokerID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// Credit appends one completed transaction and increments the balance. The
// wallet row lock serializes it against concurrent debits and credits.
func (s *Service) Credit(ctx context.Context, params CreditParams) (*domain.Transaction, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %d", params.Amount)
	}

	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if params.IdempotencyKey != "" {
			existing, err := s.repo.FindTransactionByIdempotencyKey(ctx, params.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				result = existing
				return nil
			}
		}

		wallet, err := s.repo.LockWallet(ctx, params.BrokerID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		newBalance := wallet.Balance + params.Amount
		tx := &domain.Transaction{
			WalletID:     wallet.ID,
			Type:         params.Type,
			Amount:       params.Amount,
			BalanceAfter: newBalance,
			Status:       domain.TxStatusCompleted,
			Description:  params.Description,
		}
		if params.IdempotencyKey != "" {
			tx.IdempotencyKey = &params.IdempotencyKey
		}
		if params.OrderID != "" {
			tx.OrderID = &params.OrderID
		}
		if params.PaymentID != "" {
			tx.PaymentID = &params.PaymentID
		}
		if params.RefundOf != "" {
			tx.RefundOf = &params.RefundOf
		}

		if _, err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return err
		}
		if err := s.repo.UpdateBalance(ctx, wallet.ID, newBalance); err != nil {
			return err
		}
		result = tx
		return nil
	})
	if err != nil {
		zap.L().Error("credit failed", zap.Int("brokerID", params.BrokerID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Debit appends one completed debit transaction and decrements the balance.
// The check-balance/write-transaction/write-balance sequence runs under the
// wallet row lock, so the balance can never go negative.
func (s *Service) Debit(ctx context.Context, brokerID int, amount int64, txType, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.LockWallet(ctx, brokerID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}
		if wallet.Balance < amount {
			return ErrInsufficientFunds
		}

		newBalance := wallet.Balance - amount
		tx := &domain.Transaction{
			WalletID:     wallet.ID,
			Type:         txType,
			Amount:       -amount,
			BalanceAfter: newBalance,
			Status:       domain.TxStatusCompleted,
			Description:  description,
		}
		if _, err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return err
		}
		if err := s.repo.UpdateBalance(ctx, wallet.ID, newBalance); err != nil {
			return err
		}
		result = tx
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("debit failed", zap.Int("brokerID", brokerID), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

// Refund credits back a prior debit. The unique constraint on refund_of makes
// a second refund of the same debit fail with ErrAlreadyRefunded.
func (s *Service) Refund(ctx context.Context, brokerID int, amount int64, refundOf, description string) (*domain.Transaction, error) {
	existing, err := s.repo.FindTransactionByRefundOf(ctx, refundOf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRefunded
	}

	tx, err := s.Credit(ctx, CreditParams{
		BrokerID:    brokerID,
		Amount:      amount,
		Type:        domain.TxTypeRefund,
		Description: description,
		RefundOf:    refundOf,
	})
	if err != nil {
		// Two concurrent refunds can both pass the lookup; the unique index
		// catches the loser.
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRefunded
		}
		return nil, err
	}
	return tx, nil
}

func (s *Service) Transactions(ctx context.Context, brokerID, limit, offset int) ([]domain.Transaction, error) {
	wallet, err := s.repo.GetWalletByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	txs, err := s.repo.FindTransactionsByWalletID(ctx, wallet.ID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// CreatePendingPurchase records a purchase that is awaiting payment
// confirmation. The balance is untouched until the payment poller completes
// it.
func (s *Service) CreatePendingPurchase(ctx context.Context, brokerID int, credits int64, orderID, description string) (*domain.Transaction, error) {
	wallet, err := s.repo.GetWalletByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	tx := &domain.Transaction{
		WalletID:    wallet.ID,
		Type:        domain.TxTypePurchase,
		Amount:      credits,
		Status:      domain.TxStatusPending,
		Description: description,
		OrderID:     &orderID,
	}
	if _, err := s.repo.CreateTransaction(ctx, tx); err != nil {
		zap.L().Error("failed to create pending purchase", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (s *Service) PendingPurchases(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
	return s.repo.FindPendingPurchases(ctx, limit)
}

// CompletePurchase applies a confirmed purchase to the wallet: status flips to
// completed, balance_after is snapshotted and the balance is incremented, all
// in one transaction under the wallet row lock.
func (s *Service) CompletePurchase(ctx context.Context, tx *domain.Transaction, paymentID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.LockWalletByID(ctx, tx.WalletID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		newBalance := wallet.Balance + tx.Amount
		if err := s.repo.UpdateTransactionStatus(ctx, tx.ID, domain.TxStatusCompleted, newBalance, &paymentID); err != nil {
			return err
		}
		return s.repo.UpdateBalance(ctx, wallet.ID, newBalance)
	})
}

// FailPurchase marks a pending purchase rejected by the payment system.
func (s *Service) FailPurchase(ctx context.Context, tx *domain.Transaction) error {
	return s.repo.UpdateTransactionStatus(ctx, tx.ID, domain.TxStatusFailed, 0, nil)
}
