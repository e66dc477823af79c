package dto

import "time"

type BalanceResponseDTO struct {
	Balance  int64  `json:"balance" example:"1000"`
	WalletID string `json:"walletId" example:"4242424242424242"`
}

type CreditTransactionDTO struct {
	ID           int       `json:"id" example:"17"`
	Type         string    `json:"type" example:"bid_debit"`
	Amount       int64     `json:"amount" example:"-100"`
	BalanceAfter int64     `json:"balanceAfter" example:"900"`
	Status       string    `json:"status" example:"completed"`
	Description  string    `json:"description" example:"bid on enquiry 7"`
	OrderID      string    `json:"orderId,omitempty"`
	PaymentID    string    `json:"paymentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TransactionsResponseDTO struct {
	Transactions []CreditTransactionDTO `json:"transactions"`
	Limit        int                    `json:"limit" example:"20"`
	Offset       int                    `json:"offset" example:"0"`
}

type PurchaseRequestDTO struct {
	PackageID   int    `json:"packageId" example:"1"`
	OrderNumber string `json:"orderNumber" example:"2377225624"`
}

type PurchaseResponseDTO struct {
	OrderID string `json:"orderId"`
	Credits int64  `json:"credits" example:"100"`
	Status  string `json:"status" example:"pending"`
}

type CreditPriceDTO struct {
	Action  string `json:"action" example:"REQUEST_CONTACT"`
	Credits int64  `json:"credits" example:"10"`
}

type CreditPackageDTO struct {
	ID       int    `json:"id" example:"1"`
	Credits  int64  `json:"credits" example:"100"`
	Price    string `json:"price" example:"99.00"`
	Currency string `json:"currency" example:"INR"`
}
