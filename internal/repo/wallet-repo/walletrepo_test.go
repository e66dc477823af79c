package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/propdesk/credit-auction/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_CreateWallet(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		brokerID  int
		number    string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:     "creates wallet with zero balance",
			brokerID: 1,
			number:   "w-123",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "broker_id", "number", "balance"}).
					AddRow(1, 1, "w-123", int64(0))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (broker_id, number, balance)`)).
					WithArgs(1, "w-123").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.Wallet{ID: 1, BrokerID: 1, Number: "w-123", Balance: 0},
		},
		{
			name:     "database error",
			brokerID: 2,
			number:   "w-456",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (broker_id, number, balance)`)).
					WithArgs(2, "w-456").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWallet(context.Background(), tt.brokerID, tt.number)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetWalletByBrokerID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		brokerID  int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:     "valid brokerID returns wallet",
			brokerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "broker_id", "number", "balance"}).
					AddRow(1, 1, "w-123", int64(1000))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE broker_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.Wallet{ID: 1, BrokerID: 1, Number: "w-123", Balance: 1000},
		},
		{
			name:     "non-existing brokerID returns nil",
			brokerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE broker_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "database error",
			brokerID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE broker_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetWalletByBrokerID(context.Background(), tt.brokerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_LockWallet(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		brokerID  int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:     "locks and returns wallet",
			brokerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "broker_id", "number", "balance"}).
					AddRow(1, 1, "w-123", int64(500))
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.Wallet{ID: 1, BrokerID: 1, Number: "w-123", Balance: 500},
		},
		{
			name:     "missing wallet returns nil",
			brokerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.LockWallet(context.Background(), tt.brokerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		walletID  int
		balance   int64
		mockSetup func()
		expectErr bool
	}{
		{
			name:     "updates balance",
			walletID: 1,
			balance:  750,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
					WithArgs(int64(750), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:     "database error",
			walletID: 1,
			balance:  750,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
					WithArgs(int64(750), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalance(context.Background(), tt.walletID, tt.balance)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	key := "signup:1"
	tests := []struct {
		name      string
		tx        *domain.Transaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "creates credit transaction",
			tx: &domain.Transaction{
				WalletID:       1,
				Type:           domain.TxTypeSignupBonus,
				Amount:         1000,
				BalanceAfter:   1000,
				Status:         domain.TxStatusCompleted,
				Description:    "signup bonus",
				IdempotencyKey: &key,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(1, domain.TxTypeSignupBonus, int64(1000), int64(1000), domain.TxStatusCompleted,
						"signup bonus", &key, (*string)(nil), (*string)(nil), (*string)(nil)).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "database error",
			tx: &domain.Transaction{
				WalletID: 1,
				Type:     domain.TxTypeBidDebit,
				Amount:   -50,
				Status:   domain.TxStatusCompleted,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(1, domain.TxTypeBidDebit, int64(-50), int64(0), domain.TxStatusCompleted,
						"", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateTransaction(context.Background(), tt.tx)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindTransactionByIdempotencyKey(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	key := "signup:1"

	tests := []struct {
		name      string
		key       string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "existing key returns transaction",
			key:  "signup:1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "wallet_id", "type", "amount", "balance_after", "status", "description", "idempotency_key", "refund_of", "order_id", "payment_id", "created_at"}).
					AddRow(10, 1, domain.TxTypeSignupBonus, int64(1000), int64(1000), domain.TxStatusCompleted, "signup bonus", &key, nil, nil, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE idempotency_key = $1`)).
					WithArgs("signup:1").
					WillReturnRows(rows)
			},
			expectErr: false,
			found:     true,
		},
		{
			name: "missing key returns nil",
			key:  "signup:2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE idempotency_key = $1`)).
					WithArgs("signup:2").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			found:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindTransactionByIdempotencyKey(context.Background(), tt.key)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, 10, result.ID)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_FindTransactionsByWalletID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "returns transactions newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "wallet_id", "type", "amount", "balance_after", "status", "description", "idempotency_key", "refund_of", "order_id", "payment_id", "created_at"}).
					AddRow(2, 1, domain.TxTypeBidDebit, int64(-100), int64(900), domain.TxStatusCompleted, "bid on enquiry 1", nil, nil, nil, nil, now).
					AddRow(1, 1, domain.TxTypeSignupBonus, int64(1000), int64(1000), domain.TxStatusCompleted, "signup bonus", nil, nil, nil, nil, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE wallet_id = $1`)).
					WithArgs(1, 20, 0).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE wallet_id = $1`)).
					WithArgs(1, 20, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindTransactionsByWalletID(context.Background(), 1, 20, 0)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_FindPendingPurchases(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	orderID := "79927398713"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "returns pending purchases",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "wallet_id", "type", "amount", "balance_after", "status", "description", "idempotency_key", "refund_of", "order_id", "payment_id", "created_at"}).
					AddRow(5, 1, domain.TxTypePurchase, int64(100), int64(0), domain.TxStatusPending, "package 1", nil, nil, &orderID, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE type = 'purchase' AND status = 'pending'`)).
					WithArgs(1000).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE type = 'purchase' AND status = 'pending'`)).
					WithArgs(1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPendingPurchases(context.Background(), 1000)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_UpdateTransactionStatus(t *testing.T) {
	repo, mock := NewMock(t)
	paymentID := "pay-42"

	tests := []struct {
		name      string
		paymentID *string
		mockSetup func()
		expectErr bool
	}{
		{
			name:      "completes purchase with payment id",
			paymentID: &paymentID,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions`)).
					WithArgs(domain.TxStatusCompleted, int64(1100), &paymentID, 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:      "database error",
			paymentID: nil,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions`)).
					WithArgs(domain.TxStatusCompleted, int64(1100), (*string)(nil), 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateTransactionStatus(context.Background(), 5, domain.TxStatusCompleted, 1100, tt.paymentID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
