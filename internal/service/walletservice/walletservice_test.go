package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, txManager)
	t.Cleanup(ctrl.Finish)

	return service, repo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func TestService_GetBalance(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		brokerID    int
		prepareMock func()
		expectedErr error
		result      *domain.Wallet
	}{
		{
			name:     "returns wallet",
			brokerID: 1,
			prepareMock: func() {
				repo.EXPECT().
					GetWalletByBrokerID(gomock.Any(), 1).
					Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 1000}, nil)
			},
			expectedErr: nil,
			result:      &domain.Wallet{ID: 1, BrokerID: 1, Balance: 1000},
		},
		{
			name:     "missing wallet",
			brokerID: 2,
			prepareMock: func() {
				repo.EXPECT().
					GetWalletByBrokerID(gomock.Any(), 2).
					Return(nil, nil)
			},
			expectedErr: ErrWalletNotFound,
			result:      nil,
		},
		{
			name:     "repo error",
			brokerID: 1,
			prepareMock: func() {
				repo.EXPECT().
					GetWalletByBrokerID(gomock.Any(), 1).
					Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
			result:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.GetBalance(ctx, tt.brokerID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestService_Credit(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive amount", func(t *testing.T) {
		service, _, _ := NewMock(t)
		result, err := service.Credit(ctx, CreditParams{BrokerID: 1, Amount: 0})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("writes transaction and updates balance", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 500}, nil)
		repo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, int64(200), tx.Amount)
				assert.Equal(t, int64(700), tx.BalanceAfter)
				assert.Equal(t, domain.TxStatusCompleted, tx.Status)
				tx.ID = 10
				return tx, nil
			})
		repo.EXPECT().
			UpdateBalance(gomock.Any(), 1, int64(700)).
			Return(nil)

		result, err := service.Credit(ctx, CreditParams{BrokerID: 1, Amount: 200, Type: domain.TxTypeRefund})
		assert.NoError(t, err)
		assert.Equal(t, int64(700), result.BalanceAfter)
	})

	t.Run("idempotency key replay returns original transaction", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		original := &domain.Transaction{ID: 10, WalletID: 1, Amount: 1000, BalanceAfter: 1000}
		repo.EXPECT().
			FindTransactionByIdempotencyKey(gomock.Any(), "signup:1").
			Return(original, nil)

		result, err := service.Credit(ctx, CreditParams{
			BrokerID:       1,
			Amount:         1000,
			Type:           domain.TxTypeSignupBonus,
			IdempotencyKey: "signup:1",
		})
		assert.NoError(t, err)
		assert.Equal(t, original, result)
	})

	t.Run("missing wallet", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(nil, nil)

		result, err := service.Credit(ctx, CreditParams{BrokerID: 1, Amount: 100})
		assert.ErrorIs(t, err, ErrWalletNotFound)
		assert.Nil(t, result)
	})
}

func TestService_Debit(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive amount", func(t *testing.T) {
		service, _, _ := NewMock(t)
		result, err := service.Debit(ctx, 1, -5, domain.TxTypeBidDebit, "bid")
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("insufficient funds leaves wallet untouched", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 50}, nil)

		result, err := service.Debit(ctx, 1, 100, domain.TxTypeBidDebit, "bid")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Nil(t, result)
	})

	t.Run("writes negative amount with running balance", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 1000}, nil)
		repo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, int64(-300), tx.Amount)
				assert.Equal(t, int64(700), tx.BalanceAfter)
				return tx, nil
			})
		repo.EXPECT().
			UpdateBalance(gomock.Any(), 1, int64(700)).
			Return(nil)

		result, err := service.Debit(ctx, 1, 300, domain.TxTypeBidDebit, "bid on enquiry 1")
		assert.NoError(t, err)
		assert.Equal(t, int64(-300), result.Amount)
	})

	t.Run("debit of entire balance succeeds", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 100}, nil)
		repo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, int64(0), tx.BalanceAfter)
				return tx, nil
			})
		repo.EXPECT().
			UpdateBalance(gomock.Any(), 1, int64(0)).
			Return(nil)

		_, err := service.Debit(ctx, 1, 100, domain.TxTypeBidDebit, "bid")
		assert.NoError(t, err)
	})
}

func TestService_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds a debit once", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			FindTransactionByRefundOf(gomock.Any(), "bid:7").
			Return(nil, nil)
		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 700}, nil)
		repo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxTypeRefund, tx.Type)
				assert.Equal(t, int64(300), tx.Amount)
				assert.Equal(t, "bid:7", *tx.RefundOf)
				return tx, nil
			})
		repo.EXPECT().
			UpdateBalance(gomock.Any(), 1, int64(1000)).
			Return(nil)

		result, err := service.Refund(ctx, 1, 300, "bid:7", "displaced from enquiry 1 leaderboard")
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), result.BalanceAfter)
	})

	t.Run("second refund of the same debit is rejected", func(t *testing.T) {
		service, repo, _ := NewMock(t)

		repo.EXPECT().
			FindTransactionByRefundOf(gomock.Any(), "bid:7").
			Return(&domain.Transaction{ID: 11}, nil)

		result, err := service.Refund(ctx, 1, 300, "bid:7", "displaced")
		assert.ErrorIs(t, err, ErrAlreadyRefunded)
		assert.Nil(t, result)
	})

	t.Run("concurrent refund loses on unique index", func(t *testing.T) {
		service, repo, txManager := NewMock(t)
		passThroughTx(txManager)

		repo.EXPECT().
			FindTransactionByRefundOf(gomock.Any(), "bid:7").
			Return(nil, nil)
		repo.EXPECT().
			LockWallet(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 700}, nil)
		repo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23505"})

		result, err := service.Refund(ctx, 1, 300, "bid:7", "displaced")
		assert.ErrorIs(t, err, ErrAlreadyRefunded)
		assert.Nil(t, result)
	})
}

// The ledger invariant: every balance change writes exactly one transaction
// whose balance_after equals the previous balance plus its amount.
func TestService_LedgerReplay(t *testing.T) {
	service, repo, txManager := NewMock(t)
	passThroughTx(txManager)
	ctx := context.Background()

	balance := int64(0)
	var ledger []domain.Transaction

	repo.EXPECT().
		LockWallet(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) (*domain.Wallet, error) {
			return &domain.Wallet{ID: 1, BrokerID: 1, Balance: balance}, nil
		}).
		AnyTimes()
	repo.EXPECT().
		FindTransactionByIdempotencyKey(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	repo.EXPECT().
		FindTransactionByRefundOf(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			ledger = append(ledger, *tx)
			return tx, nil
		}).
		AnyTimes()
	repo.EXPECT().
		UpdateBalance(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, newBalance int64) error {
			balance = newBalance
			return nil
		}).
		AnyTimes()

	_, err := service.Credit(ctx, CreditParams{BrokerID: 1, Amount: 1000, Type: domain.TxTypeSignupBonus, IdempotencyKey: "signup:1"})
	assert.NoError(t, err)
	_, err = service.Debit(ctx, 1, 300, domain.TxTypeBidDebit, "bid on enquiry 1")
	assert.NoError(t, err)
	_, err = service.Debit(ctx, 1, 150, domain.TxTypeBidDebit, "bid on enquiry 2")
	assert.NoError(t, err)
	_, err = service.Refund(ctx, 1, 300, "bid:1", "displaced from enquiry 1 leaderboard")
	assert.NoError(t, err)

	replayed := int64(0)
	for _, tx := range ledger {
		replayed += tx.Amount
		assert.Equal(t, replayed, tx.BalanceAfter)
	}
	assert.Equal(t, balance, replayed)
	assert.Equal(t, int64(850), balance)
}

func TestService_CreatePendingPurchase(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("records pending transaction without touching balance", func(t *testing.T) {
		repo.EXPECT().
			GetWalletByBrokerID(gomock.Any(), 1).
			Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 500}, nil)
		repo.EXPECT().
			CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxStatusPending, tx.Status)
				assert.Equal(t, domain.TxTypePurchase, tx.Type)
				assert.Equal(t, "79927398713", *tx.OrderID)
				return tx, nil
			})

		result, err := service.CreatePendingPurchase(ctx, 1, 100, "79927398713", "package 1")
		assert.NoError(t, err)
		assert.Equal(t, int64(100), result.Amount)
	})

	t.Run("missing wallet", func(t *testing.T) {
		repo.EXPECT().
			GetWalletByBrokerID(gomock.Any(), 2).
			Return(nil, nil)

		result, err := service.CreatePendingPurchase(ctx, 2, 100, "79927398713", "package 1")
		assert.ErrorIs(t, err, ErrWalletNotFound)
		assert.Nil(t, result)
	})
}

func TestService_CompletePurchase(t *testing.T) {
	service, repo, txManager := NewMock(t)
	passThroughTx(txManager)
	ctx := context.Background()

	tx := &domain.Transaction{ID: 5, WalletID: 1, Amount: 100, Status: domain.TxStatusPending}

	repo.EXPECT().
		LockWalletByID(gomock.Any(), 1).
		Return(&domain.Wallet{ID: 1, BrokerID: 1, Balance: 850}, nil)
	repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), 5, domain.TxStatusCompleted, int64(950), gomock.Any()).
		Return(nil)
	repo.EXPECT().
		UpdateBalance(gomock.Any(), 1, int64(950)).
		Return(nil)

	err := service.CompletePurchase(ctx, tx, "pay-42")
	assert.NoError(t, err)
}

func TestService_FailPurchase(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), 5, domain.TxStatusFailed, int64(0), gomock.Nil()).
		Return(nil)

	err := service.FailPurchase(ctx, &domain.Transaction{ID: 5, WalletID: 1})
	assert.NoError(t, err)
}
