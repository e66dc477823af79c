package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateWallet(ctx context.Context, brokerID int, number string) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (broker_id, number, balance)
        VALUES ($1, $2, 0)
        RETURNING id, broker_id, number, balance
    `
	row := r.db.QueryRow(ctx, query, brokerID, number)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.BrokerID, &wallet.Number, &wallet.Balance)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetWalletByBrokerID(ctx context.Context, brokerID int) (*domain.Wallet, error) {
	query := `
        SELECT id, broker_id, number, balance
        FROM wallets
        WHERE broker_id = $1
    `
	row := r.db.QueryRow(ctx, query, brokerID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.BrokerID, &wallet.Number, &wallet.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// LockWallet reads the wallet row with FOR UPDATE. Callers must be inside a
// TXManager transaction; the lock serializes all balance changes per wallet.
func (r *Repository) LockWallet(ctx context.Context, brokerID int) (*domain.Wallet, error) {
	query := `
        SELECT id, broker_id, number, balance
        FROM wallets
        WHERE broker_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, brokerID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.BrokerID, &wallet.Number, &wallet.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// LockWalletByID is LockWallet keyed by wallet id instead of broker id.
func (r *Repository) LockWalletByID(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT id, broker_id, number, balance
        FROM wallets
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, walletID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.BrokerID, &wallet.Number, &wallet.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, walletID int, balance int64) error {
	query := `
        UPDATE wallets
        SET balance = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, balance, walletID)
	if err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (wallet_id, type, amount, balance_after, status, description, idempotency_key, refund_of, order_id, payment_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		tx.WalletID, tx.Type, tx.Amount, tx.BalanceAfter, tx.Status, tx.Description,
		tx.IdempotencyKey, tx.RefundOf, tx.OrderID, tx.PaymentID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindTransactionByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, balance_after, status, description, idempotency_key, refund_of, order_id, payment_id, created_at
        FROM transactions
        WHERE idempotency_key = $1
    `
	return r.scanTransaction(r.db.QueryRow(ctx, query, key))
}

func (r *Repository) FindTransactionByRefundOf(ctx context.Context, ref string) (*domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, balance_after, status, description, idempotency_key, refund_of, order_id, payment_id, created_at
        FROM transactions
        WHERE refund_of = $1
    `
	return r.scanTransaction(r.db.QueryRow(ctx, query, ref))
}

func (r *Repository) FindTransactionsByWalletID(ctx context.Context, walletID, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, balance_after, status, description, idempotency_key, refund_of, order_id, payment_id, created_at
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.WalletID, &tx.Type, &tx.Amount, &tx.BalanceAfter, &tx.Status, &tx.Description,
			&tx.IdempotencyKey, &tx.RefundOf, &tx.OrderID, &tx.PaymentID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r *Repository) FindPendingPurchases(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, balance_after, status, description, idempotency_key, refund_of, order_id, payment_id, created_at
        FROM transactions
        WHERE type = 'purchase' AND status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.WalletID, &tx.Type, &tx.Amount, &tx.BalanceAfter, &tx.Status, &tx.Description,
			&tx.IdempotencyKey, &tx.RefundOf, &tx.OrderID, &tx.PaymentID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan pending purchase row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r *Repository) UpdateTransactionStatus(ctx context.Context, txID int, status string, balanceAfter int64, paymentID *string) error {
	query := `
        UPDATE transactions
        SET status = $1, balance_after = $2, payment_id = COALESCE($3, payment_id)
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, status, balanceAfter, paymentID, txID)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.WalletID, &tx.Type, &tx.Amount, &tx.BalanceAfter, &tx.Status, &tx.Description,
		&tx.IdempotencyKey, &tx.RefundOf, &tx.OrderID, &tx.PaymentID, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}
