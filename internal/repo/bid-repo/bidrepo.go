package bidrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const bidColumns = `id, broker_id, enquiry_id, credits_used, status, rank, is_on_leaderboard, refunded_at, created_at`

// Upsert replaces the ACTIVE bid of this broker on this enquiry or inserts a
// new one. A raise keeps the original created_at, so the tie-break stays
// anchored to the first commitment.
func (r *Repository) Upsert(ctx context.Context, brokerID, enquiryID int, creditsUsed int64) (*domain.Bid, error) {
	query := `
        INSERT INTO bids (broker_id, enquiry_id, credits_used, status)
        VALUES ($1, $2, $3, 'ACTIVE')
        ON CONFLICT (broker_id, enquiry_id) WHERE status = 'ACTIVE'
        DO UPDATE SET credits_used = EXCLUDED.credits_used
        RETURNING ` + bidColumns
	var bid domain.Bid
	err := r.db.QueryRow(ctx, query, brokerID, enquiryID, creditsUsed).Scan(
		&bid.ID, &bid.BrokerID, &bid.EnquiryID, &bid.CreditsUsed, &bid.Status,
		&bid.Rank, &bid.IsOnLeaderboard, &bid.RefundedAt, &bid.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't upsert bid", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) FindActiveByEnquiry(ctx context.Context, enquiryID int) ([]domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE enquiry_id = $1 AND status = 'ACTIVE'
        ORDER BY credits_used DESC, created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, enquiryID)
	if err != nil {
		zap.L().Error("can't get active bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(&bid.ID, &bid.BrokerID, &bid.EnquiryID, &bid.CreditsUsed, &bid.Status,
			&bid.Rank, &bid.IsOnLeaderboard, &bid.RefundedAt, &bid.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// FindActiveBid resolves the broker's standing ACTIVE bid on an enquiry, the
// one a raise is measured against.
func (r *Repository) FindActiveBid(ctx context.Context, brokerID, enquiryID int) (*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE broker_id = $1 AND enquiry_id = $2 AND status = 'ACTIVE'
    `
	return r.findOne(ctx, query, brokerID, enquiryID)
}

// FindMyBid returns the broker's latest bid on an enquiry regardless of
// status, so a displaced broker still sees their REFUNDED bid.
func (r *Repository) FindMyBid(ctx context.Context, brokerID, enquiryID int) (*domain.Bid, error) {
	query := `
        SELECT ` + bidColumns + `
        FROM bids
        WHERE broker_id = $1 AND enquiry_id = $2
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `
	return r.findOne(ctx, query, brokerID, enquiryID)
}

func (r *Repository) findOne(ctx context.Context, query string, brokerID, enquiryID int) (*domain.Bid, error) {
	row := r.db.QueryRow(ctx, query, brokerID, enquiryID)
	var bid domain.Bid
	err := row.Scan(&bid.ID, &bid.BrokerID, &bid.EnquiryID, &bid.CreditsUsed, &bid.Status,
		&bid.Rank, &bid.IsOnLeaderboard, &bid.RefundedAt, &bid.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bid", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

// MarkRefunded is idempotent: refunding an already refunded bid touches no
// rows and is not an error.
func (r *Repository) MarkRefunded(ctx context.Context, bidID int) error {
	query := `
        UPDATE bids
        SET status = 'REFUNDED', refunded_at = now(), rank = NULL, is_on_leaderboard = FALSE
        WHERE id = $1 AND status = 'ACTIVE'
    `
	_, err := r.db.Exec(ctx, query, bidID)
	if err != nil {
		zap.L().Error("failed to mark bid refunded", zap.Error(err))
		return err
	}
	return nil
}

// UpdateRanks rewrites rank and leaderboard flags for an enquiry after a
// recompute. Entries carry the new top-N; every other active bid is unranked.
func (r *Repository) UpdateRanks(ctx context.Context, enquiryID int, entries []domain.LeaderboardEntry) error {
	clearQuery := `
        UPDATE bids
        SET rank = NULL, is_on_leaderboard = FALSE
        WHERE enquiry_id = $1 AND status = 'ACTIVE'
    `
	rankQuery := `
        UPDATE bids
        SET rank = $1, is_on_leaderboard = TRUE
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, clearQuery, enquiryID); err != nil {
			zap.L().Error("failed to clear ranks", zap.Error(err))
			return err
		}
		for _, e := range entries {
			if _, err := r.db.Exec(ctx, rankQuery, e.Rank, e.BidID); err != nil {
				zap.L().Error("failed to write rank", zap.Error(err))
				return err
			}
		}
		return nil
	})
}
