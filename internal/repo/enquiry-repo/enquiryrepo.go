package enquiryrepo

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

func (r *Repository) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error) {
	query := `
        INSERT INTO enquiries (broker_id, title, status, bid_deadline)
        VALUES ($1, $2, 'OPEN', $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, enquiry.BrokerID, enquiry.Title, enquiry.BidDeadline).
		Scan(&enquiry.ID, &enquiry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save enquiry", zap.Error(err))
		return nil, err
	}
	enquiry.Status = domain.EnquiryStatusOpen
	return enquiry, nil
}

func (r *Repository) FindByID(ctx context.Context, enquiryID int) (*domain.Enquiry, error) {
	query := `
        SELECT id, broker_id, title, status, bid_deadline, created_at
        FROM enquiries
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, enquiryID)
	var enquiry domain.Enquiry
	err := row.Scan(&enquiry.ID, &enquiry.BrokerID, &enquiry.Title, &enquiry.Status, &enquiry.BidDeadline, &enquiry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find enquiry", zap.Error(err))
		return nil, err
	}
	return &enquiry, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, enquiryID int, status string) error {
	query := `
        UPDATE enquiries
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, enquiryID)
	if err != nil {
		zap.L().Error("failed to update enquiry status", zap.Error(err))
		return err
	}
	return nil
}
