package pricerepo

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

func (r *Repository) FindPrices(ctx context.Context) ([]domain.CreditPrice, error) {
	query := `
        SELECT action, credits
        FROM credit_prices
        ORDER BY action ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get credit prices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prices []domain.CreditPrice
	for rows.Next() {
		var p domain.CreditPrice
		if err := rows.Scan(&p.Action, &p.Credits); err != nil {
			zap.L().Error("can't scan credit price row", zap.Error(err))
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, nil
}

func (r *Repository) FindPackages(ctx context.Context) ([]domain.CreditPackage, error) {
	query := `
        SELECT id, credits, price, currency
        FROM credit_packages
        ORDER BY credits ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get credit packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packages []domain.CreditPackage
	for rows.Next() {
		var p domain.CreditPackage
		if err := rows.Scan(&p.ID, &p.Credits, &p.Price, &p.Currency); err != nil {
			zap.L().Error("can't scan credit package row", zap.Error(err))
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *Repository) FindPackageByID(ctx context.Context, id int) (*domain.CreditPackage, error) {
	query := `
        SELECT id, credits, price, currency
        FROM credit_packages
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var p domain.CreditPackage
	err := row.Scan(&p.ID, &p.Credits, &p.Price, &p.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find credit package", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
