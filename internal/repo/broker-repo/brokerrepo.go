package brokerrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Broker, error) {
	var broker domain.Broker
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM brokers WHERE login = $1", login).
		Scan(&broker.ID, &broker.Login, &broker.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find broker", zap.Error(err))
		return nil, err
	}
	return &broker, nil
}

func (repo *Repository) Create(ctx context.Context, broker *domain.Broker) (*domain.Broker, error) {
	query := `
		INSERT INTO brokers (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, broker.Login, broker.PasswordHash).Scan(&broker.ID)
	if err != nil {
		zap.L().Error("can't save broker", zap.Error(err))
		return nil, err
	}
	return broker, nil
}
