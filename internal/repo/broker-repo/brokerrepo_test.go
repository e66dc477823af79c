package brokerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Broker
	}{
		{
			name:  "existing login returns broker",
			login: "broker1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash"}).
					AddRow(1, "broker1", "hashed")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash FROM brokers WHERE login = $1`)).
					WithArgs("broker1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.Broker{ID: 1, Login: "broker1", PasswordHash: "hashed"},
		},
		{
			name:  "missing login returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash FROM brokers WHERE login = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "database error",
			login: "broker1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash FROM brokers WHERE login = $1`)).
					WithArgs("broker1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		broker    *domain.Broker
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "creates broker",
			broker: &domain.Broker{Login: "broker1", PasswordHash: "hashed"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO brokers (login, password_hash)`)).
					WithArgs("broker1", "hashed").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:   "database error",
			broker: &domain.Broker{Login: "broker1", PasswordHash: "hashed"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO brokers (login, password_hash)`)).
					WithArgs("broker1", "hashed").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.broker)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}
