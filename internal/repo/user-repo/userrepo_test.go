package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, email, password_hash, created_at FROM users WHERE email = $1")

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "driver@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
					AddRow("0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", "driver@example.com", "hashed_password", createdAt)
				mock.ExpectQuery(query).
					WithArgs("driver@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11",
				Email:        "driver@example.com",
				PasswordHash: "hashed_password",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "driver@example.com",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("driver@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup   func()
		expectErr   bool
		expectedErr error
	}{
		{
			name: "User created",
			user: &domain.User{ID: "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", Email: "driver@example.com", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", "driver@example.com", "hash").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
			},
			expectErr: false,
		},
		{
			name: "Email taken by a concurrent sign-up",
			user: &domain.User{ID: "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", Email: "driver@example.com", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", "driver@example.com", "hash").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			expectErr:   true,
			expectedErr: domain.ErrEmailTaken,
		},
		{
			name: "Storage fault",
			user: &domain.User{ID: "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", Email: "driver@example.com", PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11", "driver@example.com", "hash").
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.NotErrorIs(t, err, domain.ErrEmailTaken)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
