package profilerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const userID = "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func TestRepository_GetProfile(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)
	query := regexp.QuoteMeta(`SELECT user_id, email, points, created_at, updated_at FROM profiles WHERE user_id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Existing profile",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "email", "points", "created_at", "updated_at"}).
					AddRow(userID, "driver@example.com", int64(1000), createdAt, updatedAt)
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
			result: &domain.Profile{
				UserID:    userID,
				Email:     "driver@example.com",
				Points:    1000,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			},
		},
		{
			name: "Missing profile returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetProfile(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CreateProfile(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`
        INSERT INTO profiles (user_id, email, points, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        ON CONFLICT (user_id) DO NOTHING`)

	tests := []struct {
		name            string
		mockSetup       func()
		expectErr       bool
		expectedCreated bool
	}{
		{
			name: "New profile is written",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(userID, "driver@example.com", int64(1000)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedCreated: true,
		},
		{
			name: "Existing profile is left alone",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(userID, "driver@example.com", int64(1000)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectedCreated: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(userID, "driver@example.com", int64(1000)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.CreateProfile(context.Background(), userID, "driver@example.com", 1000)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCreated, created)
		})
	}
}

func TestRepository_UpdatePoints(t *testing.T) {
	repo, mock, tx := NewMock(t)
	createdAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)
	query := regexp.QuoteMeta(`
		UPDATE profiles
		SET points = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING user_id, email, points, created_at, updated_at`)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expected    *domain.Profile
	}{
		{
			name: "Successfully updates points",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(int64(700), userID).
						WillReturnRows(pgxmock.NewRows([]string{"user_id", "email", "points", "created_at", "updated_at"}).
							AddRow(userID, "driver@example.com", int64(700), createdAt, updatedAt))
					return fn(ctx)
				})
			},
			expected: &domain.Profile{
				UserID:    userID,
				Email:     "driver@example.com",
				Points:    700,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			},
		},
		{
			name: "Missing profile",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(int64(700), userID).
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectedErr: domain.ErrProfileNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(int64(700), userID).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.UpdatePoints(context.Background(), userID, 700)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
