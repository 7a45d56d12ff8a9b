package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/pg"
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

func (r *Repository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
        SELECT user_id, email, points, created_at, updated_at
        FROM profiles
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.Profile
	err := row.Scan(&profile.UserID, &profile.Email, &profile.Points, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts the profile unless one already exists for the user.
// It reports whether a row was written.
func (r *Repository) CreateProfile(ctx context.Context, userID, email string, points int64) (bool, error) {
	query := `
        INSERT INTO profiles (user_id, email, points, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        ON CONFLICT (user_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, userID, email, points)
	if err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) UpdatePoints(ctx context.Context, userID string, points int64) (*domain.Profile, error) {
	var updated domain.Profile
	query := `
		UPDATE profiles
		SET points = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING user_id, email, points, created_at, updated_at
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, points, userID)
		err := row.Scan(&updated.UserID, &updated.Email, &updated.Points, &updated.CreatedAt, &updated.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrProfileNotFound
			}
			zap.L().Error("failed to update profile points", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}
