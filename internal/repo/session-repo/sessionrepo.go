package sessionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, session.ID, session.UserID, session.ExpiresAt).Scan(&session.CreatedAt)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, expires_at, revoked_at, created_at
		FROM sessions
		WHERE id = $1
	`
	var session domain.Session
	err := r.db.QueryRow(ctx, query, sessionID).
		Scan(&session.ID, &session.UserID, &session.ExpiresAt, &session.RevokedAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

// RevokeSession marks the session revoked. Revoking twice keeps the first
// revocation time.
func (r *Repository) RevokeSession(ctx context.Context, sessionID string) error {
	query := `
		UPDATE sessions
		SET revoked_at = NOW()
		WHERE id = $1 AND revoked_at IS NULL
	`
	if _, err := r.db.Exec(ctx, query, sessionID); err != nil {
		zap.L().Error("can't revoke session", zap.Error(err))
		return err
	}
	return nil
}
