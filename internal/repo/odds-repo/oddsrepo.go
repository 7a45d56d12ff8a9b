package oddsrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CurrentID is the key of the single process-wide odds document.
const CurrentID = "current"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCurrentOdds(ctx context.Context) (*domain.Odds, error) {
	query := `
        SELECT data, updated_at
        FROM odds
        WHERE id = $1
    `
	var (
		raw  []byte
		odds domain.Odds
	)
	err := r.db.QueryRow(ctx, query, CurrentID).Scan(&raw, &odds.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get current odds", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(raw, &odds.Data); err != nil {
		zap.L().Error("can't decode current odds", zap.Error(err))
		return nil, fmt.Errorf("decode odds document: %w", err)
	}
	odds.Source = domain.OddsSourcePublished
	return &odds, nil
}

func (r *Repository) SaveCurrentOdds(ctx context.Context, table domain.OddsTable) (*domain.Odds, error) {
	raw, err := json.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("encode odds document: %w", err)
	}
	query := `
        INSERT INTO odds (id, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
        RETURNING updated_at
    `
	odds := domain.Odds{Data: table, Source: domain.OddsSourcePublished}
	if err := r.db.QueryRow(ctx, query, CurrentID, raw).Scan(&odds.UpdatedAt); err != nil {
		zap.L().Error("can't save current odds", zap.Error(err))
		return nil, err
	}
	return &odds, nil
}
