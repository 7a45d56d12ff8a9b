package betrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/pg"
	"github.com/jackc/pgx/v5"
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

// CreateBetWithDebit debits the stake and records the bet in one transaction.
// The debit only applies while the balance still covers the stake, so
// concurrent placements cannot overdraw or lose a debit. It returns the
// balance left after the debit.
func (r *Repository) CreateBetWithDebit(ctx context.Context, bet *domain.Bet) (int64, error) {
	debitQuery := `
		UPDATE profiles
		SET points = points - $1, updated_at = NOW()
		WHERE user_id = $2 AND points >= $1
		RETURNING points
	`
	insertQuery := `
		INSERT INTO bets (user_id, driver, position, amount, odds, potential_winnings, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	var remaining int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, debitQuery, bet.Amount, bet.UserID).Scan(&remaining)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrInsufficientBalance
			}
			zap.L().Error("can't debit stake", zap.Error(err))
			return err
		}

		err = r.db.QueryRow(ctx, insertQuery,
			bet.UserID, bet.Driver, bet.Position, bet.Amount, bet.Odds, bet.PotentialWinnings, string(bet.Status),
		).Scan(&bet.ID, &bet.CreatedAt)
		if err != nil {
			zap.L().Error("can't save bet", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *Repository) GetBetsByUserID(ctx context.Context, userID string) ([]domain.Bet, error) {
	query := `
        SELECT id, user_id, driver, position, amount, odds, potential_winnings, status, created_at
        FROM bets
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var (
			bet    domain.Bet
			status string
		)
		err := rows.Scan(&bet.ID, &bet.UserID, &bet.Driver, &bet.Position, &bet.Amount, &bet.Odds, &bet.PotentialWinnings, &status, &bet.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan bet row", zap.Error(err))
			return nil, err
		}
		bet.Status = domain.BetStatus(status)
		bets = append(bets, bet)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate bet rows", zap.Error(err))
		return nil, err
	}

	return bets, nil
}
