package ledgerservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type Repo interface {
	CreateBetWithDebit(ctx context.Context, bet *domain.Bet) (int64, error)
	GetBetsByUserID(ctx context.Context, userID string) ([]domain.Bet, error)
}

type Publisher interface {
	PublishBetPlaced(ctx context.Context, bet domain.Bet) error
}

type Metrics interface {
	BetPlaced(stake int64)
	BetRejected(reason string)
}

type Service struct {
	profiles  ProfileService
	repo      Repo
	publisher Publisher
	metrics   Metrics
}

func New(profiles ProfileService, repo Repo, publisher Publisher, metrics Metrics) *Service {
	return &Service{
		profiles:  profiles,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
	}
}

// PlaceBet debits stake points from the user and records a pending bet at the
// given odds. The balance check is repeated inside the store transaction, so
// the read below only serves to fail fast.
func (s *Service) PlaceBet(ctx context.Context, userID, driver, position string, stake int64, odds float64) (*domain.Bet, error) {
	if userID == "" {
		s.metrics.BetRejected("unauthenticated")
		return nil, domain.ErrUnauthenticated
	}
	if stake <= 0 {
		s.metrics.BetRejected("invalid_amount")
		return nil, domain.ErrInvalidAmount
	}
	driver = strings.TrimSpace(driver)
	position = strings.TrimSpace(position)
	if driver == "" || position == "" || odds <= 0 {
		s.metrics.BetRejected("invalid_bet")
		return nil, domain.ErrInvalidBet
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stake > profile.Points {
		s.metrics.BetRejected("insufficient_balance")
		return nil, domain.ErrInsufficientBalance
	}

	bet := &domain.Bet{
		UserID:            userID,
		Driver:            driver,
		Position:          position,
		Amount:            stake,
		Odds:              odds,
		PotentialWinnings: float64(stake) * odds,
		Status:            domain.BetStatusPending,
	}
	remaining, err := s.repo.CreateBetWithDebit(ctx, bet)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			s.metrics.BetRejected("insufficient_balance")
		} else {
			zap.L().Error("failed to place bet", zap.String("userID", userID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("bet placed",
		zap.Int64("betID", bet.ID),
		zap.String("userID", userID),
		zap.Int64("stake", stake),
		zap.Int64("remaining", remaining),
	)
	s.metrics.BetPlaced(stake)

	if err := s.publisher.PublishBetPlaced(ctx, *bet); err != nil {
		zap.L().Warn("failed to publish bet event", zap.Int64("betID", bet.ID), zap.Error(err))
	}
	return bet, nil
}

// ListBetsForUser returns the user's bets, newest first.
func (s *Service) ListBetsForUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	bets, err := s.repo.GetBetsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list bets", zap.Error(err))
		return nil, err
	}
	return bets, nil
}
