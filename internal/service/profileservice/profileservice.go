package profileservice

import (
	"context"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

type Repo interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, userID, email string, points int64) (bool, error)
	UpdatePoints(ctx context.Context, userID string, points int64) (*domain.Profile, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// EnsureProfile creates the profile with the starting balance on first call
// and is a no-op afterwards.
func (s *Service) EnsureProfile(ctx context.Context, userID, email string) error {
	created, err := s.repo.CreateProfile(ctx, userID, email, domain.StartingPoints)
	if err != nil {
		zap.L().Error("failed to ensure profile", zap.Error(err))
		return err
	}
	if created {
		zap.L().Info("profile created", zap.String("userID", userID), zap.Int64("points", domain.StartingPoints))
	}
	return nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// SetBalance overwrites the balance. Debits for bets go through the ledger,
// which decrements atomically instead.
func (s *Service) SetBalance(ctx context.Context, userID string, points int64) (*domain.Profile, error) {
	if points < 0 {
		return nil, domain.ErrInvalidAmount
	}
	profile, err := s.repo.UpdatePoints(ctx, userID, points)
	if err != nil {
		zap.L().Error("failed to set balance", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
