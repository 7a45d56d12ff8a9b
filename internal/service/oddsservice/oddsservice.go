package oddsservice

import (
	"context"
	"math"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=oddsservice.go -destination=mock_oddsservice.go -package=oddsservice

type Repo interface {
	GetCurrentOdds(ctx context.Context) (*domain.Odds, error)
	SaveCurrentOdds(ctx context.Context, table domain.OddsTable) (*domain.Odds, error)
}

type Cache interface {
	Get(ctx context.Context) (*domain.Odds, bool, error)
	Set(ctx context.Context, odds *domain.Odds) error
	Invalidate(ctx context.Context) error
}

type Metrics interface {
	OddsServed(source domain.OddsSource)
	OddsPublished()
}

type Service struct {
	repo    Repo
	cache   Cache
	metrics Metrics
}

// New builds the odds service. cache may be nil, in which case every read
// goes to the store.
func New(repo Repo, cache Cache, metrics Metrics) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

// GetCurrentOdds returns the published odds table, or nil when none was ever
// published.
func (s *Service) GetCurrentOdds(ctx context.Context) (*domain.Odds, error) {
	if s.cache != nil {
		odds, ok, err := s.cache.Get(ctx)
		if err != nil {
			zap.L().Warn("odds cache read failed", zap.Error(err))
		} else if ok {
			return odds, nil
		}
	}

	odds, err := s.repo.GetCurrentOdds(ctx)
	if err != nil {
		zap.L().Error("failed to get current odds", zap.Error(err))
		return nil, err
	}

	if odds != nil && s.cache != nil {
		if err := s.cache.Set(ctx, odds); err != nil {
			zap.L().Warn("odds cache write failed", zap.Error(err))
		}
	}
	return odds, nil
}

// GetOdds returns the published table, falling back to generated odds over
// the standard roster when nothing is published.
func (s *Service) GetOdds(ctx context.Context) (*domain.Odds, error) {
	odds, err := s.GetCurrentOdds(ctx)
	if err != nil {
		return nil, err
	}
	if odds == nil {
		odds = &domain.Odds{
			Data:   GenerateFallbackOdds(domain.DriverRoster()),
			Source: domain.OddsSourceGenerated,
		}
	}
	s.metrics.OddsServed(odds.Source)
	return odds, nil
}

func (s *Service) PublishOdds(ctx context.Context, table domain.OddsTable) (*domain.Odds, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	odds, err := s.repo.SaveCurrentOdds(ctx, table)
	if err != nil {
		zap.L().Error("failed to publish odds", zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			zap.L().Warn("odds cache invalidation failed", zap.Error(err))
		}
	}
	s.metrics.OddsPublished()
	zap.L().Info("odds published", zap.Int("drivers", len(table)))
	return odds, nil
}

func validateTable(table domain.OddsTable) error {
	if len(table) == 0 {
		return domain.ErrInvalidOdds
	}
	for _, positions := range table {
		if len(positions) == 0 {
			return domain.ErrInvalidOdds
		}
		for _, value := range positions {
			if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
				return domain.ErrInvalidOdds
			}
		}
	}
	return nil
}
