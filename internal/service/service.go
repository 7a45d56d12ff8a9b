package service

import (
	"time"

	"github.com/GlebRadaev/hyperacing/internal/handlers/auth"
	"github.com/GlebRadaev/hyperacing/internal/handlers/bets"
	"github.com/GlebRadaev/hyperacing/internal/handlers/odds"
	"github.com/GlebRadaev/hyperacing/internal/handlers/profile"
	"github.com/GlebRadaev/hyperacing/internal/handlers/standings"
	"github.com/GlebRadaev/hyperacing/internal/oddsfeed"

	pkgauth "github.com/GlebRadaev/hyperacing/pkg/auth"

	"github.com/GlebRadaev/hyperacing/internal/repo"
	authservice "github.com/GlebRadaev/hyperacing/internal/service/authservice"
	ledgerservice "github.com/GlebRadaev/hyperacing/internal/service/ledgerservice"
	oddsservice "github.com/GlebRadaev/hyperacing/internal/service/oddsservice"
	profileservice "github.com/GlebRadaev/hyperacing/internal/service/profileservice"
	standingsservice "github.com/GlebRadaev/hyperacing/internal/service/standingsservice"
)

// Metrics is what the ledger and the odds service report to.
type Metrics interface {
	ledgerservice.Metrics
	oddsservice.Metrics
}

type Deps struct {
	JWTSecret string
	TokenTTL  time.Duration
	HashCost  int
	OddsCache oddsservice.Cache
	BetEvents ledgerservice.Publisher
	Metrics   Metrics
}

type Services struct {
	AuthService      auth.Service
	Authorizer       pkgauth.Authorizer
	ProfileService   profile.Service
	LedgerService    bets.Service
	OddsService      odds.Service
	OddsPublisher    oddsfeed.Publisher
	StandingsService standings.Service
}

func New(repo *repo.Repositories, deps Deps) *Services {
	profileService := profileservice.New(repo.ProfileRepo)
	oddsService := oddsservice.New(repo.OddsRepo, deps.OddsCache, deps.Metrics)
	ledgerService := ledgerservice.New(profileService, repo.BetRepo, deps.BetEvents, deps.Metrics)
	authService := authservice.New(
		repo.UserRepo,
		repo.SessionRepo,
		profileService,
		pkgauth.NewHashService(deps.HashCost),
		pkgauth.NewJWTService(deps.JWTSecret),
		deps.TokenTTL,
	)

	return &Services{
		AuthService:      authService,
		Authorizer:       authService,
		ProfileService:   profileService,
		LedgerService:    ledgerService,
		OddsService:      oddsService,
		OddsPublisher:    oddsService,
		StandingsService: standingsservice.New(),
	}
}
