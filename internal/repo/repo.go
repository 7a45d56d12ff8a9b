package repo

import (
	"github.com/GlebRadaev/hyperacing/internal/pg"
	betrepo "github.com/GlebRadaev/hyperacing/internal/repo/bet-repo"
	oddsrepo "github.com/GlebRadaev/hyperacing/internal/repo/odds-repo"
	profilerepo "github.com/GlebRadaev/hyperacing/internal/repo/profile-repo"
	sessionrepo "github.com/GlebRadaev/hyperacing/internal/repo/session-repo"
	userrepo "github.com/GlebRadaev/hyperacing/internal/repo/user-repo"
	"github.com/GlebRadaev/hyperacing/internal/service/authservice"
	"github.com/GlebRadaev/hyperacing/internal/service/ledgerservice"
	"github.com/GlebRadaev/hyperacing/internal/service/oddsservice"
	"github.com/GlebRadaev/hyperacing/internal/service/profileservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	SessionRepo authservice.SessionRepo
	ProfileRepo profileservice.Repo
	OddsRepo    oddsservice.Repo
	BetRepo     ledgerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		SessionRepo: sessionrepo.New(conn),
		ProfileRepo: profilerepo.New(conn, txManager),
		OddsRepo:    oddsrepo.New(conn),
		BetRepo:     betrepo.New(conn, txManager),
	}
}
