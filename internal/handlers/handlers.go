package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/hyperacing/docs"
	authhandlers "github.com/GlebRadaev/hyperacing/internal/handlers/auth"
	betshandlers "github.com/GlebRadaev/hyperacing/internal/handlers/bets"
	oddshandlers "github.com/GlebRadaev/hyperacing/internal/handlers/odds"
	profilehandlers "github.com/GlebRadaev/hyperacing/internal/handlers/profile"
	standingshandlers "github.com/GlebRadaev/hyperacing/internal/handlers/standings"
	"github.com/GlebRadaev/hyperacing/internal/service"
	"github.com/GlebRadaev/hyperacing/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type BetsHandler interface {
	PlaceBet(w http.ResponseWriter, r *http.Request)
	GetBets(w http.ResponseWriter, r *http.Request)
}

type OddsHandler interface {
	GetOdds(w http.ResponseWriter, r *http.Request)
}

type StandingsHandler interface {
	GetDrivers(w http.ResponseWriter, r *http.Request)
	GetConstructors(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	Authorizer       auth.Authorizer
	AuthHandler      AuthHandler
	ProfileHandler   ProfileHandler
	BetsHandler      BetsHandler
	OddsHandler      OddsHandler
	StandingsHandler StandingsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		Authorizer:       s.Authorizer,
		AuthHandler:      authhandlers.New(s.AuthService),
		ProfileHandler:   profilehandlers.New(s.ProfileService),
		BetsHandler:      betshandlers.New(s.LedgerService),
		OddsHandler:      oddshandlers.New(s.OddsService),
		StandingsHandler: standingshandlers.New(s.StandingsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/odds", h.OddsHandler.GetOdds)
		r.Route("/standings", func(r chi.Router) {
			r.Get("/drivers", h.StandingsHandler.GetDrivers)
			r.Get("/constructors", h.StandingsHandler.GetConstructors)
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware(h.Authorizer))
				r.Post("/logout", h.AuthHandler.Logout)
				r.Get("/profile", h.ProfileHandler.GetProfile)
				r.Route("/bets", func(r chi.Router) {
					r.Post("/", h.BetsHandler.PlaceBet)
					r.Get("/", h.BetsHandler.GetBets)
				})
			})
		})
	})

	return r
}
