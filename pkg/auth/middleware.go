package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/handlers/httperr"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

type ContextKey string

const SessionKey ContextKey = "session"

// Authorizer resolves a bearer token into the live session it belongs to.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*domain.Session, error)
}

func AuthMiddleware(authorizer Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			session, err := authorizer.Authorize(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				// store faults surface as 500, not as a bad token
				if !errors.Is(err, domain.ErrNotConfigured) {
					zap.L().Error("session lookup failed", zap.Error(err))
				}
				httperr.Respond(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*domain.Session)
	return session, ok && session != nil
}

// UserIDFromContext returns the signed-in user's id, or "" for anonymous
// requests.
func UserIDFromContext(ctx context.Context) string {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return ""
	}
	return session.UserID
}
