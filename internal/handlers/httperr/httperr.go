package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
)

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrNotConfigured, http.StatusServiceUnavailable},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidBet, http.StatusUnprocessableEntity},
	{domain.ErrInvalidOdds, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrProfileNotFound, http.StatusNotFound},
	{domain.ErrEmailTaken, http.StatusConflict},
}

// Status maps a service error onto an HTTP status and the message shown to
// the client. Unknown errors are not exposed.
func Status(err error) (int, string) {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status, s.err.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func Respond(w http.ResponseWriter, err error) {
	status, message := Status(err)
	utils.RespondWithError(w, status, message)
}
