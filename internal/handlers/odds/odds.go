package odds

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/dto"
	"github.com/GlebRadaev/hyperacing/internal/handlers/httperr"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
)

//go:generate mockgen -source=odds.go -destination=mock_odds.go -package=odds

type Service interface {
	GetOdds(ctx context.Context) (*domain.Odds, error)
}

type OddsHandler struct {
	oddsService Service
}

func New(oddsService Service) *OddsHandler {
	return &OddsHandler{
		oddsService: oddsService,
	}
}

// GetOdds godoc
//
//	@Summary		Get the odds table
//	@Description	Returns the published odds table, or odds generated from the driver standings when none is published.
//	@Tags			Odds
//	@Produce		json
//	@Success		200	{object}	dto.OddsResponseDTO	"Odds by driver code and position"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Failure		503	{object}	utils.Response		"Service is not configured"
//	@Router			/api/odds [get]
func (h *OddsHandler) GetOdds(w http.ResponseWriter, r *http.Request) {
	odds, err := h.oddsService.GetOdds(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := dto.OddsResponseDTO{
		Source: string(odds.Source),
		Odds:   odds.Data,
	}
	if !odds.UpdatedAt.IsZero() {
		updatedAt := odds.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
