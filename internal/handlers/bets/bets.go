package bets

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/dto"
	"github.com/GlebRadaev/hyperacing/internal/handlers/httperr"
	"github.com/GlebRadaev/hyperacing/pkg/auth"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
)

//go:generate mockgen -source=bets.go -destination=mock_bets.go -package=bets

type Service interface {
	PlaceBet(ctx context.Context, userID, driver, position string, stake int64, odds float64) (*domain.Bet, error)
	ListBetsForUser(ctx context.Context, userID string) ([]domain.Bet, error)
}

type BetsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BetsHandler {
	return &BetsHandler{
		ledgerService: ledgerService,
	}
}

func toDTO(bet domain.Bet) dto.BetResponseDTO {
	return dto.BetResponseDTO{
		ID:                bet.ID,
		Driver:            bet.Driver,
		Position:          bet.Position,
		Amount:            bet.Amount,
		Odds:              bet.Odds,
		PotentialWinnings: bet.PotentialWinnings,
		Status:            string(bet.Status),
		CreatedAt:         bet.CreatedAt,
	}
}

// PlaceBet godoc
//
//	@Summary		Place a bet
//	@Description	Stake points on a driver finishing at a position. The stake is debited immediately and the bet stays pending.
//	@Tags			Bets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceBetRequestDTO	true	"Bet request payload"
//	@Success		200		{object}	dto.BetResponseDTO		"Bet placed"
//	@Failure		400		{object}	utils.Response			"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Not enough points"
//	@Failure		404		{object}	utils.Response			"Profile not found"
//	@Failure		422		{object}	utils.Response			"Invalid driver, position or odds"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Failure		503		{object}	utils.Response			"Service is not configured"
//	@Router			/api/user/bets [post]
func (h *BetsHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bet, err := h.ledgerService.PlaceBet(r.Context(), userID, req.Driver, req.Position, req.Amount, req.Odds)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*bet))
}

// GetBets godoc
//
//	@Summary		Get bet history
//	@Description	Get the authenticated user's bets, newest first
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BetResponseDTO	"Bet history"
//	@Success		204	{object}	utils.Response		"No bets yet"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Failure		503	{object}	utils.Response		"Service is not configured"
//	@Router			/api/user/bets [get]
func (h *BetsHandler) GetBets(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	bets, err := h.ledgerService.ListBetsForUser(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	if len(bets) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.BetResponseDTO, len(bets))
	for i, bet := range bets {
		response[i] = toDTO(bet)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
