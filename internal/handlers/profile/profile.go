package profile

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/dto"
	"github.com/GlebRadaev/hyperacing/internal/handlers/httperr"
	"github.com/GlebRadaev/hyperacing/pkg/auth"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile

type Service interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile godoc
//
//	@Summary		Get current user profile
//	@Description	Retrieve the profile and point balance of the authenticated user.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile and balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Profile not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Failure		503	{object}	utils.Response			"Service is not configured"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		UserID:    profile.UserID,
		Email:     profile.Email,
		Points:    profile.Points,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	})
}
