package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/dto"
	"github.com/GlebRadaev/hyperacing/internal/handlers/httperr"
	"github.com/GlebRadaev/hyperacing/pkg/auth"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(ctx context.Context, userID string) (string, error)
	SignOut(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func validCredentials(email, password string) bool {
	return strings.TrimSpace(email) != "" && password != ""
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, userID string) bool {
	token, err := h.authService.GenerateToken(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			httperr.Respond(w, err)
			return false
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return false
	}
	w.Header().Set("Authorization", "Bearer "+token)
	return true
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account with email and password. The profile starts with 1000 points.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Failure		503		{object}	utils.Response	"Service is not configured"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validCredentials(req.Email, req.Password) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if !h.respondWithToken(w, r, user.ID) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		UserID:  user.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Sign in with email and password and get a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Failure		503		{object}	utils.Response	"Service is not configured"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validCredentials(req.Email, req.Password) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if !h.respondWithToken(w, r, user.ID) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
		UserID:  user.ID,
	})
}

// Logout godoc
//
//	@Summary		Sign out
//	@Description	Revoke the session of the presented token
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Signed out"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.authService.SignOut(r.Context(), session.ID); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Signed out"})
}
