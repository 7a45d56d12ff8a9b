package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type SessionRepo interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	FindSession(ctx context.Context, id string) (*domain.Session, error)
	RevokeSession(ctx context.Context, id string) error
}

type ProfileService interface {
	EnsureProfile(ctx context.Context, userID, email string) error
}

type Service struct {
	userRepo       Repo
	sessionRepo    SessionRepo
	profileService ProfileService
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
	tokenTTL       time.Duration
	now            func() time.Time
}

func New(
	repo Repo,
	sessionRepo SessionRepo,
	profileService ProfileService,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		userRepo:       repo,
		sessionRepo:    sessionRepo,
		profileService: profileService,
		hashService:    hashService,
		jwtService:     jwtService,
		tokenTTL:       tokenTTL,
		now:            time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			zap.L().Info("user already exists", zap.String("email", email))
			return nil, err
		}
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	if err := s.profileService.EnsureProfile(ctx, newUser.ID, newUser.Email); err != nil {
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// SignIn checks the credentials and makes sure the user has a profile, which
// covers accounts created before profiles existed.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.profileService.EnsureProfile(ctx, user.ID, user.Email); err != nil {
		return nil, err
	}

	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

// GenerateToken opens a session for the user and returns a token bound to it.
func (s *Service) GenerateToken(ctx context.Context, userID string) (string, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.tokenTTL),
	}

	token, err := s.jwtService.GenerateJWT(session.UserID, session.ID, session.ExpiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		zap.L().Error("can't store session", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Authorize resolves a token into its session. Tokens of revoked or expired
// sessions are rejected even while their signature is still valid.
func (s *Service) Authorize(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			return nil, err
		}
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessionRepo.FindSession(ctx, claims.Id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != claims.UserID || !session.Active(s.now()) {
		return nil, domain.ErrUnauthenticated
	}
	return session, nil
}

func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrUnauthenticated
	}
	if err := s.sessionRepo.RevokeSession(ctx, sessionID); err != nil {
		zap.L().Error("can't revoke session", zap.Error(err))
		return err
	}
	zap.L().Info("session revoked", zap.String("sessionID", sessionID))
	return nil
}
