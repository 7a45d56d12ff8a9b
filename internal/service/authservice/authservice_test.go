package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const (
	userID    = "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"
	sessionID = "8f14e45f-ceea-467a-9575-0e7d3b7c1a2b"
)

var fixedNow = time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)

type mocks struct {
	userRepo    *MockRepo
	sessionRepo *MockSessionRepo
	profiles    *MockProfileService
	hasher      *auth.MockHashServiceInterface
	jwt         *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		userRepo:    NewMockRepo(ctrl),
		sessionRepo: NewMockSessionRepo(ctrl),
		profiles:    NewMockProfileService(ctrl),
		hasher:      auth.NewMockHashServiceInterface(ctrl),
		jwt:         auth.NewMockJWTServiceInterface(ctrl),
	}
	service := New(m.userRepo, m.sessionRepo, m.profiles, m.hasher, m.jwt, 15*time.Minute)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    " Driver@Example.com ",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("pit-wall-2025").Return("hashedpassword", nil)
				m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.CreatedAt = fixedNow
					return user, nil
				})
				m.profiles.EXPECT().EnsureProfile(gomock.Any(), gomock.Any(), "driver@example.com").Return(nil)
			},
		},
		{
			name:     "Email already registered",
			email:    "driver@example.com",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(&domain.User{Email: "driver@example.com"}, nil)
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name:     "Error finding user",
			email:    "driver@example.com",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			email:    "driver@example.com",
			password: "",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("").Return("", errors.New("password cannot be empty"))
			},
			expectedError: errors.New("password cannot be empty"),
		},
		{
			name:     "Error creating user",
			email:    "driver@example.com",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("pit-wall-2025").Return("hashedpassword", nil)
				m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Email taken between lookup and insert",
			email:    "driver@example.com",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("pit-wall-2025").Return("hashedpassword", nil)
				m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEmailTaken)
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name:     "Error creating profile",
			email:    "driver@example.com",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("pit-wall-2025").Return("hashedpassword", nil)
				m.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
				m.profiles.EXPECT().EnsureProfile(gomock.Any(), gomock.Any(), "driver@example.com").Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Not configured",
			email:    "driver@example.com",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, domain.ErrNotConfigured)
			},
			expectedError: domain.ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.SignUp(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "driver@example.com", user.Email)
				assert.Equal(t, "hashedpassword", user.PasswordHash)
				assert.Len(t, user.ID, 36)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	stored := &domain.User{ID: userID, Email: "driver@example.com", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func(m mocks)
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "pit-wall-2025").Return(true)
				m.profiles.EXPECT().EnsureProfile(gomock.Any(), userID, "driver@example.com").Return(nil)
			},
			expectedUser: stored,
		},
		{
			name:     "Unknown email",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "box-box-box",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "box-box-box").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Storage fault",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Profile fault",
			password: "pit-wall-2025",
			prepareMock: func(m mocks) {
				m.userRepo.EXPECT().FindByEmail(gomock.Any(), "driver@example.com").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "pit-wall-2025").Return(true)
				m.profiles.EXPECT().EnsureProfile(gomock.Any(), userID, "driver@example.com").Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.SignIn(context.Background(), "driver@example.com", tt.password)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	expiresAt := fixedNow.Add(15 * time.Minute)

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedToken string
		expectedError error
	}{
		{
			name: "Success",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().GenerateJWT(userID, gomock.Any(), expiresAt).Return("token", nil)
				m.sessionRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, session *domain.Session) error {
					assert.Equal(t, userID, session.UserID)
					assert.Equal(t, expiresAt, session.ExpiresAt)
					assert.NotEmpty(t, session.ID)
					return nil
				})
			},
			expectedToken: "token",
		},
		{
			name: "Signing fails",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().GenerateJWT(userID, gomock.Any(), expiresAt).Return("", domain.ErrNotConfigured)
			},
			expectedError: domain.ErrNotConfigured,
		},
		{
			name: "Session store fails",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().GenerateJWT(userID, gomock.Any(), expiresAt).Return("token", nil)
				m.sessionRepo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			token, err := service.GenerateToken(context.Background(), userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

var errSessionStore = errors.New("connection refused")

func TestAuthorize(t *testing.T) {
	claims := &auth.Claims{UserID: userID}
	claims.Id = sessionID
	revokedAt := fixedNow.Add(-time.Minute)

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Active session",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				m.sessionRepo.EXPECT().FindSession(gomock.Any(), sessionID).Return(&domain.Session{
					ID: sessionID, UserID: userID, ExpiresAt: fixedNow.Add(time.Minute),
				}, nil)
			},
		},
		{
			name: "Invalid token",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(nil, errors.New("invalid token"))
			},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name: "No secret configured",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(nil, domain.ErrNotConfigured)
			},
			expectedError: domain.ErrNotConfigured,
		},
		{
			name: "Unknown session",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				m.sessionRepo.EXPECT().FindSession(gomock.Any(), sessionID).Return(nil, nil)
			},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name: "Revoked session",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				m.sessionRepo.EXPECT().FindSession(gomock.Any(), sessionID).Return(&domain.Session{
					ID: sessionID, UserID: userID, ExpiresAt: fixedNow.Add(time.Minute), RevokedAt: &revokedAt,
				}, nil)
			},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name: "Session of another user",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				m.sessionRepo.EXPECT().FindSession(gomock.Any(), sessionID).Return(&domain.Session{
					ID: sessionID, UserID: "someone-else", ExpiresAt: fixedNow.Add(time.Minute),
				}, nil)
			},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name: "Store fault",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				m.sessionRepo.EXPECT().FindSession(gomock.Any(), sessionID).Return(nil, domain.ErrNotConfigured)
			},
			expectedError: domain.ErrNotConfigured,
		},
		{
			name: "Session store unavailable",
			prepareMock: func(m mocks) {
				m.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				m.sessionRepo.EXPECT().FindSession(gomock.Any(), sessionID).Return(nil, errSessionStore)
			},
			expectedError: errSessionStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			session, err := service.Authorize(context.Background(), "token")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				if tt.expectedError != domain.ErrUnauthenticated {
					assert.NotErrorIs(t, err, domain.ErrUnauthenticated)
				}
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, userID, session.UserID)
				assert.Equal(t, sessionID, session.ID)
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	t.Run("Revokes the session", func(t *testing.T) {
		service, m := NewMock(t)
		m.sessionRepo.EXPECT().RevokeSession(gomock.Any(), sessionID).Return(nil)
		assert.NoError(t, service.SignOut(context.Background(), sessionID))
	})

	t.Run("No session", func(t *testing.T) {
		service, _ := NewMock(t)
		assert.ErrorIs(t, service.SignOut(context.Background(), ""), domain.ErrUnauthenticated)
	})

	t.Run("Store fault", func(t *testing.T) {
		service, m := NewMock(t)
		m.sessionRepo.EXPECT().RevokeSession(gomock.Any(), sessionID).Return(errors.New("database error"))
		assert.EqualError(t, service.SignOut(context.Background(), sessionID), "database error")
	})
}
