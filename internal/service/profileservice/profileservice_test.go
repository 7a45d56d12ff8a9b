package profileservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const userID = "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestEnsureProfile(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "First sign-in creates the profile",
			prepareMock: func() {
				repo.EXPECT().CreateProfile(gomock.Any(), userID, "driver@example.com", int64(1000)).Return(true, nil)
			},
		},
		{
			name: "Existing profile is a no-op",
			prepareMock: func() {
				repo.EXPECT().CreateProfile(gomock.Any(), userID, "driver@example.com", int64(1000)).Return(false, nil)
			},
		},
		{
			name: "Storage fault propagates",
			prepareMock: func() {
				repo.EXPECT().CreateProfile(gomock.Any(), userID, "driver@example.com", int64(1000)).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.EnsureProfile(context.Background(), userID, "driver@example.com")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	service, repo := NewMock(t)
	profile := &domain.Profile{UserID: userID, Email: "driver@example.com", Points: 1000}

	gomock.InOrder(
		repo.EXPECT().CreateProfile(gomock.Any(), userID, "driver@example.com", int64(1000)).Return(true, nil),
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil),
		repo.EXPECT().CreateProfile(gomock.Any(), userID, "driver@example.com", int64(1000)).Return(false, nil),
		repo.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil),
	)

	ctx := context.Background()
	assert.NoError(t, service.EnsureProfile(ctx, userID, "driver@example.com"))
	first, err := service.GetProfile(ctx, userID)
	assert.NoError(t, err)

	assert.NoError(t, service.EnsureProfile(ctx, userID, "driver@example.com"))
	second, err := service.GetProfile(ctx, userID)
	assert.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
}

func TestGetProfile(t *testing.T) {
	service, repo := NewMock(t)
	now := time.Now()

	tests := []struct {
		name            string
		prepareMock     func()
		expectedProfile *domain.Profile
		expectedError   error
	}{
		{
			name: "Profile found",
			prepareMock: func() {
				repo.EXPECT().GetProfile(gomock.Any(), userID).Return(&domain.Profile{
					UserID: userID, Email: "driver@example.com", Points: 1000, CreatedAt: now, UpdatedAt: now,
				}, nil)
			},
			expectedProfile: &domain.Profile{
				UserID: userID, Email: "driver@example.com", Points: 1000, CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name: "Profile missing",
			prepareMock: func() {
				repo.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrProfileNotFound,
		},
		{
			name: "Storage fault",
			prepareMock: func() {
				repo.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, domain.ErrNotConfigured)
			},
			expectedError: domain.ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			profile, err := service.GetProfile(context.Background(), userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProfile, profile)
			}
		})
	}
}

func TestSetBalance(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		points        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Overwrites the balance",
			points: 700,
			prepareMock: func() {
				repo.EXPECT().UpdatePoints(gomock.Any(), userID, int64(700)).Return(&domain.Profile{UserID: userID, Points: 700}, nil)
			},
		},
		{
			name:          "Negative balance rejected",
			points:        -1,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:   "Profile missing",
			points: 700,
			prepareMock: func() {
				repo.EXPECT().UpdatePoints(gomock.Any(), userID, int64(700)).Return(nil, domain.ErrProfileNotFound)
			},
			expectedError: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			profile, err := service.SetBalance(context.Background(), userID, tt.points)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.points, profile.Points)
			}
		})
	}
}
