package ledgerservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

const userID = "0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"

type mocks struct {
	profiles  *MockProfileService
	repo      *MockRepo
	publisher *MockPublisher
	metrics   *MockMetrics
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		profiles:  NewMockProfileService(ctrl),
		repo:      NewMockRepo(ctrl),
		publisher: NewMockPublisher(ctrl),
		metrics:   NewMockMetrics(ctrl),
	}
	return New(m.profiles, m.repo, m.publisher, m.metrics), m
}

func TestPlaceBet(t *testing.T) {
	profile := &domain.Profile{UserID: userID, Points: 1000}

	tests := []struct {
		name          string
		userID        string
		driver        string
		position      string
		stake         int64
		odds          float64
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name:     "Success",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    300,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				m.repo.EXPECT().CreateBetWithDebit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, bet *domain.Bet) (int64, error) {
						bet.ID = 1
						return 700, nil
					})
				m.metrics.EXPECT().BetPlaced(int64(300))
				m.publisher.EXPECT().PublishBetPlaced(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Stake equal to the balance",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    1000,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				m.repo.EXPECT().CreateBetWithDebit(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.metrics.EXPECT().BetPlaced(int64(1000))
				m.publisher.EXPECT().PublishBetPlaced(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Publish fault does not fail the bet",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    10,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				m.repo.EXPECT().CreateBetWithDebit(gomock.Any(), gomock.Any()).Return(int64(990), nil)
				m.metrics.EXPECT().BetPlaced(int64(10))
				m.publisher.EXPECT().PublishBetPlaced(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
			},
		},
		{
			name:     "Unauthenticated",
			driver:   "VER",
			position: "P1",
			stake:    10,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.metrics.EXPECT().BetRejected("unauthenticated")
			},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name:     "Zero stake",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    0,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.metrics.EXPECT().BetRejected("invalid_amount")
			},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:     "Negative stake",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    -5,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.metrics.EXPECT().BetRejected("invalid_amount")
			},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:     "Missing driver",
			userID:   userID,
			driver:   " ",
			position: "P1",
			stake:    10,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.metrics.EXPECT().BetRejected("invalid_bet")
			},
			expectedError: domain.ErrInvalidBet,
		},
		{
			name:     "Non-positive odds",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    10,
			odds:     0,
			prepareMock: func(m mocks) {
				m.metrics.EXPECT().BetRejected("invalid_bet")
			},
			expectedError: domain.ErrInvalidBet,
		},
		{
			name:     "Profile not found",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    10,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, domain.ErrProfileNotFound)
			},
			expectedError: domain.ErrProfileNotFound,
		},
		{
			name:     "Stake above the balance",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    1001,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				m.metrics.EXPECT().BetRejected("insufficient_balance")
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name:     "Balance spent between the check and the debit",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    600,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				m.repo.EXPECT().CreateBetWithDebit(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrInsufficientBalance)
				m.metrics.EXPECT().BetRejected("insufficient_balance")
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name:     "Store fault",
			userID:   userID,
			driver:   "VER",
			position: "P1",
			stake:    10,
			odds:     2.5,
			prepareMock: func(m mocks) {
				m.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil)
				m.repo.EXPECT().CreateBetWithDebit(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			bet, err := service.PlaceBet(context.Background(), tt.userID, tt.driver, tt.position, tt.stake, tt.odds)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, bet)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.stake, bet.Amount)
				assert.Equal(t, float64(tt.stake)*tt.odds, bet.PotentialWinnings)
				assert.Equal(t, domain.BetStatusPending, bet.Status)
			}
		})
	}
}

func TestListBetsForUser(t *testing.T) {
	bets := []domain.Bet{
		{ID: 2, UserID: userID, Driver: "NOR", Position: "P2", Amount: 50, Odds: 3, PotentialWinnings: 150, Status: domain.BetStatusPending},
		{ID: 1, UserID: userID, Driver: "VER", Position: "P1", Amount: 100, Odds: 2, PotentialWinnings: 200, Status: domain.BetStatusPending},
	}

	tests := []struct {
		name          string
		userID        string
		prepareMock   func(m mocks)
		expected      []domain.Bet
		expectedError error
	}{
		{
			name:   "Success",
			userID: userID,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().GetBetsByUserID(gomock.Any(), userID).Return(bets, nil)
			},
			expected: bets,
		},
		{
			name:   "No bets",
			userID: userID,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().GetBetsByUserID(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			name:          "Unauthenticated",
			prepareMock:   func(m mocks) {},
			expectedError: domain.ErrUnauthenticated,
		},
		{
			name:   "Store fault",
			userID: userID,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().GetBetsByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.ListBetsForUser(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// memStore keeps balances and bets in memory and debits the way the
// Postgres repository does: a conditional decrement under one lock.
type memStore struct {
	mu       sync.Mutex
	balances map[string]int64
	bets     []domain.Bet
	nextID   int64
	clock    time.Time
}

func newMemStore(balances map[string]int64) *memStore {
	return &memStore{balances: balances, clock: time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)}
}

func (s *memStore) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	points, ok := s.balances[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &domain.Profile{UserID: userID, Points: points}, nil
}

func (s *memStore) CreateBetWithDebit(_ context.Context, bet *domain.Bet) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[bet.UserID] < bet.Amount {
		return 0, domain.ErrInsufficientBalance
	}
	s.balances[bet.UserID] -= bet.Amount
	s.nextID++
	s.clock = s.clock.Add(time.Second)
	bet.ID = s.nextID
	bet.CreatedAt = s.clock
	s.bets = append(s.bets, *bet)
	return s.balances[bet.UserID], nil
}

func (s *memStore) GetBetsByUserID(_ context.Context, userID string) ([]domain.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bets []domain.Bet
	for _, bet := range s.bets {
		if bet.UserID == userID {
			bets = append(bets, bet)
		}
	}
	sort.Slice(bets, func(i, j int) bool { return bets[i].CreatedAt.After(bets[j].CreatedAt) })
	return bets, nil
}

func (s *memStore) balance(userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[userID]
}

type nopPublisher struct{}

func (nopPublisher) PublishBetPlaced(context.Context, domain.Bet) error { return nil }

type nopMetrics struct{}

func (nopMetrics) BetPlaced(int64)    {}
func (nopMetrics) BetRejected(string) {}

func newMemService(store *memStore) *Service {
	return New(store, store, nopPublisher{}, nopMetrics{})
}

func TestPlaceBetDebitsStake(t *testing.T) {
	store := newMemStore(map[string]int64{userID: 1000})
	service := newMemService(store)

	bet, err := service.PlaceBet(context.Background(), userID, "VER", "P1", 300, 2.5)
	require.NoError(t, err)

	assert.Equal(t, int64(700), store.balance(userID))
	assert.Equal(t, 750.0, bet.PotentialWinnings)
	assert.Equal(t, domain.BetStatusPending, bet.Status)
	assert.Equal(t, int64(1), bet.ID)
}

func TestPlaceBetStakeBounds(t *testing.T) {
	const balance int64 = 500
	for _, stake := range []int64{-1, 0, 1, 250, 500, 501, 10_000} {
		store := newMemStore(map[string]int64{userID: balance})
		service := newMemService(store)

		_, err := service.PlaceBet(context.Background(), userID, "LEC", "P3", stake, 4.2)
		switch {
		case stake <= 0:
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "stake %d", stake)
			assert.Equal(t, balance, store.balance(userID))
		case stake > balance:
			assert.ErrorIs(t, err, domain.ErrInsufficientBalance, "stake %d", stake)
			assert.Equal(t, balance, store.balance(userID))
		default:
			assert.NoError(t, err, "stake %d", stake)
			assert.Equal(t, balance-stake, store.balance(userID))
		}
	}
}

func TestConcurrentPlacementsDebitEachStake(t *testing.T) {
	const (
		balance int64 = 1000
		stake   int64 = 200
	)
	store := newMemStore(map[string]int64{userID: balance})
	service := newMemService(store)

	var g errgroup.Group
	for range 2 {
		g.Go(func() error {
			_, err := service.PlaceBet(context.Background(), userID, "HAM", "P4", stake, 6)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, balance-2*stake, store.balance(userID))
}

func TestConcurrentPlacementsNeverOverdraw(t *testing.T) {
	store := newMemStore(map[string]int64{userID: 1000})
	service := newMemService(store)

	var (
		g      errgroup.Group
		mu     sync.Mutex
		placed int
	)
	for range 10 {
		g.Go(func() error {
			_, err := service.PlaceBet(context.Background(), userID, "RUS", "P5", 300, 7)
			if errors.Is(err, domain.ErrInsufficientBalance) {
				return nil
			}
			if err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
			}
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 3, placed)
	assert.Equal(t, int64(100), store.balance(userID))
}

func TestListBetsNeverLeaksOtherUsers(t *testing.T) {
	const other = "5d1f3c2a-8e7b-4a6c-9f0e-1b2c3d4e5f60"
	store := newMemStore(map[string]int64{userID: 1000, other: 1000})
	service := newMemService(store)
	ctx := context.Background()

	for _, owner := range []string{other, userID, other, userID, other} {
		_, err := service.PlaceBet(ctx, owner, "ALO", "P8", 10, 12)
		require.NoError(t, err)
	}

	bets, err := service.ListBetsForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, bets, 2)
	for _, bet := range bets {
		assert.Equal(t, userID, bet.UserID)
	}
	assert.True(t, bets[0].CreatedAt.After(bets[1].CreatedAt))
}
