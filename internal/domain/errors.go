package domain

import "errors"

var (
	ErrNotConfigured       = errors.New("service is not configured")
	ErrUnauthenticated     = errors.New("user is not authenticated")
	ErrInvalidAmount       = errors.New("bet amount must be greater than 0")
	ErrInvalidBet          = errors.New("bet must name a driver, a position and positive odds")
	ErrInsufficientBalance = errors.New("not enough points")
	ErrProfileNotFound     = errors.New("user profile not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidOdds         = errors.New("odds table is empty or has non-positive values")
)
