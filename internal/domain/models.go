package domain

import "time"

// StartingPoints is the balance a profile receives on creation.
const StartingPoints int64 = 1000

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Session struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// Active reports whether the session can still authorize requests.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

type Profile struct {
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	Points    int64     `db:"points"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// OddsTable maps driver code to position label ("P1".."P20") to decimal odds.
type OddsTable map[string]map[string]float64

type OddsSource string

const (
	OddsSourcePublished OddsSource = "published"
	OddsSourceGenerated OddsSource = "generated"
)

type Odds struct {
	Data      OddsTable  `db:"data"`
	UpdatedAt time.Time  `db:"updated_at"`
	Source    OddsSource `db:"-"`
}

type BetStatus string

// Only BetStatusPending is ever written; nothing settles bets yet.
const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
)

type Bet struct {
	ID                int64     `db:"id"`
	UserID            string    `db:"user_id"`
	Driver            string    `db:"driver"`
	Position          string    `db:"position"`
	Amount            int64     `db:"amount"`
	Odds              float64   `db:"odds"`
	PotentialWinnings float64   `db:"potential_winnings"`
	Status            BetStatus `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
}

type Driver struct {
	Code   string
	Name   string
	Team   string
	Points int
}

type Constructor struct {
	Name   string
	Logo   string
	Points int
}
