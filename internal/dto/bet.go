package dto

import "time"

type PlaceBetRequestDTO struct {
	Driver   string  `json:"driver" example:"VER"`
	Position string  `json:"position" example:"P1"`
	Amount   int64   `json:"amount" example:"300"`
	Odds     float64 `json:"odds" example:"2.5"`
}

type BetResponseDTO struct {
	ID                int64     `json:"id" example:"1"`
	Driver            string    `json:"driver" example:"VER"`
	Position          string    `json:"position" example:"P1"`
	Amount            int64     `json:"amount" example:"300"`
	Odds              float64   `json:"odds" example:"2.5"`
	PotentialWinnings float64   `json:"potential_winnings" example:"750"`
	Status            string    `json:"status" example:"pending"`
	CreatedAt         time.Time `json:"created_at" example:"2025-05-04T12:00:00Z"`
}
