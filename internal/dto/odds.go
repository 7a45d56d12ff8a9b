package dto

import "time"

type OddsResponseDTO struct {
	Source    string                        `json:"source" example:"generated"`
	UpdatedAt *time.Time                    `json:"updated_at,omitempty" example:"2025-05-04T12:00:00Z"`
	Odds      map[string]map[string]float64 `json:"odds"`
}
