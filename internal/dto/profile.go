package dto

import "time"

type ProfileResponseDTO struct {
	UserID    string    `json:"user_id" example:"0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"`
	Email     string    `json:"email" example:"driver@example.com"`
	Points    int64     `json:"points" example:"1000"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-04T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-04T12:00:00Z"`
}
