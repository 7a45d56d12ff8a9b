package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" example:"driver@example.com"`
	Password string `json:"password" example:"pit-wall-2025"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"user_id" example:"0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"driver@example.com"`
	Password string `json:"password" example:"pit-wall-2025"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"user_id" example:"0b6c8e5e-4a4b-4f0c-9d55-7a1f7d0c2b11"`
}
