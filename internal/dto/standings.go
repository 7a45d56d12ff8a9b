package dto

type DriverStandingDTO struct {
	Position int    `json:"position" example:"1"`
	Code     string `json:"code" example:"PIA"`
	Name     string `json:"name" example:"Oscar Piastri"`
	Team     string `json:"team" example:"McLaren"`
	Points   int    `json:"points" example:"90"`
}

type ConstructorStandingDTO struct {
	Position int    `json:"position" example:"1"`
	Name     string `json:"name" example:"McLaren"`
	Logo     string `json:"logo" example:"McLaren"`
	Points   int    `json:"points" example:"170"`
}
