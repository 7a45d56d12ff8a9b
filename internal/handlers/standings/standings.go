package standings

import (
	"net/http"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/GlebRadaev/hyperacing/internal/dto"
	"github.com/GlebRadaev/hyperacing/pkg/utils"
)

//go:generate mockgen -source=standings.go -destination=mock_standings.go -package=standings

type Service interface {
	Drivers() []domain.Driver
	Constructors() []domain.Constructor
}

type StandingsHandler struct {
	standingsService Service
}

func New(standingsService Service) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
	}
}

// GetDrivers godoc
//
//	@Summary		Driver standings
//	@Tags			Standings
//	@Produce		json
//	@Success		200	{array}	dto.DriverStandingDTO
//	@Router			/api/standings/drivers [get]
func (h *StandingsHandler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	drivers := h.standingsService.Drivers()
	response := make([]dto.DriverStandingDTO, len(drivers))
	for i, d := range drivers {
		response[i] = dto.DriverStandingDTO{
			Position: i + 1,
			Code:     d.Code,
			Name:     d.Name,
			Team:     d.Team,
			Points:   d.Points,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetConstructors godoc
//
//	@Summary		Constructor standings
//	@Tags			Standings
//	@Produce		json
//	@Success		200	{array}	dto.ConstructorStandingDTO
//	@Router			/api/standings/constructors [get]
func (h *StandingsHandler) GetConstructors(w http.ResponseWriter, r *http.Request) {
	constructors := h.standingsService.Constructors()
	response := make([]dto.ConstructorStandingDTO, len(constructors))
	for i, c := range constructors {
		response[i] = dto.ConstructorStandingDTO{
			Position: i + 1,
			Name:     c.Name,
			Logo:     c.Logo,
			Points:   c.Points,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
