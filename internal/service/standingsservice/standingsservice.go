package standingsservice

import (
	"sort"

	"github.com/GlebRadaev/hyperacing/internal/domain"
)

type Service struct{}

func New() *Service {
	return &Service{}
}

// Drivers returns the championship table, leader first.
func (s *Service) Drivers() []domain.Driver {
	drivers := domain.DriverRoster()
	sort.SliceStable(drivers, func(i, j int) bool { return drivers[i].Points > drivers[j].Points })
	return drivers
}

func (s *Service) Constructors() []domain.Constructor {
	constructors := domain.ConstructorStandings()
	sort.SliceStable(constructors, func(i, j int) bool { return constructors[i].Points > constructors[j].Points })
	return constructors
}
