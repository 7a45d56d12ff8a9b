package oddsservice

import (
	"hash/fnv"
	"math"
	"strconv"

	"github.com/GlebRadaev/hyperacing/internal/domain"
)

// GenerateFallbackOdds builds a display-only odds table keyed on each
// driver's rank in the roster. The result depends on nothing but its input.
func GenerateFallbackOdds(roster []domain.Driver) domain.OddsTable {
	table := make(domain.OddsTable, len(roster))
	for rank, driver := range roster {
		base := baseOdds(rank)
		positions := make(map[string]float64, domain.PositionCount)
		for p := 1; p <= domain.PositionCount; p++ {
			difference := math.Abs(float64(p - (rank + 1)))
			multiplier := 1.0
			if difference != 0 {
				multiplier = 1 + difference*0.5
			}
			value := base * multiplier * spreadFactor(driver.Code, p)
			positions[domain.PositionLabel(p)] = math.Round(value*10) / 10
		}
		table[driver.Code] = positions
	}
	return table
}

func baseOdds(rank int) float64 {
	switch {
	case rank < 5:
		return 2.5
	case rank < 10:
		return 5
	default:
		return 10
	}
}

// spreadFactor maps (code, position) onto [0.8, 1.2) through FNV-1a.
func spreadFactor(code string, position int) float64 {
	h := fnv.New64a()
	h.Write([]byte(code))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(position)))
	unit := float64(h.Sum64()>>11) / (1 << 53)
	return 0.8 + unit*0.4
}
