package oddsservice

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GlebRadaev/hyperacing/internal/domain"
)

// ParseOddsCSV reads a table shaped like
//
//	Driver,P1,P2,...
//	PIA,2.4,3.1,...
//
// into an odds table.
func ParseOddsCSV(r io.Reader) (domain.OddsTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("odds csv: empty input")
		}
		return nil, fmt.Errorf("odds csv: read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("odds csv: header has no positions")
	}
	positions := header[1:]

	table := make(domain.OddsTable)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("odds csv: %w", err)
		}

		driver := strings.TrimSpace(row[0])
		if driver == "" {
			return nil, fmt.Errorf("odds csv: row without driver code")
		}
		driverOdds := make(map[string]float64, len(positions))
		for i, position := range positions {
			value, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("odds csv: %s %s: %w", driver, position, err)
			}
			driverOdds[strings.TrimSpace(position)] = value
		}
		table[driver] = driverOdds
	}
	return table, nil
}
