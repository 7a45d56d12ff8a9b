package domain

import "fmt"

// PositionCount is the number of finishing positions odds are quoted for.
const PositionCount = 20

// PositionLabel returns the label of a 1-based finishing position, e.g. "P3".
func PositionLabel(position int) string {
	return fmt.Sprintf("P%d", position)
}

var driverRoster = []Driver{
	{Code: "PIA", Name: "Oscar Piastri", Team: "McLaren", Points: 90},
	{Code: "NOR", Name: "Lando Norris", Team: "McLaren", Points: 51},
	{Code: "VER", Name: "Max Verstappen", Team: "Red Bull Racing", Points: 77},
	{Code: "LEC", Name: "Charles Leclerc", Team: "Ferrari", Points: 80},
	{Code: "SAI", Name: "Carlos Sainz", Team: "Ferrari", Points: 68},
	{Code: "HAM", Name: "Lewis Hamilton", Team: "Mercedes", Points: 64},
	{Code: "RUS", Name: "George Russell", Team: "Mercedes", Points: 59},
	{Code: "PER", Name: "Sergio Perez", Team: "Red Bull Racing", Points: 48},
	{Code: "ALO", Name: "Fernando Alonso", Team: "Aston Martin", Points: 45},
	{Code: "STR", Name: "Lance Stroll", Team: "Aston Martin", Points: 23},
	{Code: "TSU", Name: "Yuki Tsunoda", Team: "RB", Points: 20},
	{Code: "HUL", Name: "Nico Hulkenberg", Team: "Haas", Points: 16},
	{Code: "RIC", Name: "Daniel Ricciardo", Team: "RB", Points: 12},
	{Code: "ALB", Name: "Alexander Albon", Team: "Williams", Points: 8},
	{Code: "MAG", Name: "Kevin Magnussen", Team: "Haas", Points: 6},
	{Code: "OCO", Name: "Esteban Ocon", Team: "Alpine", Points: 4},
	{Code: "GAS", Name: "Pierre Gasly", Team: "Alpine", Points: 3},
	{Code: "SAR", Name: "Logan Sargeant", Team: "Williams", Points: 0},
	{Code: "BOT", Name: "Valtteri Bottas", Team: "Sauber", Points: 0},
	{Code: "ZHO", Name: "Zhou Guanyu", Team: "Sauber", Points: 0},
}

var constructorStandings = []Constructor{
	{Name: "McLaren", Logo: "McLaren", Points: 170},
	{Name: "Mercedes-AMG", Logo: "Mercedes", Points: 170},
	{Name: "Scuderia Ferrari", Logo: "Ferrari", Points: 109},
	{Name: "Red Bull Racing", Logo: "RedBull", Points: 105},
	{Name: "Aston Martin", Logo: "Aston Martin", Points: 68},
	{Name: "RB", Logo: "RB", Points: 32},
	{Name: "Haas F1 Team", Logo: "Haas", Points: 22},
	{Name: "Williams Racing", Logo: "Williams", Points: 8},
	{Name: "Alpine F1 Team", Logo: "Alpine", Points: 7},
	{Name: "Stake F1 Team Sauber", Logo: "Sauber", Points: 0},
}

// DriverRoster returns the fixed roster in rank order. The order is what the
// generated odds are keyed on.
func DriverRoster() []Driver {
	roster := make([]Driver, len(driverRoster))
	copy(roster, driverRoster)
	return roster
}

func ConstructorStandings() []Constructor {
	standings := make([]Constructor, len(constructorStandings))
	copy(standings, constructorStandings)
	return standings
}
