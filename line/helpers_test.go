// SPDX-License-Identifier: MIT

package line_test

import (
	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/station"
)

// Stations used across line tests.
var (
	stn1 = station.Station{ID: 1, Name: "Sinnonhyeon"}
	stn2 = station.Station{ID: 2, Name: "Gangnam"}
	stn3 = station.Station{ID: 3, Name: "Yangjae"}
	stn4 = station.Station{ID: 4, Name: "Dogok"}
	stn5 = station.Station{ID: 5, Name: "Seolleung"}
	stn9 = station.Station{ID: 9, Name: "Moran"}
)

// Distances used across line tests.
const (
	dist10 = 10
	dist15 = 15
	dist20 = 20
)

// snapshot captures the observable state of a chain for before/after comparison.
type snapshot struct {
	stations []station.Station
	sections []line.Section
}

func take(c *line.Sections) snapshot {
	return snapshot{stations: c.Stations(), sections: c.Sections()}
}
