// SPDX-License-Identifier: MIT

package line

import (
	"fmt"

	"github.com/katalvlaran/subway/station"
)

// Section is a directed, weighted connection between two stations on one line.
// Stations are held by value and compared by ID; a Section never owns them.
type Section struct {
	up       station.Station
	down     station.Station
	distance int64
}

// NewSection validates and returns a Section from up to down.
// Returns ErrNonPositiveDistance for distance <= 0 and ErrLoopSection when
// up and down are the same station.
func NewSection(up, down station.Station, distance int64) (Section, error) {
	if distance <= 0 {
		return Section{}, fmt.Errorf("%w: %s→%s distance=%d", ErrNonPositiveDistance, up, down, distance)
	}
	if up.Equal(down) {
		return Section{}, fmt.Errorf("%w: %s", ErrLoopSection, up)
	}

	return Section{up: up, down: down, distance: distance}, nil
}

// MustSection is NewSection that panics on invalid input.
// Intended for fixtures and examples.
func MustSection(up, down station.Station, distance int64) Section {
	s, err := NewSection(up, down, distance)
	if err != nil {
		panic(err)
	}

	return s
}

// Up returns the station the section departs from.
func (s Section) Up() station.Station { return s.up }

// Down returns the station the section arrives at.
func (s Section) Down() station.Station { return s.down }

// Distance returns the section length.
func (s Section) Distance() int64 { return s.distance }

// String renders the section as "up→down(distance)".
func (s Section) String() string {
	return fmt.Sprintf("%s→%s(%d)", s.up, s.down, s.distance)
}
