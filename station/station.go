// SPDX-License-Identifier: MIT

package station

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for station construction and lookup.
var (
	// ErrInvalidID indicates a zero or negative station identifier.
	ErrInvalidID = errors.New("station: identifier must be positive")

	// ErrEmptyName indicates a station without a display name.
	ErrEmptyName = errors.New("station: name is empty")

	// ErrDuplicateID indicates the identifier is already present in a Registry.
	ErrDuplicateID = errors.New("station: identifier already registered")

	// ErrStationNotFound indicates a lookup for an identifier the Registry does not hold.
	ErrStationNotFound = errors.New("station: not found")
)

// Station is an immutable station identity.
//
// ID is the stable identifier issued by the station table.
// Name is informational; it never takes part in equality.
type Station struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// New validates and returns a Station.
// Returns ErrInvalidID for id <= 0 and ErrEmptyName for a blank name.
func New(id int64, name string) (Station, error) {
	if id <= 0 {
		return Station{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Station{}, fmt.Errorf("%w: id %d", ErrEmptyName, id)
	}

	return Station{ID: id, Name: name}, nil
}

// Equal reports whether s and other denote the same station (same ID).
func (s Station) Equal(other Station) bool {
	return s.ID == other.ID
}

// IsZero reports whether s is the zero Station.
func (s Station) IsZero() bool {
	return s.ID == 0
}

// String renders the station as "name(#id)".
func (s Station) String() string {
	return fmt.Sprintf("%s(#%d)", s.Name, s.ID)
}

// IDs projects a station sequence onto its identifiers, preserving order.
func IDs(stations []Station) []int64 {
	out := make([]int64, len(stations))
	for i, s := range stations {
		out[i] = s.ID
	}

	return out
}

// Names projects a station sequence onto its names, preserving order.
func Names(stations []Station) []string {
	out := make([]string, len(stations))
	for i, s := range stations {
		out[i] = s.Name
	}

	return out
}
