// SPDX-License-Identifier: MIT

package line

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/subway/station"
)

// Line is a named subway route owning exactly one section chain.
type Line struct {
	id       int64
	name     string
	color    string
	sections Sections
}

// New creates a line with its initial section.
// Returns ErrInvalidLineID for id <= 0 and ErrEmptyLineName for a blank name.
func New(id int64, name, color string, first Section) (*Line, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLineID, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: id %d", ErrEmptyLineName, id)
	}

	l := &Line{id: id, name: name, color: color}
	if err := l.sections.Add(first); err != nil {
		return nil, err
	}

	return l, nil
}

// ID returns the line identifier.
func (l *Line) ID() int64 { return l.id }

// Name returns the line name.
func (l *Line) Name() string { return l.name }

// Color returns the presentation color, as given at construction.
func (l *Line) Color() string { return l.color }

// LineID and LineName let a Line feed network.Build directly.
func (l *Line) LineID() int64 { return l.id }

// LineName returns the line name.
func (l *Line) LineName() string { return l.name }

// AddSection extends the line past its terminal station. See Sections.Add.
func (l *Line) AddSection(s Section) error { return l.sections.Add(s) }

// RemoveSection drops the terminal section ending at st. See Sections.Remove.
func (l *Line) RemoveSection(st station.Station) error { return l.sections.Remove(st) }

// Stations returns the ordered stations of the line.
func (l *Line) Stations() []station.Station { return l.sections.Stations() }

// Sections returns a copy of the line's ordered sections.
func (l *Line) Sections() []Section { return l.sections.Sections() }

// Chain exposes the line's section chain for terminal and distance queries.
// Mutations through it go through the same validation as AddSection and RemoveSection.
func (l *Line) Chain() *Sections { return &l.sections }

// String renders the line as "name(#id)".
func (l *Line) String() string {
	return fmt.Sprintf("%s(#%d)", l.name, l.id)
}
