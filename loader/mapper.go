// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/station"
)

// Map builds the domain network from an already validated document.
// Sections are appended in document order through line.Line, so chain rules
// (contiguity, no revisits) apply to file input as well.
func Map(doc YAMLNetwork) (*Network, error) {
	reg, err := station.NewRegistry()
	if err != nil {
		return nil, err
	}
	for i, s := range doc.Stations {
		if err := reg.Add(station.Station{ID: s.ID, Name: s.Name}); err != nil {
			return nil, fmt.Errorf("stations[%d]: %w", i, err)
		}
	}

	n := &Network{Stations: reg, Lines: make([]*line.Line, 0, len(doc.Lines))}
	seen := make(map[int64]struct{}, len(doc.Lines))
	for i, yl := range doc.Lines {
		if _, dup := seen[yl.ID]; dup {
			return nil, fmt.Errorf("lines[%d]: %w: %d", i, ErrDuplicateLine, yl.ID)
		}
		seen[yl.ID] = struct{}{}

		l, err := mapLine(reg, yl)
		if err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", i, err)
		}
		n.Lines = append(n.Lines, l)
	}

	return n, nil
}

func mapLine(reg *station.Registry, yl YAMLLine) (*line.Line, error) {
	if len(yl.Sections) == 0 {
		return nil, fmt.Errorf("%w: line %d has no sections", ErrInvalidDocument, yl.ID)
	}

	first, err := mapSection(reg, yl.Sections[0])
	if err != nil {
		return nil, fmt.Errorf("sections[0]: %w", err)
	}
	l, err := line.New(yl.ID, yl.Name, yl.Color, first)
	if err != nil {
		return nil, err
	}
	for j := 1; j < len(yl.Sections); j++ {
		s, err := mapSection(reg, yl.Sections[j])
		if err != nil {
			return nil, fmt.Errorf("sections[%d]: %w", j, err)
		}
		if err := l.AddSection(s); err != nil {
			return nil, fmt.Errorf("sections[%d]: %w", j, err)
		}
	}

	return l, nil
}

func mapSection(reg *station.Registry, ys YAMLSection) (line.Section, error) {
	ends, err := reg.Resolve(ys.Up, ys.Down)
	if err != nil {
		return line.Section{}, err
	}

	return line.NewSection(ends[0], ends[1], ys.Distance)
}
