// SPDX-License-Identifier: MIT

package line

import "github.com/katalvlaran/subway/station"

// Sections is the ordered section chain of one line.
//
// The zero value is an empty chain, a transient state before the line's first
// section is added. Add and Remove are the only mutators; every read returns
// a copy so callers cannot alter the chain behind its back.
type Sections struct {
	list []Section
}

// Add appends s to the end of the chain.
//
// An empty chain accepts any section. Otherwise s.Up() must be the current
// terminal station (ErrChainExtension) and s.Down() must not be the up-station
// of any section already on the line (ErrDuplicateStation). A rejected
// section leaves the chain untouched.
// Complexity: O(n).
func (c *Sections) Add(s Section) error {
	if len(c.list) == 0 {
		c.list = append(c.list, s)
		return nil
	}

	if !c.last().Down().Equal(s.Up()) {
		return chainError(OpAdd, s.Up(), ErrChainExtension)
	}
	for _, existing := range c.list {
		if existing.Up().Equal(s.Down()) {
			return chainError(OpAdd, s.Down(), ErrDuplicateStation)
		}
	}

	c.list = append(c.list, s)

	return nil
}

// Remove drops the last section, whose down-station must be st.
//
// Checks run in order: a one-section chain (ErrMinimumChain), a station not on
// the line (ErrUnknownStation), a station other than the terminal one
// (ErrNotTerminalStation). A rejected removal leaves the chain untouched.
// Complexity: O(n).
func (c *Sections) Remove(st station.Station) error {
	if len(c.list) == 1 {
		return chainError(OpRemove, st, ErrMinimumChain)
	}
	if !c.Contains(st) {
		return chainError(OpRemove, st, ErrUnknownStation)
	}
	if !c.last().Down().Equal(st) {
		return chainError(OpRemove, st, ErrNotTerminalStation)
	}

	c.list[len(c.list)-1] = Section{}
	c.list = c.list[:len(c.list)-1]

	return nil
}

// Stations returns the stations traversed by the chain in order: the first
// section's up-station followed by every section's down-station.
// An empty chain yields an empty, non-nil slice.
// Complexity: O(n).
func (c *Sections) Stations() []station.Station {
	if len(c.list) == 0 {
		return []station.Station{}
	}
	out := make([]station.Station, 0, len(c.list)+1)
	out = append(out, c.list[0].Up())
	for _, s := range c.list {
		out = append(out, s.Down())
	}

	return out
}

// Sections returns a copy of the ordered sections.
func (c *Sections) Sections() []Section {
	out := make([]Section, len(c.list))
	copy(out, c.list)

	return out
}

// Contains reports whether st is one of the chain's traversed stations.
func (c *Sections) Contains(st station.Station) bool {
	if len(c.list) == 0 {
		return false
	}
	if c.list[0].Up().Equal(st) {
		return true
	}
	for _, s := range c.list {
		if s.Down().Equal(st) {
			return true
		}
	}

	return false
}

// Len returns the number of sections.
func (c *Sections) Len() int { return len(c.list) }

// IsEmpty reports whether the chain has no sections yet.
func (c *Sections) IsEmpty() bool { return len(c.list) == 0 }

// FirstSection returns the section that starts the line.
func (c *Sections) FirstSection() (Section, bool) {
	if len(c.list) == 0 {
		return Section{}, false
	}

	return c.list[0], true
}

// LastSection returns the section that ends at the terminal station.
func (c *Sections) LastSection() (Section, bool) {
	if len(c.list) == 0 {
		return Section{}, false
	}

	return c.last(), true
}

// UpTerminal returns the first station of the line.
func (c *Sections) UpTerminal() (station.Station, bool) {
	s, ok := c.FirstSection()

	return s.Up(), ok
}

// DownTerminal returns the terminal station, the only point where the chain
// can be extended or shortened.
func (c *Sections) DownTerminal() (station.Station, bool) {
	s, ok := c.LastSection()

	return s.Down(), ok
}

// TotalDistance sums every section distance on the line.
func (c *Sections) TotalDistance() int64 {
	var total int64
	for _, s := range c.list {
		total += s.Distance()
	}

	return total
}

func (c *Sections) last() Section {
	return c.list[len(c.list)-1]
}
