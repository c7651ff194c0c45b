// SPDX-License-Identifier: MIT

package line_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/station"
)

type SectionsSuite struct {
	suite.Suite
	c *line.Sections
}

func (s *SectionsSuite) SetupTest() {
	// Stn1 → Stn2 → Stn3 for every test; individual tests reset when needed.
	s.c = &line.Sections{}
	s.Require().NoError(s.c.Add(line.MustSection(stn1, stn2, dist10)))
	s.Require().NoError(s.c.Add(line.MustSection(stn2, stn3, dist15)))
}

func (s *SectionsSuite) TestEmptyChain() {
	require := require.New(s.T())
	var c line.Sections

	require.True(c.IsEmpty())
	require.Empty(c.Stations())
	require.NotNil(c.Stations(), "empty chain yields an empty slice, not nil")
	require.Empty(c.Sections())
	_, ok := c.DownTerminal()
	require.False(ok)

	// Any section is accepted as the first one.
	require.NoError(c.Add(line.MustSection(stn4, stn5, dist20)))
	require.Equal([]int64{4, 5}, station.IDs(c.Stations()))
}

func (s *SectionsSuite) TestAddExtendsTail() {
	require := require.New(s.T())
	require.NoError(s.c.Add(line.MustSection(stn3, stn4, dist20)))

	require.Equal(3, s.c.Len())
	end, ok := s.c.DownTerminal()
	require.True(ok)
	require.Equal(stn4, end)
	require.Equal([]int64{1, 2, 3, 4}, station.IDs(s.c.Stations()))
	require.EqualValues(45, s.c.TotalDistance())
}

func (s *SectionsSuite) TestAddRejectsNonTerminalUpStation() {
	require := require.New(s.T())
	before := take(s.c)

	err := s.c.Add(line.MustSection(stn2, stn4, dist10))
	require.ErrorIs(err, line.ErrChainExtension)

	var ce *line.ChainError
	require.True(errors.As(err, &ce))
	require.Equal(line.OpAdd, ce.Op)
	require.Equal(stn2, ce.Station)
	require.Equal(before, take(s.c), "rejected add must not mutate the chain")
}

func (s *SectionsSuite) TestAddRejectsRevisitedStation() {
	require := require.New(s.T())
	before := take(s.c)

	// Stn3 → Stn1 would close a cycle back to the up-terminal.
	err := s.c.Add(line.MustSection(stn3, stn1, dist10))
	require.ErrorIs(err, line.ErrDuplicateStation)

	var ce *line.ChainError
	require.True(errors.As(err, &ce))
	require.Equal(stn1, ce.Station)

	// Stn3 → Stn2 revisits an interior station.
	err = s.c.Add(line.MustSection(stn3, stn2, dist10))
	require.ErrorIs(err, line.ErrDuplicateStation)
	require.Equal(before, take(s.c))
}

func (s *SectionsSuite) TestRemoveTerminal() {
	require := require.New(s.T())
	require.NoError(s.c.Remove(stn3))

	require.Equal(1, s.c.Len())
	require.Equal([]int64{1, 2}, station.IDs(s.c.Stations()))
}

func (s *SectionsSuite) TestRemoveSingleSectionChain() {
	require := require.New(s.T())
	require.NoError(s.c.Remove(stn3))
	before := take(s.c)

	err := s.c.Remove(stn2)
	require.ErrorIs(err, line.ErrMinimumChain)
	require.Equal(before, take(s.c))

	// The length check runs first, even for stations that are not on the line.
	require.ErrorIs(s.c.Remove(stn9), line.ErrMinimumChain)
}

func (s *SectionsSuite) TestRemoveUnknownStation() {
	require := require.New(s.T())
	before := take(s.c)

	err := s.c.Remove(stn9)
	require.ErrorIs(err, line.ErrUnknownStation)

	var ce *line.ChainError
	require.True(errors.As(err, &ce))
	require.Equal(line.OpRemove, ce.Op)
	require.Equal(stn9, ce.Station)
	require.Equal(before, take(s.c))
}

func (s *SectionsSuite) TestRemoveNonTerminalStation() {
	require := require.New(s.T())
	before := take(s.c)

	require.ErrorIs(s.c.Remove(stn2), line.ErrNotTerminalStation)
	require.ErrorIs(s.c.Remove(stn1), line.ErrNotTerminalStation)
	require.Equal(before, take(s.c))
}

func (s *SectionsSuite) TestAddThenRemoveRestoresChain() {
	require := require.New(s.T())
	before := take(s.c)

	require.NoError(s.c.Add(line.MustSection(stn3, stn4, dist20)))
	require.NoError(s.c.Remove(stn4))
	require.Equal(before, take(s.c))
}

func (s *SectionsSuite) TestReadsAreCopies() {
	require := require.New(s.T())

	stations := s.c.Stations()
	stations[0] = stn9
	sections := s.c.Sections()
	sections[0] = line.MustSection(stn9, stn5, dist20)

	require.Equal([]int64{1, 2, 3}, station.IDs(s.c.Stations()))
	first, ok := s.c.FirstSection()
	require.True(ok)
	require.Equal(stn1, first.Up())
}

func (s *SectionsSuite) TestTerminalsAndContains() {
	require := require.New(s.T())

	up, ok := s.c.UpTerminal()
	require.True(ok)
	require.Equal(stn1, up)

	last, ok := s.c.LastSection()
	require.True(ok)
	require.Equal(stn3, last.Down())

	require.True(s.c.Contains(stn1))
	require.True(s.c.Contains(stn3))
	require.False(s.c.Contains(stn4))
}

func TestSectionsSuite(t *testing.T) {
	suite.Run(t, new(SectionsSuite))
}

// TestStationsLengthProperty checks len(Stations) == len(Sections)+1 while a
// chain grows and shrinks one section at a time.
func TestStationsLengthProperty(t *testing.T) {
	path := []station.Station{stn1, stn2, stn3, stn4, stn5}
	var c line.Sections
	require.Len(t, c.Stations(), 0)

	for i := 1; i < len(path); i++ {
		require.NoError(t, c.Add(line.MustSection(path[i-1], path[i], int64(i))))
		require.Len(t, c.Stations(), c.Len()+1)
	}
	for i := len(path) - 1; i > 1; i-- {
		require.NoError(t, c.Remove(path[i]))
		require.Len(t, c.Stations(), c.Len()+1)
	}
	require.Equal(t, 1, c.Len())
}

func TestNewSection_Validation(t *testing.T) {
	_, err := line.NewSection(stn1, stn2, 0)
	require.ErrorIs(t, err, line.ErrNonPositiveDistance)

	_, err = line.NewSection(stn1, stn2, -5)
	require.ErrorIs(t, err, line.ErrNonPositiveDistance)

	_, err = line.NewSection(stn1, station.Station{ID: 1, Name: "alias"}, 5)
	require.ErrorIs(t, err, line.ErrLoopSection)

	s, err := line.NewSection(stn1, stn2, 5)
	require.NoError(t, err)
	require.Equal(t, stn1, s.Up())
	require.Equal(t, stn2, s.Down())
	require.EqualValues(t, 5, s.Distance())
	require.Equal(t, "Sinnonhyeon(#1)→Gangnam(#2)(5)", s.String())

	require.Panics(t, func() { line.MustSection(stn1, stn2, 0) })
}
