// SPDX-License-Identifier: MIT

// Package dijkstra_test validates Dijkstra over network graphs built from
// lines: input validation, directed sections, parallel edges, early exit at
// a target, distance caps and deterministic tie-breaking.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/dijkstra"
	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/station"
)

// seg is a compact fixture: one line made of consecutive station IDs.
type seg struct {
	line  int64
	ids   []int64
	dists []int64
}

func st(id int64) station.Station {
	return station.Station{ID: id, Name: string(rune('A' + id - 1))}
}

func build(t *testing.T, segs ...seg) *network.Graph {
	t.Helper()
	var sources []network.SectionSource
	for _, s := range segs {
		l, err := line.New(s.line, "L", "", line.MustSection(st(s.ids[0]), st(s.ids[1]), s.dists[0]))
		require.NoError(t, err)
		for i := 2; i < len(s.ids); i++ {
			require.NoError(t, l.AddSection(line.MustSection(st(s.ids[i-1]), st(s.ids[i]), s.dists[i-1])))
		}
		sources = append(sources, l)
	}

	return network.Build(sources...)
}

// customSource feeds a Graph without going through line.Line.
type customSource struct{}

func (customSource) LineID() int64    { return 99 }
func (customSource) LineName() string { return "custom" }
func (customSource) Sections() []line.Section {
	return []line.Section{line.MustSection(st(1), st(2), 1)}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := build(t, seg{1, []int64{1, 2}, []int64{3}})

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// Source has priority over nil graph, as options are checked first.
	_, _, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(7))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.Target(7))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

func TestDijkstra_GraphFromSectionSource(t *testing.T) {
	g := network.Build(customSource{})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist[2])
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	// 1→2(2), 1→3(1), 3→2(1), 2→4(3), 3→4(5)
	g := build(t,
		seg{1, []int64{1, 2, 4}, []int64{2, 3}},
		seg{2, []int64{1, 3, 2}, []int64{1, 1}},
		seg{3, []int64{3, 4}, []int64{5}},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")
	assert.Equal(t, map[int64]int64{1: 0, 2: 2, 3: 1, 4: 5}, dist)

	_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
	require.NoError(t, err)
	// Two routes to 2 cost 2 (1→2 and 1→3→2); the direct edge is found first
	// and an equal-length alternative never replaces it.
	assert.Equal(t, int64(1), prev[2])
	assert.Equal(t, int64(2), prev[4])

	path, err := dijkstra.PathTo(prev, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4}, path)
}

func TestDijkstra_DirectedSections(t *testing.T) {
	// 1→2→3 only; nothing flows back.
	g := build(t, seg{1, []int64{1, 2, 3}, []int64{4, 6}})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(3), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[3])
	assert.Equal(t, dijkstra.Unreachable, dist[1])
	assert.Equal(t, dijkstra.Unreachable, dist[2])

	_, err = dijkstra.PathTo(prev, 3, 1)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_ParallelEdgesUseLighter(t *testing.T) {
	g := build(t,
		seg{1, []int64{1, 2}, []int64{9}},
		seg{2, []int64{1, 2}, []int64{4}},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist[2])
}

// ------------------------------------------------------------------------
// 3. Target early exit and MaxDistance
// ------------------------------------------------------------------------

func TestDijkstra_TargetStopsSearch(t *testing.T) {
	// 1→2(1)→3(1)→4(1)→5(1)
	g := build(t, seg{1, []int64{1, 2, 3, 4, 5}, []int64{1, 1, 1, 1}})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.Target(3), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[3])
	assert.Equal(t, dijkstra.Unreachable, dist[5], "search stops before reaching 5")

	path, err := dijkstra.PathTo(prev, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := build(t, seg{1, []int64{1, 2, 3, 4}, []int64{1, 1, 1}})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[1])
	assert.Equal(t, int64(1), dist[2])
	assert.Equal(t, dijkstra.Unreachable, dist[3])
	assert.Equal(t, dijkstra.Unreachable, dist[4])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist[2])
}

// ------------------------------------------------------------------------
// 4. Determinism and PathTo
// ------------------------------------------------------------------------

func TestDijkstra_TieBreakIsStable(t *testing.T) {
	// Two equal routes 1→2→4 and 1→3→4, every edge weight 1.
	g := build(t,
		seg{1, []int64{1, 3, 4}, []int64{1, 1}},
		seg{2, []int64{1, 2, 4}, []int64{1, 1}},
	)

	var first []int64
	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithReturnPath())
		require.NoError(t, err)
		path, err := dijkstra.PathTo(prev, 1, 4)
		require.NoError(t, err)
		if first == nil {
			first = path
		}
		require.Equal(t, first, path)
	}
	// Station 2 pops before 3 at equal distance and claims 4 first.
	assert.Equal(t, []int64{1, 2, 4}, first)
}

func TestPathTo_Edges(t *testing.T) {
	path, err := dijkstra.PathTo(nil, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, path)

	_, err = dijkstra.PathTo(map[int64]int64{2: 3, 3: 2}, 1, 2)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}
