// SPDX-License-Identifier: MIT

package network

import (
	"errors"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/station"
)

// ErrVertexNotFound indicates a query referenced a station that is not in the graph.
var ErrVertexNotFound = errors.New("network: station not found in graph")

const edgeIDPrefix = "e"

// SectionSource is anything that can contribute one line's sections to a
// Graph. *line.Line satisfies it.
type SectionSource interface {
	LineID() int64
	LineName() string
	Sections() []line.Section
}

// Edge is one directed section in the network.
//
// ID is "e1", "e2", … in build order. From and To are station IDs.
type Edge struct {
	ID       string
	From     int64
	To       int64
	Weight   int64
	LineID   int64
	LineName string

	seq uint64
}

// Graph is the immutable network graph.
//
// vertices maps station ID → Station; adjacency[from][to] lists every
// parallel edge between the pair; lines[id] is the set of lines serving a station.
type Graph struct {
	vertices  map[int64]station.Station
	edges     []*Edge
	adjacency map[int64]map[int64][]*Edge
	lines     map[int64]map[int64]struct{}
	lineCount int
}

// Stats is a read-only summary of a Graph.
type Stats struct {
	VertexCount          int
	EdgeCount            int
	LineCount            int
	ParallelEdgeCount    int
	TransferStationCount int
}
