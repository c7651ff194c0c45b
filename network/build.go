// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/station"
)

// Build flattens every line's sections into a new Graph.
// nil sources are skipped. Lines are read once; later mutations of a line do
// not show up in a Graph that was already built.
// Complexity: O(E).
func Build(lines ...SectionSource) *Graph {
	g := &Graph{
		vertices:  make(map[int64]station.Station),
		adjacency: make(map[int64]map[int64][]*Edge),
		lines:     make(map[int64]map[int64]struct{}),
	}
	for _, src := range lines {
		if src == nil {
			continue
		}
		g.lineCount++
		for _, s := range src.Sections() {
			g.addSection(src, s)
		}
	}

	return g
}

// addSection records s as a directed edge. Only Build calls it.
func (g *Graph) addSection(src SectionSource, s line.Section) {
	up, down := s.Up(), s.Down()
	g.addVertex(up, src.LineID())
	g.addVertex(down, src.LineID())

	seq := uint64(len(g.edges) + 1)
	e := &Edge{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, seq),
		From:     up.ID,
		To:       down.ID,
		Weight:   s.Distance(),
		LineID:   src.LineID(),
		LineName: src.LineName(),
		seq:      seq,
	}
	g.edges = append(g.edges, e)

	if g.adjacency[up.ID] == nil {
		g.adjacency[up.ID] = make(map[int64][]*Edge)
	}
	g.adjacency[up.ID][down.ID] = append(g.adjacency[up.ID][down.ID], e)
}

// addVertex inserts st if absent and records that lineID serves it.
// The first Station value seen for an ID wins.
func (g *Graph) addVertex(st station.Station, lineID int64) {
	if _, ok := g.vertices[st.ID]; !ok {
		g.vertices[st.ID] = st
	}
	if g.lines[st.ID] == nil {
		g.lines[st.ID] = make(map[int64]struct{})
	}
	g.lines[st.ID][lineID] = struct{}{}
}
