// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/subway/station"
)

// HasVertex reports whether the station with id is part of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	_, ok := g.vertices[id]

	return ok
}

// Station returns the Station value stored for id.
func (g *Graph) Station(id int64) (station.Station, bool) {
	s, ok := g.vertices[id]

	return s, ok
}

// Vertices returns all stations sorted by ID.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []station.Station {
	out := make([]station.Station, 0, len(g.vertices))
	for _, s := range g.vertices {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges in build order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the outgoing edges of id, parallel edges included,
// sorted by (To, Weight, build order) so traversals are reproducible.
// Complexity: O(d·log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id int64) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		out = append(out, bucket...)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.To != b.To {
			return a.To < b.To
		}
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}

		return a.seq < b.seq
	})

	return out, nil
}

// NeighborIDs returns the unique station IDs reachable from id in one hop, sorted.
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	ids := make([]int64, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// LightestEdge returns the cheapest edge from → to, earliest built on ties.
func (g *Graph) LightestEdge(from, to int64) (*Edge, bool) {
	var best *Edge
	for _, e := range g.adjacency[from][to] {
		if best == nil || e.Weight < best.Weight {
			best = e
		}
	}

	return best, best != nil
}

// LinesAt returns the IDs of the lines serving station id, sorted.
func (g *Graph) LinesAt(id int64) []int64 {
	out := make([]int64, 0, len(g.lines[id]))
	for l := range g.lines[id] {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// TransferStations returns the stations served by more than one line, sorted by ID.
func (g *Graph) TransferStations() []station.Station {
	var out []station.Station
	for _, s := range g.Vertices() {
		if len(g.lines[s.ID]) > 1 {
			out = append(out, s)
		}
	}

	return out
}

// VertexCount returns the number of stations in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IsEmpty reports whether the graph has no stations.
func (g *Graph) IsEmpty() bool { return len(g.vertices) == 0 }

// Stats returns a summary of the graph.
// ParallelEdgeCount counts edges beyond the first between the same ordered pair.
// Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	st := Stats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		LineCount:   g.lineCount,
	}
	for _, toMap := range g.adjacency {
		for _, bucket := range toMap {
			st.ParallelEdgeCount += len(bucket) - 1
		}
	}
	for _, ls := range g.lines {
		if len(ls) > 1 {
			st.TransferStationCount++
		}
	}

	return st
}
