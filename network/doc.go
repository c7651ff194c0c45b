// SPDX-License-Identifier: MIT

// Package network composes the section chains of every line into one weighted
// directed graph over station vertices.
//
// The Graph G = (V,E) is derived data:
//
//   - V is the union of stations appearing on any section.
//   - E holds one directed edge Up→Down per section, Weight = section distance,
//     tagged with the owning line.
//   - Parallel edges are kept: two lines serving the same station pair yield
//     two edges and the path engine picks the lighter one.
//   - A station served by several lines is a single vertex; that is where
//     lines merge into one network.
//
// A Graph is built once by Build and never mutated afterwards, so any number
// of goroutines may query the same Graph concurrently.
//
// Methods:
//
//	Build(lines ...SectionSource) *Graph    // O(E)
//	HasVertex(id int64) bool                // O(1)
//	Station(id int64) (station.Station, bool)
//	Vertices() []station.Station            // O(V·log V), sorted by ID
//	Edges() []*Edge                         // O(E), insertion order
//	Neighbors(id int64) ([]*Edge, error)    // O(d·log d), sorted by (To, Weight, ID)
//	NeighborIDs(id int64) ([]int64, error)  // unique, sorted
//	TransferStations() []station.Station    // stations on more than one line
//	Stats() Stats
//
// Errors:
//
//	ErrVertexNotFound - the station is not part of the graph.
//
// Build performs no validation; line.Sections already guarantees per-line
// correctness. A graph with no lines is valid and empty.
package network
