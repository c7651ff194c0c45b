// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// network.Graph, whose edge weights are section distances.
//
// Overview:
//
//   - Computes minimum-distance routes from one source station to every
//     reachable station, or stops as soon as a Target station is settled.
//   - Uses a container/heap min-heap with lazy decrease-key: shorter distances
//     are pushed as new entries and stale entries are skipped when popped.
//   - Distances are int64 and accumulate exactly; unreachable stations keep
//     math.MaxInt64.
//
// Determinism:
//
//   - The heap orders entries by (distance, station ID).
//   - Neighbors are relaxed in the order network.Graph.Neighbors returns them
//     and only a strictly shorter distance replaces a predecessor, so among
//     several minimum routes the same one is returned on every run.
//
// Options:
//
//	Source(id)          required, the starting station ID.
//	Target(id)          optional, stop once this station is settled.
//	WithReturnPath()    also return the predecessor map.
//	WithMaxDistance(d)  never settle stations farther than d (d >= 0).
//
// Errors (sentinel):
//
//	ErrEmptySource     no Source given.
//	ErrNilGraph        nil *network.Graph.
//	ErrVertexNotFound  Source or Target missing from the graph.
//	ErrNegativeWeight  an edge with a negative weight (pre-scan, O(E)).
//	ErrBadMaxDistance  WithMaxDistance with d < 0.
//	ErrNoPath          PathTo asked for an unreached station.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source(1),
//	    dijkstra.Target(5),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    return err
//	}
//	ids, err := dijkstra.PathTo(prev, 1, 5)
//
// Dijkstra only reads the graph; concurrent runs over one Graph are safe.
package dijkstra
