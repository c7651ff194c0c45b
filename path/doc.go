// SPDX-License-Identifier: MIT

// Package path answers route queries over the combined network of all lines.
//
// A Finder builds a fresh network.Graph from the lines it is given on every
// query and delegates the search:
//
//	FindPath(source, target, lines...)            // minimum total distance, via dijkstra
//	FindFewestStations(source, target, lines...)  // minimum number of hops, via bfs
//	Reachable(source, lines...)                   // every station reachable from source
//
// Failures are *Error values naming both endpoints; the kind is one of
//
//	ErrSameStation   - source and target are the same station.
//	ErrDisconnected  - no route exists: a station is absent from the network,
//	                   or the two sit in parts of the network no section joins.
//
// Distances are exact int64 sums of the traversed section distances.
//
// A Finder holds no mutable state and may be shared between goroutines; the
// lines passed in must not be mutated while a query runs.
package path
