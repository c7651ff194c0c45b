// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a network.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start station is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start station not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNotReached is returned by PathTo for a station the search never reached.
	ErrNotReached = errors.New("bfs: station not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a station is visited with its hop count from the
	// start. Returning an error aborts the search.
	OnVisit func(id int64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	// FilterNeighbor can skip a hop curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor int64) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int64, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search after d hops.
//
//	d > 0: limit to d hops
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips hops for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Order: stations in visit sequence.
//   - Depth: station ID → hops from the start.
//   - Parent: station ID → predecessor in the BFS tree (start has none).
type Result struct {
	Start  int64
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// Reached reports whether id was visited.
func (r *Result) Reached(id int64) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the fewest-hops route from the start station to dest.
// Returns ErrNotReached if dest was not visited.
func (r *Result) PathTo(dest int64) ([]int64, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := []int64{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
