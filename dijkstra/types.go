// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source station was given.
	ErrEmptySource = errors.New("dijkstra: source station is not set")

	// ErrNilGraph indicates that a nil *network.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target station is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: station not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that PathTo was asked for a station the search never reached.
	ErrNoPath = errors.New("dijkstra: no path to station")
)

// Unreachable is the distance reported for stations the search never reached.
const Unreachable = int64(math.MaxInt64)

// noVertex marks an unset Source/Target or a missing predecessor.
// Station IDs are always positive.
const noVertex = int64(0)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting station ID (required).
// Target      – if set, the search stops once this station is settled.
// ReturnPath  – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance – stations farther than this are never settled. Default math.MaxInt64.
type Options struct {
	Source      int64
	Target      int64
	ReturnPath  bool
	MaxDistance int64

	// err records an invalid option; surfaced by Dijkstra.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting station ID.
func Source(id int64) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets a station at which the search stops once its distance is final.
// Only the target's distance is guaranteed final; other entries may be tentative.
func Target(id int64) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: stations whose shortest distance would
// exceed max are left Unreachable. A negative max is recorded and reported
// as ErrBadMaxDistance by Dijkstra.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no target, no predecessor
// map and no distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      noVertex,
		Target:      noVertex,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
