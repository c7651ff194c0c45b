// SPDX-License-Identifier: MIT

package path

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/station"
)

// Sentinel errors for route queries.
var (
	// ErrSameStation indicates a query whose source and target are the same station.
	ErrSameStation = errors.New("path: source and target are the same station")

	// ErrDisconnected indicates that no route joins source and target.
	ErrDisconnected = errors.New("path: source and target are not connected")
)

// Error reports a failed query with both endpoints. Err is one of the sentinels.
type Error struct {
	Source station.Station
	Target station.Station
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("path %s → %s: %v", e.Source, e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Result is a route from source to target, both inclusive.
//
// Edges[i] is the section ridden from Stations[i] to Stations[i+1], so
// len(Edges) == len(Stations)-1 and Distance is the sum of their weights.
type Result struct {
	Stations []station.Station
	Distance int64
	Edges    []network.Edge
}

// Lines returns the names of the lines ridden, in order, with consecutive
// repeats collapsed.
func (r Result) Lines() []string {
	var out []string
	for _, e := range r.Edges {
		if len(out) == 0 || out[len(out)-1] != e.LineName {
			out = append(out, e.LineName)
		}
	}

	return out
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for query diagnostics. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMaxDistance rejects routes longer than max as ErrDisconnected.
// max <= 0 disables the cap.
func WithMaxDistance(max int64) Option {
	return func(f *Finder) {
		if max > 0 {
			f.maxDistance = max
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
