// SPDX-License-Identifier: MIT

package path

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/subway/bfs"
	"github.com/katalvlaran/subway/dijkstra"
	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/station"
)

// Finder runs route queries. The zero value is not usable; call NewFinder.
type Finder struct {
	log         *slog.Logger
	maxDistance int64
}

// NewFinder returns a Finder configured by opts.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{log: discardLogger()}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FindPath returns the minimum-distance route from source to target across
// every section of lines.
//
// Returns ErrSameStation when source equals target, and ErrDisconnected when
// either station is missing from the network or no route joins them.
// Among several minimum routes the same one is returned on every call.
// Complexity: O((V + E) log V).
func (f *Finder) FindPath(source, target station.Station, lines ...network.SectionSource) (Result, error) {
	if source.Equal(target) {
		return Result{}, f.fail(source, target, ErrSameStation)
	}

	g := network.Build(lines...)
	if !g.HasVertex(source.ID) || !g.HasVertex(target.ID) {
		return Result{}, f.fail(source, target, ErrDisconnected)
	}

	opts := []dijkstra.Option{
		dijkstra.Source(source.ID),
		dijkstra.Target(target.ID),
		dijkstra.WithReturnPath(),
	}
	if f.maxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(f.maxDistance))
	}
	dist, prev, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("path %s → %s: %w", source, target, err)
	}
	if dist[target.ID] == dijkstra.Unreachable {
		return Result{}, f.fail(source, target, ErrDisconnected)
	}

	ids, err := dijkstra.PathTo(prev, source.ID, target.ID)
	if err != nil {
		return Result{}, f.fail(source, target, ErrDisconnected)
	}
	res, err := assemble(g, ids)
	if err != nil {
		return Result{}, fmt.Errorf("path %s → %s: %w", source, target, err)
	}

	f.log.Debug("path.found",
		slog.Int64("source", source.ID),
		slog.Int64("target", target.ID),
		slog.Int64("distance", res.Distance),
		slog.Int("stations", len(res.Stations)),
		slog.Int("graph_vertices", g.VertexCount()),
		slog.Int("graph_edges", g.EdgeCount()),
	)

	return res, nil
}

// FindFewestStations returns the route from source to target that passes the
// fewest stations. Each hop rides the lightest section between its two
// stations, and Distance is the sum of those sections.
// Failures are reported as in FindPath; the distance cap does not apply.
func (f *Finder) FindFewestStations(source, target station.Station, lines ...network.SectionSource) (Result, error) {
	if source.Equal(target) {
		return Result{}, f.fail(source, target, ErrSameStation)
	}

	g := network.Build(lines...)
	if !g.HasVertex(source.ID) || !g.HasVertex(target.ID) {
		return Result{}, f.fail(source, target, ErrDisconnected)
	}

	found := errors.New("target reached")
	walk, err := bfs.Search(g, source.ID, bfs.WithOnVisit(func(id int64, _ int) error {
		if id == target.ID {
			return found
		}
		return nil
	}))
	if err != nil && !errors.Is(err, found) {
		return Result{}, fmt.Errorf("path %s → %s: %w", source, target, err)
	}

	ids, err := walk.PathTo(target.ID)
	if err != nil {
		return Result{}, f.fail(source, target, ErrDisconnected)
	}
	res, err := assemble(g, ids)
	if err != nil {
		return Result{}, fmt.Errorf("path %s → %s: %w", source, target, err)
	}

	f.log.Debug("path.fewest_stations",
		slog.Int64("source", source.ID),
		slog.Int64("target", target.ID),
		slog.Int("stations", len(res.Stations)),
		slog.Int64("distance", res.Distance),
	)

	return res, nil
}

// Reachable returns every station reachable from source, source excluded,
// sorted by ID. A source that no line serves reaches nothing.
func (f *Finder) Reachable(source station.Station, lines ...network.SectionSource) ([]station.Station, error) {
	g := network.Build(lines...)
	if !g.HasVertex(source.ID) {
		return []station.Station{}, nil
	}

	walk, err := bfs.Search(g, source.ID)
	if err != nil {
		return nil, fmt.Errorf("reachable from %s: %w", source, err)
	}

	out := make([]station.Station, 0, len(walk.Order))
	for _, v := range g.Vertices() {
		if v.ID != source.ID && walk.Reached(v.ID) {
			out = append(out, v)
		}
	}

	return out, nil
}

// assemble turns a station-ID route into a Result, picking the lightest
// parallel edge for each hop.
func assemble(g *network.Graph, ids []int64) (Result, error) {
	res := Result{
		Stations: make([]station.Station, 0, len(ids)),
		Edges:    make([]network.Edge, 0, len(ids)),
	}
	for i, id := range ids {
		s, ok := g.Station(id)
		if !ok {
			return Result{}, fmt.Errorf("%w: %d", network.ErrVertexNotFound, id)
		}
		res.Stations = append(res.Stations, s)
		if i == 0 {
			continue
		}
		e, ok := g.LightestEdge(ids[i-1], id)
		if !ok {
			return Result{}, fmt.Errorf("path: no section %d→%d", ids[i-1], id)
		}
		res.Edges = append(res.Edges, *e)
		res.Distance += e.Weight
	}

	return res, nil
}

func (f *Finder) fail(source, target station.Station, kind error) error {
	f.log.Debug("path.rejected",
		slog.Int64("source", source.ID),
		slog.Int64("target", target.ID),
		slog.String("reason", kind.Error()),
	)

	return &Error{Source: source, Target: target, Err: kind}
}
