// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a network.Graph, answering
// reachability and fewest-hops route questions.
//
// Sections are directed, so the search follows Up→Down only. Neighbors are
// expanded in ascending station ID, which makes Order and every PathTo result
// reproducible.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/subway/network"
)

// queueItem pairs a station ID with its hop count.
type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *network.Graph
	opts    Options
	queue   []queueItem
	visited map[int64]bool
	res     *Result
}

// Search runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any OnVisit error.
// On error the partial Result is still returned when the walk had started.
func Search(g *network.Graph, start int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int64]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}
	w.enqueue(start, 0, 0, false)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id int64, d int, parent int64, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen one-hop neighbor allowed by the
// filter and by MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id, true)
	}

	return nil
}
