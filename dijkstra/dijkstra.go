// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/subway/network"
)

// Dijkstra computes shortest distances from Options.Source over g.
//
// Returns:
//
//   - dist: station ID → minimum distance (Unreachable if never settled).
//   - prev: station ID → predecessor on the chosen shortest route, only when
//     WithReturnPath is given (nil otherwise). The source and unreached
//     stations have no entry.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance).
//  2. Source must be set (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source, and Target when set (ErrVertexNotFound).
//  5. No edge in g may have a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *network.Graph, opts ...Option) (map[int64]int64, map[int64]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == noVertex {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != noVertex && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	// Fail fast on negative weights; sections reject them, but a Graph may be
	// fed by any SectionSource.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]int64, n),
		prev:    make(map[int64]int64, n),
		visited: make(map[int64]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the station-ID route source → … → target from a
// predecessor map returned by Dijkstra. A route from a station to itself is
// the single-element slice.
// Returns ErrNoPath if target was never reached from source.
func PathTo(prev map[int64]int64, source, target int64) ([]int64, error) {
	if source == target {
		return []int64{source}, nil
	}

	var path []int64
	seen := make(map[int64]bool)
	for cur := target; cur != source; {
		if seen[cur] {
			return nil, fmt.Errorf("%w: %d (predecessor cycle)", ErrNoPath, target)
		}
		seen[cur] = true
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNoPath, target)
		}
		cur = p
	}
	path = append(path, source)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *network.Graph
	options Options
	dist    map[int64]int64
	prev    map[int64]int64
	visited map[int64]bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes Source at distance 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v.ID] = Unreachable
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled station and relaxes its outgoing edges
// until the heap drains, the distance cap is exceeded or Target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to shorten the distance of every station one section away from u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var newDist int64
	for _, e := range neighbors {
		v := e.To
		if r.visited[v] {
			continue
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, e.Weight)
		}

		// Guard the sum against int64 wrap-around.
		if e.Weight > Unreachable-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: equal-length alternatives keep the
		// predecessor found first.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is one heap entry: a station and a tentative distance.
type nodeItem struct {
	id   int64
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by station ID so ties pop deterministically.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
