// SPDX-License-Identifier: MIT

package station

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the in-memory station table: the identity source that lines,
// sections and path queries resolve stations against.
// mu guards byID; the zero value is not usable, call NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	byID map[int64]Station
}

// NewRegistry returns an empty Registry, optionally seeded with stations.
// Seeding stops at the first invalid or duplicate station.
func NewRegistry(seed ...Station) (*Registry, error) {
	r := &Registry{byID: make(map[int64]Station, len(seed))}
	for _, s := range seed {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add registers s after re-validating it through New.
// Complexity: O(1).
func (r *Registry) Add(s Station) error {
	valid, err := New(s.ID, s.Name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[valid.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, valid.ID)
	}
	r.byID[valid.ID] = valid

	return nil
}

// Get returns the station registered under id, or ErrStationNotFound.
// Complexity: O(1).
func (r *Registry) Get(id int64) (Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Station{}, fmt.Errorf("%w: %d", ErrStationNotFound, id)
	}

	return s, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]

	return ok
}

// Resolve looks up every id in order and fails on the first unknown one.
func (r *Registry) Resolve(ids ...int64) ([]Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Station, 0, len(ids))
	for _, id := range ids {
		s, ok := r.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrStationNotFound, id)
		}
		out = append(out, s)
	}

	return out, nil
}

// All returns every registered station sorted by ID.
// Complexity: O(V·log V).
func (r *Registry) All() []Station {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Station, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Len returns the number of registered stations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}
