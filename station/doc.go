// SPDX-License-Identifier: MIT

// Package station defines the Station identity value and the Registry that
// serves as the network's station table.
//
// A Station is a small immutable value: an identifier and a display name.
// Two stations are the same station when their identifiers match; the name is
// carried only for presentation. Lines and sections hold Station values and
// never own them; the Registry is the single place where identities are
// issued and resolved.
//
// Registry methods:
//
//	Add(s Station) error                  // O(1), rejects duplicate IDs
//	Get(id int64) (Station, error)        // O(1), ErrStationNotFound
//	Resolve(ids ...int64) ([]Station, error)
//	All() []Station                       // O(V·log V), sorted by ID
//	Len() int
//
// Errors:
//
//	ErrInvalidID       - identifier is zero or negative.
//	ErrEmptyName       - station name is empty.
//	ErrDuplicateID     - identifier already registered.
//	ErrStationNotFound - identifier not registered.
//
// The Registry is safe for concurrent use.
package station
