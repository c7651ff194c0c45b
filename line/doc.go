// SPDX-License-Identifier: MIT

// Package line models a subway line as an ordered chain of directed sections.
//
// A Section connects an up-station to a down-station with a positive integer
// distance. Sections is the per-line chain and the only place where chain
// invariants are enforced:
//
//   - Contiguity: for i > 0, sections[i].Up() equals sections[i-1].Down().
//   - No revisits: a new section's down-station may not already be the
//     up-station of any section on the line (no cycles, no branches).
//   - Minimum size: once a line holds one section it never shrinks below one.
//
// Only the tail of a chain can change. Add extends the line past its terminal
// station; Remove drops the terminal section. Interior insertion and removal
// are not supported.
//
//	    up-terminal                                down-terminal
//	  [Sinnonhyeon] --10--> [Gangnam] --15--> [Yangjae]
//	                                               ^ Add/Remove happen here
//
// Every failure is a *ChainError carrying the operation and the offending
// station; match the kind with errors.Is against the sentinels:
//
//	ErrChainExtension     - new section does not start at the terminal station.
//	ErrDuplicateStation   - new section's down-station is already on the line.
//	ErrMinimumChain       - removal from a one-section line.
//	ErrUnknownStation     - removal of a station that is not on the line.
//	ErrNotTerminalStation - removal of a station other than the terminal one.
//
// Sections and Line carry no locks. Callers that mutate a line from several
// goroutines must serialize access themselves.
package line
