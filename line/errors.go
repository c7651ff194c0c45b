// SPDX-License-Identifier: MIT

package line

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/station"
)

// Sentinel errors for sections, chains and lines.
var (
	// ErrNonPositiveDistance indicates a section distance <= 0.
	ErrNonPositiveDistance = errors.New("line: section distance must be positive")

	// ErrLoopSection indicates a section whose up- and down-station are the same.
	ErrLoopSection = errors.New("line: section must connect two different stations")

	// ErrChainExtension indicates the new section does not continue the line.
	ErrChainExtension = errors.New("line: new section's up-station does not match the existing line's terminal station")

	// ErrDuplicateStation indicates the new section's down-station is already on the line.
	ErrDuplicateStation = errors.New("line: down-station already registered on this line")

	// ErrMinimumChain indicates a removal that would leave the line without sections.
	ErrMinimumChain = errors.New("line: cannot remove from a chain of length 1")

	// ErrUnknownStation indicates the station to remove is not on the line.
	ErrUnknownStation = errors.New("line: station is not registered on this line")

	// ErrNotTerminalStation indicates the station to remove is not the terminal station.
	ErrNotTerminalStation = errors.New("line: station is not the terminal station of the last section")

	// ErrInvalidLineID indicates a zero or negative line identifier.
	ErrInvalidLineID = errors.New("line: identifier must be positive")

	// ErrEmptyLineName indicates a line without a name.
	ErrEmptyLineName = errors.New("line: name is empty")
)

// Chain operations reported in ChainError.Op.
const (
	OpAdd    = "add section"
	OpRemove = "remove section"
)

// ChainError reports a rejected chain mutation together with the station that
// caused it. Err is always one of the package sentinels.
type ChainError struct {
	Op      string
	Station station.Station
	Err     error
}

func (e *ChainError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s: station %s: %v", e.Op, e.Station, e.Err)
}

func (e *ChainError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

func chainError(op string, s station.Station, err error) error {
	return &ChainError{Op: op, Station: s, Err: err}
}
