// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading.
var (
	// ErrRead indicates the file could not be read.
	ErrRead = errors.New("loader: cannot read network file")

	// ErrDecode indicates the document is not valid YAML for a network.
	ErrDecode = errors.New("loader: cannot decode network document")

	// ErrInvalidDocument indicates a field failed validation.
	ErrInvalidDocument = errors.New("loader: invalid network document")

	// ErrDuplicateLine indicates two lines share an identifier.
	ErrDuplicateLine = errors.New("loader: line identifier already defined")
)

// Operations reported in Error.Op.
const (
	OpLoad     = "loader.load"
	OpParse    = "loader.parse"
	OpValidate = "loader.validate"
	OpMap      = "loader.map"
)

// Error wraps a loading failure with the operation and the document path.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
