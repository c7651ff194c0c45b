// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/station"
)

// Network is a loaded station table plus its lines, in document order.
type Network struct {
	Stations *station.Registry
	Lines    []*line.Line
}

// Line returns the line with the given identifier.
func (n *Network) Line(id int64) (*line.Line, bool) {
	for _, l := range n.Lines {
		if l.ID() == id {
			return l, true
		}
	}

	return nil, false
}

// Sources returns the lines as network.SectionSource values for path queries.
func (n *Network) Sources() []network.SectionSource {
	out := make([]network.SectionSource, len(n.Lines))
	for i, l := range n.Lines {
		out[i] = l
	}

	return out
}

// Load reads and parses the network document at path.
func Load(path string) (*Network, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: OpLoad, Path: path, Err: fmt.Errorf("%w: %v", ErrRead, err)}
	}

	return Parse(b, path)
}

// Parse decodes, validates and maps a network document.
// source names the document in errors and may be empty.
func Parse(data []byte, source string) (*Network, error) {
	var doc YAMLNetwork
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Op: OpParse, Path: source, Err: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	if err := validateDocument(&doc); err != nil {
		return nil, &Error{Op: OpValidate, Path: source, Err: err}
	}

	n, err := Map(doc)
	if err != nil {
		return nil, &Error{Op: OpMap, Path: source, Err: err}
	}

	return n, nil
}
