// SPDX-License-Identifier: MIT

// Package loader reads a subway network definition from YAML.
//
// Document shape:
//
//	stations:
//	  - id: 1
//	    name: Sinnonhyeon
//	lines:
//	  - id: 1
//	    name: Shinbundang
//	    color: bg-red-600
//	    sections:
//	      - {up: 1, down: 2, distance: 10}
//	      - {up: 2, down: 3, distance: 15}
//
// The document is decoded with gopkg.in/yaml.v3, checked field by field with
// go-playground/validator, and then mapped onto the domain: stations go into
// a station.Registry and each line is created from its first section and
// extended one section at a time, so line.Sections rejects malformed chains
// exactly as it would at runtime.
//
// Every failure is an *Error with the operation and the file path; match the
// cause with errors.Is against ErrRead, ErrDecode, ErrInvalidDocument or the
// station/line sentinels.
package loader
