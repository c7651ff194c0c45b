// SPDX-License-Identifier: MIT

package line_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/line"
	"github.com/katalvlaran/subway/station"
)

// ExampleSections shows tail extension and the two add-side rejections.
func ExampleSections() {
	var c line.Sections
	_ = c.Add(line.MustSection(stn1, stn2, 10))
	_ = c.Add(line.MustSection(stn2, stn3, 15))

	// Does not start at the terminal station.
	err := c.Add(line.MustSection(stn1, stn4, 5))
	fmt.Println(errors.Is(err, line.ErrChainExtension))

	// Would revisit Sinnonhyeon.
	err = c.Add(line.MustSection(stn3, stn1, 5))
	fmt.Println(errors.Is(err, line.ErrDuplicateStation))

	fmt.Println(station.Names(c.Stations()))
	// Output:
	// true
	// true
	// [Sinnonhyeon Gangnam Yangjae]
}

// ExampleLine_RemoveSection shows that only the terminal station can be removed.
func ExampleLine_RemoveSection() {
	l, _ := line.New(1, "Shinbundang", "bg-red-600", line.MustSection(stn1, stn2, 10))
	_ = l.AddSection(line.MustSection(stn2, stn3, 15))

	fmt.Println(l.RemoveSection(stn2))
	fmt.Println(l.RemoveSection(stn3))
	fmt.Println(l.RemoveSection(stn2))
	// Output:
	// remove section: station Gangnam(#2): line: station is not the terminal station of the last section
	// <nil>
	// remove section: station Gangnam(#2): line: cannot remove from a chain of length 1
}
