// SPDX-License-Identifier: MIT

// Command subwaypath answers route queries over a subway network file.
package main

import "github.com/katalvlaran/subway/internal/cli"

func main() {
	cli.Execute()
}
