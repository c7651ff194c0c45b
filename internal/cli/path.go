// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/path"
)

const (
	byDistance = "distance"
	byStations = "stations"
)

func pathCmd(a *app) *cobra.Command {
	var source, target int64
	var by string

	c := &cobra.Command{
		Use:   "path",
		Short: "Print the route between two stations as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if by != byDistance && by != byStations {
				return fmt.Errorf("--by must be %q or %q, got %q", byDistance, byStations, by)
			}

			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			src, err := n.Stations.Get(source)
			if err != nil {
				return fmt.Errorf("--source: %w", err)
			}
			dst, err := n.Stations.Get(target)
			if err != nil {
				return fmt.Errorf("--target: %w", err)
			}

			f := a.finder()
			var res path.Result
			if by == byStations {
				res, err = f.FindFewestStations(src, dst, n.Sources()...)
			} else {
				res, err = f.FindPath(src, dst, n.Sources()...)
			}
			if err != nil {
				var pe *path.Error
				if errors.As(err, &pe) {
					if werr := writeJSON(cmd.OutOrStdout(), errorResult{Message: pe.Err.Error()}); werr != nil {
						return werr
					}
				}
				return err
			}

			return writeJSON(cmd.OutOrStdout(), toPathResult(res))
		},
	}

	c.Flags().Int64VarP(&source, "source", "s", 0, "Source station ID (required)")
	c.Flags().Int64VarP(&target, "target", "t", 0, "Target station ID (required)")
	c.Flags().StringVar(&by, "by", byDistance, "Route metric: distance|stations")

	_ = c.MarkFlagRequired("source")
	_ = c.MarkFlagRequired("target")
	return c
}
