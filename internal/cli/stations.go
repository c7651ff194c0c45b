// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/station"
)

func stationsCmd(a *app) *cobra.Command {
	var lineID int64

	c := &cobra.Command{
		Use:   "stations",
		Short: "Print a line's stations in travel order, or every station when --line is omitted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("line") {
				return writeJSON(cmd.OutOrStdout(), toStationResults(n.Stations.All()))
			}
			l, ok := n.Line(lineID)
			if !ok {
				return fmt.Errorf("--line: no line with id %d", lineID)
			}

			return writeJSON(cmd.OutOrStdout(), toStationResults(l.Stations()))
		},
	}

	c.Flags().Int64VarP(&lineID, "line", "l", 0, "Line ID")
	return c
}

func reachableCmd(a *app) *cobra.Command {
	var source int64

	c := &cobra.Command{
		Use:   "reachable",
		Short: "Print every station reachable from a source station",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			src, err := n.Stations.Get(source)
			if err != nil {
				return fmt.Errorf("--source: %w", err)
			}

			out, err := a.finder().Reachable(src, n.Sources()...)
			if err != nil {
				return err
			}
			if out == nil {
				out = []station.Station{}
			}

			return writeJSON(cmd.OutOrStdout(), toStationResults(out))
		},
	}

	c.Flags().Int64VarP(&source, "source", "s", 0, "Source station ID (required)")
	_ = c.MarkFlagRequired("source")
	return c
}
