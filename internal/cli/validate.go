// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/network"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the network file and report what it contains",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}

			st := network.Build(n.Sources()...).Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"OK stations=%d lines=%d sections=%d transfers=%d\n",
				n.Stations.Len(), st.LineCount, st.EdgeCount, st.TransferStationCount)
			return err
		},
	}
}
