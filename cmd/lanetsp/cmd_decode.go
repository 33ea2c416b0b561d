package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanetsp/perm"
)

func newDecodeCmd(_ *app) *cobra.Command {
	var (
		nodes int
		index uint64
	)
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Print the visiting sequence of a permutation index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := perm.Decode(index, nodes)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p)

			return err
		},
	}
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "node count N")
	cmd.Flags().Uint64VarP(&index, "index", "i", 0, "index in [0, N!)")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}
