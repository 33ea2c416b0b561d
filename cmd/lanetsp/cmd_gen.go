package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lanetsp/builder"
	"github.com/katalvlaran/lanetsp/matrix"
	"github.com/katalvlaran/lanetsp/wire"
)

func newGenCmd(_ *app) *cobra.Command {
	var (
		nodes     int
		seed      int64
		id        uint32
		kind      string
		maxWeight uint32
		asym      bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				d   *matrix.Distance
				err error
			)
			if maxWeight < 1 || (kind == "grid" && maxWeight > builder.MaxGridSpan) {
				return fmt.Errorf("--max-weight %d out of range for kind %q", maxWeight, kind)
			}
			switch kind {
			case "random":
				d, err = builder.Random(nodes,
					builder.WithSeed(seed),
					builder.WithUniformWeight(1, maxWeight),
					builder.WithSymmetric(!asym))
			case "ring":
				d, err = builder.Ring(nodes, maxWeight)
			case "grid":
				d, err = builder.Grid(nodes, builder.WithSeed(seed), builder.WithGridSpan(int(maxWeight)))
			case "remote":
				if err = wire.CheckNodes(nodes); err != nil {
					return err
				}
				sc, err := builder.ScenarioFor(nodes, id)
				if err != nil {
					return err
				}
				return builder.WriteScenario(cmd.OutOrStdout(), sc)
			default:
				return fmt.Errorf("unknown kind %q (random, ring, grid, remote)", kind)
			}
			if err != nil {
				return err
			}

			return builder.WriteScenario(cmd.OutOrStdout(), builder.NewScenario(id, d))
		},
	}
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 8, "node count")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().Uint32Var(&id, "id", 0, "scenario id")
	cmd.Flags().StringVar(&kind, "kind", "random", "random, ring, grid or remote")
	cmd.Flags().Uint32Var(&maxWeight, "max-weight", 100, "largest weight (ring: edge weight, grid: span)")
	cmd.Flags().BoolVar(&asym, "asymmetric", false, "draw both directions independently (random only)")

	return cmd
}
