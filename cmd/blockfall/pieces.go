package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "List piece variants",
	Long:  `Shows every piece variant with its 4x4 shape and its share of the random draw.`,
	Args:  cobra.NoArgs,
	RunE:  runPieces,
}

func runPieces(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	weights, err := cfg.Weights()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Piece variants:")
	fmt.Fprintln(out)

	lo := 0
	for _, k := range blockfall.Kinds() {
		hi := lo + weights[k]
		fmt.Fprintf(out, "  %-8s draw [%3d,%3d)  %5.1f%%\n",
			k, lo, hi, 100*float64(weights[k])/blockfall.DrawRange)
		for _, row := range strings.Split(blockfall.ShapeOf(k).String(), "\n") {
			fmt.Fprintf(out, "    %s\n", row)
		}
		fmt.Fprintln(out)
		lo = hi
	}
	return nil
}
