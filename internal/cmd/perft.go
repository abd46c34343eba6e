package cmd

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// chessrules perft
func Perft(opts *options) *cobra.Command {
	var (
		fen    string
		depth  int
		divide bool
	)

	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count the leaf nodes of the legal move tree",
		Long: heredoc.Doc(`perft walks every legal move sequence of the given depth
			and counts the positions reached. The counts for well-known
			positions are published, which makes perft the standard test
			of a move generator.

			With --divide the count is split by root move, which helps
			find the branch where two generators disagree.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("depth must not be negative, got %d", depth)
			}
			pos, err := engine.NewPositionFromFEN(fen)
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Start()
			start := time.Now()

			var nodes uint64
			var counts map[string]uint64
			if divide {
				counts = engine.Divide(&pos, depth)
				for _, n := range counts {
					nodes += n
				}
			} else {
				nodes = engine.Perft(&pos, depth)
			}

			elapsed := time.Since(start)
			s.Stop()

			out := cmd.OutOrStdout()
			if divide {
				moves := maps.Keys(counts)
				slices.Sort(moves)
				for _, m := range moves {
					fmt.Fprintf(out, "%s: %d\n", m, counts[m])
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "Nodes: %d\n", nodes)

			logrus.WithFields(logrus.Fields{
				"depth":   depth,
				"elapsed": elapsed.Round(time.Millisecond),
			}).Debug("perft finished")
			return nil
		},
	}

	cmd.Flags().StringVarP(&fen, "fen", "f", engine.InitialFEN, "Root position")
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "Search depth in plies")
	cmd.Flags().BoolVar(&divide, "divide", false, "Print the count below each root move")
	return cmd
}
