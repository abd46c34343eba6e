package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// chessrules moves
func Moves(opts *options) *cobra.Command {
	var fen string

	cmd := &cobra.Command{
		Use:   "moves [square]",
		Short: "List the legal moves of a position",
		Long: heredoc.Doc(`moves lists the legal moves in the given position, one per
			line in UCI and SAN notation. With a square argument only the
			moves of the piece on that square are listed.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := game.New(game.WithFEN(fen), game.WithDrawRules(opts.cfg.Rules.DrawRules()))
			if err != nil {
				return err
			}

			squares := g.MovableSquares()
			if len(args) == 1 {
				sq, err := chess.ParseSquare(args[0])
				if err != nil {
					return err
				}
				squares = []chess.Square{sq}
			}

			pos := g.Position()
			out := cmd.OutOrStdout()
			count := 0
			for _, sq := range squares {
				for _, m := range g.LegalMoves(sq) {
					fmt.Fprintf(out, "%-6s %s\n", m, engine.SAN(&pos, m))
					count++
				}
			}
			fmt.Fprintf(out, "%d moves, %s\n", count, g.Status())
			return nil
		},
	}

	cmd.Flags().StringVarP(&fen, "fen", "f", engine.InitialFEN, "Position to inspect")
	return cmd
}
