package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// chessrules play
func Play(opts *options) *cobra.Command {
	var (
		fen     string
		unicode bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game from the terminal",
		Long: heredoc.Doc(`play starts a game and reads commands from standard input,
			one per line:

			  e2e4, e7e8q    play a move in UCI notation
			  moves <square> list the legal moves of a piece
			  board          print the board
			  fen            print the position as FEN
			  history        print the moves played so far
			  pgn, json      print the game record
			  quit           leave the game

			A pawn move to the last rank without a promotion piece
			promotes to the configured default piece.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("unicode") {
				opts.cfg.Display.Unicode = unicode
			}

			registry := session.NewRegistry(logrus.WithField("cmd", "play"),
				game.WithDrawRules(opts.cfg.Rules.DrawRules()))
			s, err := registry.Create(game.WithFEN(fen))
			if err != nil {
				return err
			}
			defer func() { _ = registry.Remove(s.ID) }()

			p := &player{
				session: s,
				cfg:     opts,
				out:     cmd.OutOrStdout(),
			}
			return p.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVarP(&fen, "fen", "f", engine.InitialFEN, "Start position")
	cmd.Flags().BoolVarP(&unicode, "unicode", "u", false, "Draw the board with chess symbols")
	return cmd
}

type player struct {
	session *session.Session
	cfg     *options
	out     io.Writer
}

func (p *player) run(in io.Reader) error {
	p.printBoard()
	p.prompt()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			p.prompt()
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "board":
			p.printBoard()
		case "fen":
			fmt.Fprintln(p.out, p.session.State().FEN())
		case "history":
			fmt.Fprintln(p.out, output.Movetext(p.session.State(), output.DefaultLineLength))
		case "pgn":
			p.printRecord(output.PGN)
		case "json":
			p.printRecord(output.JSON)
		case "moves":
			if len(fields) != 2 {
				fmt.Fprintln(p.out, "usage: moves <square>")
				break
			}
			p.printMoves(fields[1])
		default:
			p.move(fields[0])
		}
		p.prompt()
	}
	return scanner.Err()
}

func (p *player) prompt() {
	st := p.session.State()
	if st.Status.IsTerminal() {
		fmt.Fprintf(p.out, "game over: %s %s\n", st.Status, st.Status.Result())
		return
	}
	fmt.Fprintf(p.out, "%s> ", st.SideToMove())
}

func (p *player) move(text string) {
	m, err := chess.ParseMove(text)
	if err != nil {
		fmt.Fprintf(p.out, "cannot read move %q: %v\n", text, err)
		return
	}
	m = p.withDefaultPromotion(m)

	st, err := p.session.ApplyMove(m)
	if err != nil {
		fmt.Fprintf(p.out, "illegal move %s: %s\n", text, errors.ReasonOf(err))
		return
	}

	last, _ := st.LastMove()
	fmt.Fprintf(p.out, "%d. %s\n", last.Ply, last.SAN)
	p.printBoard()
	if p.cfg.cfg.Display.ShowFEN {
		fmt.Fprintln(p.out, st.FEN())
	}
	if st.Status.Kind == chess.Check {
		fmt.Fprintf(p.out, "%s is in check\n", st.Status.Colour)
	}
	if st.Repetitions > 1 && !st.Status.IsTerminal() {
		fmt.Fprintf(p.out, "position has occurred %d times\n", st.Repetitions)
	}
}

// withDefaultPromotion fills in the configured promotion piece for a pawn
// reaching the last rank.
func (p *player) withDefaultPromotion(m chess.Move) chess.Move {
	if m.Promotion != chess.NoKind {
		return m
	}
	st := p.session.State()
	piece := st.Position.Board.PieceAt(m.From)
	if piece.Is(st.SideToMove(), chess.Pawn) && m.To.Rank() == chess.PromotionRank(piece.Colour) {
		m.Promotion = p.cfg.cfg.Rules.PromotionKind()
	}
	return m
}

func (p *player) printBoard() {
	st := p.session.State()
	fmt.Fprint(p.out, st.Position.Board.Render(p.cfg.cfg.Display.Unicode))
}

func (p *player) printMoves(square string) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		fmt.Fprintf(p.out, "cannot read square %q: %v\n", square, err)
		return
	}

	moves := p.session.LegalMoves(sq)
	if len(moves) == 0 {
		fmt.Fprintf(p.out, "no legal moves from %s\n", sq)
		return
	}
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	fmt.Fprintln(p.out, strings.Join(texts, " "))
}

func (p *player) printRecord(format output.Format) {
	tags := output.Tags{"Event": "chessrules play", "Site": "terminal"}
	var err error
	switch format {
	case output.JSON:
		err = output.WriteJSON(p.out, p.session.State(), tags)
	default:
		err = output.WritePGN(p.out, p.session.State(), tags, output.DefaultLineLength)
	}
	if err != nil {
		logrus.WithError(err).Warn("cannot write game record")
	}
}
