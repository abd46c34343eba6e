package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// report is the YAML form of a self-play run.
type report struct {
	Games           int            `yaml:"games"`
	Plies           int            `yaml:"plies"`
	Positions       int            `yaml:"positions"`
	UniquePositions int            `yaml:"unique_positions"`
	Results         map[string]int `yaml:"results"`
	Errors          []string       `yaml:"errors,omitempty"`
	Stopped         bool           `yaml:"stopped,omitempty"`
	Elapsed         string         `yaml:"elapsed"`
}

// chessrules selfplay
func SelfPlay(opts *options) *cobra.Command {
	var (
		fen      string
		asYAML   bool
		failFast bool
		outPath  string
		format   string
		flagCfg  = config.NewSelfPlayConfig()
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Stress the rules with random games",
		Long: heredoc.Doc(`selfplay plays many games of uniformly random legal moves
			in parallel. After every move it checks that the move was
			accepted and that no king was left in check, so any
			inconsistency in the rules shows up as an error.

			Games are reproducible: game i uses seed --seed + i. With
			--out every game is saved as PGN or JSON, in index order.
			With --fail-fast the run stops at the first inconsistency
			and games not yet started are skipped.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			sp := mergeSelfPlayFlags(cmd, opts.cfg.SelfPlay, *flagCfg)
			if err := sp.Validate(); err != nil {
				return err
			}
			if f := output.Format(format); f != output.PGN && f != output.JSON {
				return fmt.Errorf("unknown output format %q", format)
			}

			positions := hashing.NewThreadSafeRepetitionTable()
			pool := worker.NewPool(
				worker.SelfPlay(opts.cfg.Rules.DrawRules(), positions),
				worker.WithWorkers(sp.Workers),
				worker.WithBufferSize(sp.Workers*2),
			)

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Suffix = fmt.Sprintf(" playing %d games on %d workers", sp.Games, pool.NumWorkers())
			s.Start()
			start := time.Now()

			pool.Start()
			go func() {
				for i := 0; i < sp.Games && !pool.IsStopped(); i++ {
					pool.Submit(worker.WorkItem{
						Index:    i,
						Seed:     sp.Seed + int64(i),
						FEN:      fen,
						MaxPlies: sp.MaxPlies,
					})
				}
				pool.Close()
			}()
			games := make([]worker.ProcessResult, sp.Games)
			summary := worker.CollectFunc(pool, func(r worker.ProcessResult) {
				games[r.Index] = r
				if failFast && r.Error != nil && !pool.IsStopped() {
					logrus.WithField("game", r.Index).Warn("stopping after first failure")
					pool.Stop()
				}
			})

			s.Stop()

			r := report{
				Games:           summary.Games,
				Plies:           summary.Plies,
				Positions:       positions.Len(),
				UniquePositions: positions.UniqueCount(),
				Results:         summary.Results,
				Stopped:         pool.IsStopped(),
				Elapsed:         time.Since(start).Round(time.Millisecond).String(),
			}
			for _, err := range summary.Errors {
				logrus.Error(err)
				r.Errors = append(r.Errors, err.Error())
			}

			if outPath != "" {
				if err := writeGames(outPath, output.Format(format), games); err != nil {
					return err
				}
			}
			if err := writeReport(cmd, r, asYAML); err != nil {
				return err
			}
			if len(r.Errors) > 0 {
				return fmt.Errorf("%d of %d games hit a rules inconsistency", len(r.Errors), r.Games)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fen, "fen", "f", engine.InitialFEN, "Start position of every game")
	cmd.Flags().IntVarP(&flagCfg.Games, "games", "g", flagCfg.Games, "Number of games")
	cmd.Flags().IntVarP(&flagCfg.Workers, "workers", "w", flagCfg.Workers, "Number of parallel workers")
	cmd.Flags().IntVar(&flagCfg.MaxPlies, "max-plies", flagCfg.MaxPlies, "Stop a game after this many plies (0 = no limit)")
	cmd.Flags().Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "Seed of the first game")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the report as YAML")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first game that hits an inconsistency")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Save the games to this file")
	cmd.Flags().StringVar(&format, "format", string(output.PGN), "Format of the saved games: pgn or json")
	return cmd
}

// mergeSelfPlayFlags overrides the configured values with the flags the
// user actually set.
func mergeSelfPlayFlags(cmd *cobra.Command, cfg, flags config.SelfPlayConfig) config.SelfPlayConfig {
	if cmd.Flags().Changed("games") {
		cfg.Games = flags.Games
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if cmd.Flags().Changed("max-plies") {
		cfg.MaxPlies = flags.MaxPlies
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.Seed
	}
	return cfg
}

// writeGames saves every game that got past its start position.
func writeGames(path string, format output.Format, games []worker.ProcessResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := output.NewGameWriter(f, format)
	if err != nil {
		return err
	}
	for _, g := range games {
		if g.FEN == "" {
			continue
		}
		tags := output.Tags{
			"Event": "chessrules selfplay",
			"Round": strconv.Itoa(g.Index + 1),
			"White": "random",
			"Black": "random",
		}
		if err := w.WriteGame(g.Game, tags); err != nil {
			return err
		}
	}
	return w.Close()
}

func writeReport(cmd *cobra.Command, r report, asYAML bool) error {
	out := cmd.OutOrStdout()
	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(out, "Games:            %d\n", r.Games)
	fmt.Fprintf(out, "Plies:            %d\n", r.Plies)
	fmt.Fprintf(out, "Positions:        %d\n", r.Positions)
	fmt.Fprintf(out, "Unique positions: %d\n", r.UniquePositions)
	results := maps.Keys(r.Results)
	slices.Sort(results)
	for _, res := range results {
		fmt.Fprintf(out, "  %-8s %d\n", res, r.Results[res])
	}
	if r.Stopped {
		fmt.Fprintln(out, "Stopped early after a failure")
	}
	fmt.Fprintf(out, "Elapsed:          %s\n", r.Elapsed)
	return nil
}
