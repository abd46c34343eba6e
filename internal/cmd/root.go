// Package cmd implements the chessrules command line.
package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const version = "v0.1.0"

// SPIN is the spinner.CharSets index used for long-running commands.
const SPIN = 14

// options is shared by every command. cfg is filled in before any command
// runs.
type options struct {
	configPath string
	cfg        *config.Config
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "chessrules",
		Short: "Play, inspect and verify chess positions",
		Long: heredoc.Doc(`chessrules is a chess rules engine. It knows every rule of
			the game, including castling, en passant, promotion and the
			draw rules, but it does not play: moves are chosen by you or,
			in self-play, at random.

			Settings are read from $XDG_CONFIG_HOME/chessrules/config.yaml
			when that file exists, or from the file given with --config.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logrus.SetLevel(verbosityLevel(cfg.Verbosity))
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show chessrules' Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Read settings from this YAML file")

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	// Register the various commands.
	root.AddCommand(Play(opts))
	root.AddCommand(Moves(opts))
	root.AddCommand(Perft(opts))
	root.AddCommand(SelfPlay(opts))
	root.AddCommand(Config(opts))

	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func verbosityLevel(v int) logrus.Level {
	switch v {
	case 0:
		return logrus.ErrorLevel
	case 1:
		return logrus.InfoLevel
	case 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
