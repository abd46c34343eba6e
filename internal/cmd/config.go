package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// chessrules config
func Config(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.cfg.Marshal()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# default location: %s\n", config.DefaultPath())
			_, err = out.Write(data)
			return err
		},
	}
}
