package cmd

import (
	"fmt"

	"github.com/earthtraveller1/tictactoe/game"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

func newConfigCmd(opts *options) *cobra.Command {
	var showEnv bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would run with, after applying
the config file, TICTACTOE_* environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if showEnv {
				description, err := game.EnvDescription()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, description)
				return nil
			}

			config, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			serialized, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("serializing config: %w", err)
			}
			fmt.Fprint(out, string(serialized))
			return nil
		},
	}

	configCmd.Flags().BoolVar(&showEnv, "env", false, "List the environment variables instead")
	return configCmd
}
