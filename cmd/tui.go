package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/earthtraveller1/tictactoe/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *options) *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		Long: `Play in the terminal, with the mouse or the number keys 1-9
(numbered left to right, top to bottom).

Logs would garble the screen, so they are discarded unless --log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			var out io.Writer = io.Discard
			if opts.logFile != "" {
				file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer file.Close()
				out = file
			}
			logger, err := newLogger(config.LogLevel, out)
			if err != nil {
				return err
			}

			session, err := newSession(config, tui.Layout, logger)
			if err != nil {
				return err
			}
			return tui.Run(session, logrus.NewEntry(logger))
		},
	}

	tuiCmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	return tuiCmd
}
