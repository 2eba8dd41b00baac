package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/earthtraveller1/tictactoe/game"
	"github.com/earthtraveller1/tictactoe/render"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options holds the values of command-line flags. Flags only override the
// config file and environment when they are set explicitly.
type options struct {
	configPath string
	logFile    string
	flags      game.GameConfig
}

func newRootCmd() *cobra.Command {
	opts := &options{flags: game.NewGameConfig()}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play two-player tic-tac-toe",
		Long: `tictactoe is a two-player tic-tac-toe game, taking turns on
the same machine.

Run with no arguments to play in a window
	tictactoe

Play in the terminal instead
	tictactoe tui

Start from a saved position
	tictactoe --position position.yaml
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(config.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			session, err := newSession(config, config.Layout(), logger)
			if err != nil {
				return err
			}

			var runErr error
			pixelgl.Run(func() {
				runErr = render.Run(config, session, logrus.NewEntry(logger))
			})
			return runErr
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.flags.LogLevel, "log-level", opts.flags.LogLevel, "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&opts.flags.PositionFile, "position", "p", "", "YAML snapshot of the starting position")
	rootCmd.PersistentFlags().DurationVar(&opts.flags.HighlightDuration, "highlight", opts.flags.HighlightDuration, "How long the last move stays highlighted")

	rootCmd.Flags().StringVar(&opts.flags.Title, "title", opts.flags.Title, "Window title")
	rootCmd.Flags().Float64VarP(&opts.flags.CellSize, "cell-size", "s", opts.flags.CellSize, "Size of a board cell, in pixels")
	rootCmd.Flags().Float64Var(&opts.flags.Margin, "margin", opts.flags.Margin, "Space around the board, in pixels")
	rootCmd.Flags().StringVar(&opts.flags.PlayerAImage, "x-image", opts.flags.PlayerAImage, "Image drawn for X")
	rootCmd.Flags().StringVar(&opts.flags.PlayerBImage, "o-image", opts.flags.PlayerBImage, "Image drawn for O")

	rootCmd.AddCommand(newTUICmd(opts), newConfigCmd(opts))
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, then applies the flags
// set on the command line
func (opts *options) loadConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config, err := game.LoadGameConfig(opts.configPath)
	if err != nil {
		return config, err
	}

	flags := cmd.Flags()
	overrides := map[string]func(){
		"log-level": func() { config.LogLevel = opts.flags.LogLevel },
		"position":  func() { config.PositionFile = opts.flags.PositionFile },
		"highlight": func() { config.HighlightDuration = opts.flags.HighlightDuration },
		"title":     func() { config.Title = opts.flags.Title },
		"cell-size": func() { config.CellSize = opts.flags.CellSize },
		"margin":    func() { config.Margin = opts.flags.Margin },
		"x-image":   func() { config.PlayerAImage = opts.flags.PlayerAImage },
		"o-image":   func() { config.PlayerBImage = opts.flags.PlayerBImage },
	}
	for name, override := range overrides {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			override()
		}
	}

	return config, config.Validate()
}

func newSession(config game.GameConfig, layout game.Layout, logger *logrus.Logger) (*game.Session, error) {
	board, err := config.CreateBoard()
	if err != nil {
		return nil, err
	}

	entry := logrus.NewEntry(logger)
	if config.PositionFile != "" {
		entry.WithField("position", config.PositionFile).Info("Loaded starting position")
	}

	return game.NewSession(board, layout,
		game.WithLogger(entry),
		game.WithHighlightDuration(config.HighlightDuration),
		game.WithGameEndHandler(func(board *game.Board) {
			entry.WithField("board", strings.TrimSpace(board.Snapshot().Serialize())).Debug("Final position")
		}),
	), nil
}
