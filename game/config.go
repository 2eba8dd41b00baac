package game

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Title string `yaml:"title" env:"TICTACTOE_TITLE" env-description:"Window title"`

	CellSize     float64 `yaml:"cell-size" env:"TICTACTOE_CELL_SIZE" env-description:"Size of a board cell, in pixels"`
	Margin       float64 `yaml:"margin" env:"TICTACTOE_MARGIN" env-description:"Space around the board, in pixels"`
	HeaderHeight float64 `yaml:"header-height" env:"TICTACTOE_HEADER_HEIGHT" env-description:"Height of the status bar, in pixels"`

	// Sprites drawn in cells occupied by each player
	PlayerAImage string `yaml:"player-a-image" env:"TICTACTOE_PLAYER_A_IMAGE" env-description:"Image drawn for X"`
	PlayerBImage string `yaml:"player-b-image" env:"TICTACTOE_PLAYER_B_IMAGE" env-description:"Image drawn for O"`

	// Transparency of a move highlight when first displayed
	HighlightBaseAlpha float64 `yaml:"highlight-base-alpha" env:"TICTACTOE_HIGHLIGHT_BASE_ALPHA" env-description:"Opacity of a fresh move highlight"`
	// Total time a move highlight will be displayed
	HighlightDuration time.Duration `yaml:"highlight-duration" env:"TICTACTOE_HIGHLIGHT_DURATION" env-description:"How long a move stays highlighted"`

	// Snapshot file to load the starting position from
	PositionFile string `yaml:"position" env:"TICTACTOE_POSITION" env-description:"YAML snapshot of the starting position"`

	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-description:"Log level (debug, info, warn, error)"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Title:              "Tic Tac Toe",
		CellSize:           160,
		Margin:             20,
		HeaderHeight:       50,
		PlayerAImage:       "assets/x.png",
		PlayerBImage:       "assets/o.png",
		HighlightBaseAlpha: 0.5,
		HighlightDuration:  400 * time.Millisecond,
		LogLevel:           "info",
	}
}

// LoadGameConfig overlays the YAML file at path (if any) and TICTACTOE_*
// environment variables onto the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&config)
	} else {
		err = cleanenv.ReadConfig(path, &config)
	}
	if err != nil {
		return config, fmt.Errorf("loading config: %w", err)
	}

	return config, config.Validate()
}

// EnvDescription lists the environment variables LoadGameConfig reads
func EnvDescription() (string, error) {
	config := NewGameConfig()
	return cleanenv.GetDescription(&config, nil)
}

func (config GameConfig) Validate() error {
	switch {
	case config.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidConfig, config.CellSize)
	case config.Margin < 0:
		return fmt.Errorf("%w: margin must not be negative, got %v", ErrInvalidConfig, config.Margin)
	case config.HeaderHeight < 0:
		return fmt.Errorf("%w: header height must not be negative, got %v", ErrInvalidConfig, config.HeaderHeight)
	case config.HighlightBaseAlpha < 0 || config.HighlightBaseAlpha > 1:
		return fmt.Errorf("%w: highlight alpha must be within [0, 1], got %v", ErrInvalidConfig, config.HighlightBaseAlpha)
	case config.HighlightDuration < 0:
		return fmt.Errorf("%w: highlight duration must not be negative, got %v", ErrInvalidConfig, config.HighlightDuration)
	}
	return nil
}

// MarshalYAML writes durations in their string form, so that the output can
// be read back by LoadGameConfig
func (config GameConfig) MarshalYAML() (interface{}, error) {
	type plain GameConfig
	out, err := yaml.Marshal(plain(config))
	if err != nil {
		return nil, err
	}

	var fields yaml.MapSlice
	if err := yaml.Unmarshal(out, &fields); err != nil {
		return nil, err
	}
	for i := range fields {
		if fields[i].Key == "highlight-duration" {
			fields[i].Value = config.HighlightDuration.String()
		}
	}
	return fields, nil
}

// Layout positions the board below the status bar, inset by the margin
func (config GameConfig) Layout() Layout {
	return Layout{
		Origin:   pixel.V(config.Margin, config.HeaderHeight+config.Margin),
		CellSize: config.CellSize,
	}
}

// WindowSize is the total surface needed for the status bar and the board
func (config GameConfig) WindowSize() pixel.Vec {
	size := config.Layout().Size()
	return pixel.V(
		size+2*config.Margin,
		size+2*config.Margin+config.HeaderHeight,
	)
}

// CreateBoard returns the starting board: empty, or the position stored in
// PositionFile
func (config GameConfig) CreateBoard() (*Board, error) {
	if config.PositionFile == "" {
		return NewBoard(), nil
	}

	snapshot, err := LoadSnapshotFile(config.PositionFile)
	if err != nil {
		return nil, err
	}
	return snapshot.CreateBoard()
}
