package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestLoadGameConfig(t *testing.T) {
	t.Run("Defaults without file or environment", func(t *testing.T) {
		config, err := LoadGameConfig("")

		require.NoError(t, err)
		assert.Equal(t, NewGameConfig(), config)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_CELL_SIZE", "64")
		t.Setenv("TICTACTOE_HIGHLIGHT_DURATION", "1s")

		config, err := LoadGameConfig("")

		require.NoError(t, err)
		assert.Equal(t, 64.0, config.CellSize)
		assert.Equal(t, time.Second, config.HighlightDuration)
		assert.Equal(t, NewGameConfig().Margin, config.Margin)
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tictactoe.yaml")
		contents := "title: Noughts\nmargin: 5\nplayer-a-image: sprites/cross.png\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		config, err := LoadGameConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "Noughts", config.Title)
		assert.Equal(t, 5.0, config.Margin)
		assert.Equal(t, "sprites/cross.png", config.PlayerAImage)
		assert.Equal(t, NewGameConfig().PlayerBImage, config.PlayerBImage)
	})

	t.Run("Rejects invalid geometry", func(t *testing.T) {
		t.Setenv("TICTACTOE_CELL_SIZE", "0")

		_, err := LoadGameConfig("")

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Reports missing files", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})
}

func TestGameConfig_Validate(t *testing.T) {
	tests := map[string]func(*GameConfig){
		"negative margin":    func(c *GameConfig) { c.Margin = -1 },
		"negative header":    func(c *GameConfig) { c.HeaderHeight = -1 },
		"alpha above one":    func(c *GameConfig) { c.HighlightBaseAlpha = 1.5 },
		"negative highlight": func(c *GameConfig) { c.HighlightDuration = -time.Second },
		"negative cell size": func(c *GameConfig) { c.CellSize = -10 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			config := NewGameConfig()
			mutate(&config)

			assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, NewGameConfig().Validate())
}

func TestGameConfig_Layout(t *testing.T) {
	config := NewGameConfig()
	config.CellSize = 100
	config.Margin = 10
	config.HeaderHeight = 40

	layout := config.Layout()

	assert.Equal(t, pixel.V(10, 50), layout.Origin)
	assert.Equal(t, 100.0, layout.CellSize)
	assert.Equal(t, pixel.V(320, 360), config.WindowSize())
}

func TestGameConfig_CreateBoard(t *testing.T) {
	t.Run("Empty board by default", func(t *testing.T) {
		board, err := NewGameConfig().CreateBoard()

		require.NoError(t, err)
		assert.Equal(t, *NewBoard(), *board)
	})

	t.Run("Starting position from a snapshot file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "position.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board: |\n  X..\n  .O.\n  ..X\n"), 0o644))
		config := NewGameConfig()
		config.PositionFile = path

		board, err := config.CreateBoard()

		require.NoError(t, err)
		assert.Equal(t, 3, board.NumMoves())
		assert.Equal(t, PlayerB, board.Turn())
	})
}

func TestEnvDescription(t *testing.T) {
	description, err := EnvDescription()

	require.NoError(t, err)
	assert.Contains(t, description, "TICTACTOE_CELL_SIZE")
}

func TestGameConfig_MarshalYAML(t *testing.T) {
	// Given: a customized config
	config := NewGameConfig()
	config.Title = "Noughts and crosses"
	config.HighlightDuration = 1500 * time.Millisecond

	// When: it is written out and loaded back as a config file
	out, err := yaml.Marshal(config)
	require.NoError(t, err)
	assert.Contains(t, string(out), "highlight-duration: 1.5s")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o644))
	loaded, err := LoadGameConfig(path)

	// Then: nothing is lost
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
