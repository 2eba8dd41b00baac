package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/earthtraveller1/tictactoe/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func runConfigCmd(t *testing.T, args ...string) (game.GameConfig, string) {
	t.Helper()

	rootCmd := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"config"}, args...))
	require.NoError(t, rootCmd.Execute())

	var config game.GameConfig
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &config))
	return config, out.String()
}

func TestConfigCmd(t *testing.T) {
	t.Run("Prints the defaults", func(t *testing.T) {
		config, out := runConfigCmd(t)

		assert.Equal(t, game.NewGameConfig().Title, config.Title)
		assert.Equal(t, game.NewGameConfig().CellSize, config.CellSize)
		assert.Contains(t, out, "highlight-duration: 400ms")
	})

	t.Run("Flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tictactoe.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: From file\nlog-level: warn\n"), 0o644))

		config, _ := runConfigCmd(t, "--config", path, "--log-level", "debug")

		assert.Equal(t, "From file", config.Title)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("Lists environment variables", func(t *testing.T) {
		rootCmd := newRootCmd()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"config", "--env"})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "TICTACTOE_LOG_LEVEL")
	})

	t.Run("Rejects invalid flag values", func(t *testing.T) {
		rootCmd := newRootCmd()
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})
		rootCmd.SetArgs([]string{"config", "--highlight=-1s"})

		assert.ErrorIs(t, rootCmd.Execute(), game.ErrInvalidConfig)
	})
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := newLogger("warn", &out)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")

	_, err = newLogger("loud", &out)
	assert.Error(t, err)
}
