package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: every value comes from env-default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.True(t, conf.Game.PlayAgainstBot())
		assert.Equal(t, Glyphs{Empty: ".", Red: "R", Yellow: "Y", Bot: "A"}, conf.Display.Glyphs)
		assert.Equal(t, Names{Red: "Red", Yellow: "Yellow", Bot: "AI"}, conf.Display.Names)
	})

	t.Run("Values from the yaml file", func(t *testing.T) {
		// Given: a config file overriding a few keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"game:\n" +
			"  opponent: human\n" +
			"display:\n" +
			"  glyphs:\n" +
			"    red: X\n" +
			"  names:\n" +
			"    bot: Computer\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: overrides win and the rest keeps its defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.False(t, conf.Game.PlayAgainstBot())
		assert.Equal(t, "X", conf.Display.Glyphs.Red)
		assert.Equal(t, "Y", conf.Display.Glyphs.Yellow)
		assert.Equal(t, "Computer", conf.Display.Names.Bot)
		assert.Equal(t, "Red", conf.Display.Names.Red)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file enabling the bot and an env var disabling it
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  opponent: bot\n"), 0o600))
		t.Setenv("CONNECTFOUR_OPPONENT", "human")

		// When: loading it
		conf, err := Load(path)

		// Then: the env var wins
		require.NoError(t, err)
		assert.Equal(t, OpponentHuman, conf.Game.Opponent)
		assert.False(t, conf.Game.PlayAgainstBot())
	})

	t.Run("Error on unknown opponent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  opponent: robot\n"), 0o600))

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrUnknownOpponent)
	})

	t.Run("Error on malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game: [unclosed\n"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
		assert.Panics(t, func() { MustLoad(path) })
	})
}
