package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/dropfour/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"GRID_WIDTH", "GRID_HEIGHT", "LOG_LEVEL", "GLYPH_EMPTY", "GLYPH_PLAYER1", "GLYPH_PLAYER2"} {
			// Setenv restores the original value once the test ends
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 10, cfg.GridWidth)
		assert.Equal(t, 10, cfg.GridHeight)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, Glyphs{Empty: "⬜️", Player1: "🟢", Player2: "🔴"}, cfg.Glyphs)
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv("GRID_WIDTH", "7")
		t.Setenv("GRID_HEIGHT", "6")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("GLYPH_EMPTY", ".")
		t.Setenv("GLYPH_PLAYER1", "X")
		t.Setenv("GLYPH_PLAYER2", "O")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.GridWidth)
		assert.Equal(t, 6, cfg.GridHeight)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, Glyphs{Empty: ".", Player1: "X", Player2: "O"}, cfg.Glyphs)
	})

	t.Run("Error on zero width", func(t *testing.T) {
		t.Setenv("GRID_WIDTH", "0")
		t.Setenv("GRID_HEIGHT", "6")

		cfg, err := Load()
		require.ErrorIs(t, err, domain.ErrInvalidDimensions)
		require.Nil(t, cfg)
	})

	t.Run("Error on malformed number", func(t *testing.T) {
		t.Setenv("GRID_WIDTH", "wide")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestGlyphs_Symbol(t *testing.T) {
	g := Glyphs{Empty: ".", Player1: "X", Player2: "O"}

	assert.Equal(t, ".", g.Symbol(domain.Empty))
	assert.Equal(t, "X", g.Symbol(domain.Player1))
	assert.Equal(t, "O", g.Symbol(domain.Player2))
	assert.Equal(t, "?", g.Symbol(domain.PlayerID(3)))
}
