package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/iamasit07/4-in-a-row/dropfour/internal/domain"
)

type Config struct {
	GridWidth  int    `env:"GRID_WIDTH" env-default:"10" env-description:"number of columns"`
	GridHeight int    `env:"GRID_HEIGHT" env-default:"10" env-description:"number of rows"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"zerolog level"`
	Glyphs     Glyphs
}

// Glyphs are the symbols printed for each cell owner.
type Glyphs struct {
	Empty   string `env:"GLYPH_EMPTY" env-default:"⬜️"`
	Player1 string `env:"GLYPH_PLAYER1" env-default:"🟢"`
	Player2 string `env:"GLYPH_PLAYER2" env-default:"🔴"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GridWidth < 1 || c.GridHeight < 1 {
		return fmt.Errorf("grid %dx%d: %w", c.GridWidth, c.GridHeight, domain.ErrInvalidDimensions)
	}
	return nil
}

// Symbol returns the glyph for a cell owner.
func (g Glyphs) Symbol(player domain.PlayerID) string {
	switch player {
	case domain.Empty:
		return g.Empty
	case domain.Player1:
		return g.Player1
	case domain.Player2:
		return g.Player2
	}
	return "?"
}
