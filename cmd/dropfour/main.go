package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/iamasit07/4-in-a-row/dropfour/internal/config"
	"github.com/iamasit07/4-in-a-row/dropfour/internal/service/game"
	"github.com/iamasit07/4-in-a-row/dropfour/internal/transport/console"
)

const Version = "1.0.0"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			logger.Debug().Msg("no .env file found")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args, cfg, logger, os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes the command and maps its outcome to a process exit code.
func run(ctx context.Context, args []string, cfg *config.Config, logger zerolog.Logger, in io.Reader, out io.Writer) int {
	if err := newCommand(cfg, logger, in, out).Run(ctx, args); err != nil {
		return 1
	}
	return 0
}

func newCommand(cfg *config.Config, logger zerolog.Logger, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "dropfour",
		Reader:  in,
		Writer:  out,
		Usage:   "play four-in-a-row on the terminal, one column index per line on stdin",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"W"},
				Value:   cfg.GridWidth,
				Usage:   "number of columns",
			},
			&cli.IntFlag{
				Name:    "height",
				Aliases: []string{"H"},
				Value:   cfg.GridHeight,
				Usage:   "number of rows",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "trace, debug, info, warn or error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level, err := zerolog.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger := logger.Level(level)

			match, err := game.NewMatch(cmd.Int("width"), cmd.Int("height"), logger)
			if err != nil {
				fmt.Fprintln(out, "failed to initialize game state")
				logger.Error().Err(err).Msg("failed to start match")
				return err
			}

			driver := console.NewDriver(match, console.NewRenderer(cfg.Glyphs), logger)
			err = driver.Run(ctx, in, out)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, context.Canceled):
				logger.Info().Msg("interrupted")
			default:
				logger.Error().Err(err).Msg("session ended")
			}
			return err
		},
	}
}
