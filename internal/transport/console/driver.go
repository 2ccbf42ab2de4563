package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/dropfour/internal/service/game"
)

var (
	ErrBadInput       = errors.New("column index must be an integer")
	ErrInputExhausted = errors.New("input ended before the game finished")
)

// Driver feeds column indexes read from input into a match, one per turn.
type Driver struct {
	match    *game.Match
	renderer Renderer
	log      zerolog.Logger
}

func NewDriver(match *game.Match, renderer Renderer, logger zerolog.Logger) *Driver {
	return &Driver{
		match:    match,
		renderer: renderer,
		log:      logger.With().Str("component", "console").Logger(),
	}
}

// Run plays turns until a player wins, a turn fails, the input runs out or
// ctx is cancelled. The board is printed after every successful turn.
func (d *Driver) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	done := make(chan struct{})
	defer close(done)
	tokens := readTokens(in, done)

	for {
		var token string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-tokens:
			if !ok {
				d.log.Info().Int("turns", d.match.State().TurnCount()).Msg("input exhausted")
				return ErrInputExhausted
			}
			if next.err != nil {
				return fmt.Errorf("failed to read input: %w", next.err)
			}
			token = next.token
		}

		// both cases may have been ready at once
		if err := ctx.Err(); err != nil {
			return err
		}

		column, err := strconv.Atoi(token)
		if err != nil {
			err = fmt.Errorf("%w: %q", ErrBadInput, token)
			fmt.Fprintf(out, "error: %s\n", err)
			return err
		}

		if _, err := d.match.Play(column); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			return err
		}

		if err := d.renderer.Render(out, d.match.State()); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}

		if d.match.IsFinished() {
			fmt.Fprintln(out, "gg")
			return nil
		}
	}
}

type readResult struct {
	token string
	err   error
}

// readTokens scans whitespace separated tokens from in until it is exhausted
// or done is closed. The channel is closed once scanning stops.
func readTokens(in io.Reader, done <-chan struct{}) <-chan readResult {
	tokens := make(chan readResult)

	go func() {
		defer close(tokens)

		scanner := bufio.NewScanner(in)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			select {
			case tokens <- readResult{token: scanner.Text()}:
			case <-done:
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case tokens <- readResult{err: err}:
			case <-done:
			}
		}
	}()

	return tokens
}
