package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/dropfour/internal/domain"
	"github.com/iamasit07/4-in-a-row/dropfour/pkg/uid"
)

// Match runs a single local game between player 1 and player 2.
// Player 1 always moves first.
type Match struct {
	MatchID       string
	CreatedAt     time.Time
	FinishedAt    time.Time
	state         *domain.GameState
	currentPlayer domain.PlayerID
	status        domain.GameStatus
	winner        domain.PlayerID
	log           zerolog.Logger
}

func NewMatch(width, height int, logger zerolog.Logger) (*Match, error) {
	state, err := domain.NewGameState(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create %dx%d grid: %w", width, height, err)
	}

	matchID := uid.GenerateMatchID()
	m := &Match{
		MatchID:       matchID,
		CreatedAt:     time.Now(),
		state:         state,
		currentPlayer: domain.Player1,
		status:        domain.StatusActive,
		winner:        domain.Empty,
		log: logger.With().
			Str("component", "match").
			Str("match_id", matchID).
			Logger(),
	}

	m.log.Info().Int("width", width).Int("height", height).Msg("match created")
	return m, nil
}

// Play drops a token for the player whose turn it is.
func (m *Match) Play(column int) (domain.Move, error) {
	player := m.currentPlayer

	if m.IsFinished() {
		m.log.Warn().Int("column", column).Msg("turn rejected, match is over")
		return domain.Move{}, domain.ErrGameOver
	}

	move, err := m.state.PlaceToken(column, player)
	if err != nil {
		m.log.Warn().Err(err).
			Uint("player", uint(player)).
			Int("column", column).
			Msg("turn rejected")
		return domain.Move{}, err
	}

	m.log.Debug().
		Uint("player", uint(move.Player)).
		Int("row", move.Row).
		Int("column", move.Column).
		Int("turn", m.state.TurnCount()).
		Msg("turn applied")

	if winner, won := m.state.IsTerminal(); won {
		m.status = domain.StatusWon
		m.winner = winner
		m.FinishedAt = time.Now()
		m.log.Info().
			Uint("winner", uint(winner)).
			Int("turns", m.state.TurnCount()).
			Dur("duration", m.FinishedAt.Sub(m.CreatedAt)).
			Msg("match won")
		return move, nil
	}

	if m.currentPlayer == domain.Player1 {
		m.currentPlayer = domain.Player2
	} else {
		m.currentPlayer = domain.Player1
	}

	return move, nil
}

func (m *Match) IsFinished() bool {
	return m.status == domain.StatusWon
}

func (m *Match) Status() domain.GameStatus      { return m.status }
func (m *Match) Winner() domain.PlayerID        { return m.winner }
func (m *Match) CurrentPlayer() domain.PlayerID { return m.currentPlayer }
func (m *Match) State() *domain.GameState       { return m.state }
func (m *Match) ValidColumns() []int            { return m.state.ValidColumns() }
