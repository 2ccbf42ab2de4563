package domain

// PlayerID identifies the owner of a cell. The zero value marks an empty cell.
type PlayerID uint

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// LineLength is the number of consecutive tokens needed to win.
const LineLength = 4

const (
	lineOffset = LineLength - 1
	lineSteps  = LineLength*2 - 1
)

// Move is a single placed token.
type Move struct {
	Row    int      `json:"row"`
	Column int      `json:"column"`
	Player PlayerID `json:"player"`
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions Error = "invalid dimensions"
	ErrColumnOutOfRange  Error = "column index is outside of the grid range"
	ErrColumnFull        Error = "token cannot be placed in a given column as it's full or does not exist"
	ErrInvalidPlayer     Error = "player id must not be the empty color"
	ErrGameOver          Error = "game is already finished"
)
