package domain

// GameState holds the grid and every move played on it.
// Row 0 is the top of the grid.
type GameState struct {
	grid    [][]PlayerID
	width   int
	height  int
	history []Move
}

// NewGameState returns an empty grid of the given size.
func NewGameState(width, height int) (*GameState, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}

	grid := make([][]PlayerID, height)
	for i := range grid {
		grid[i] = make([]PlayerID, width)
	}

	return &GameState{
		grid:    grid,
		width:   width,
		height:  height,
		history: []Move{},
	}, nil
}

func (s *GameState) Width() int  { return s.width }
func (s *GameState) Height() int { return s.height }

// InBounds reports whether (row, col) lies on the grid.
func (s *GameState) InBounds(row, col int) bool {
	return row >= 0 && row < s.height && col >= 0 && col < s.width
}

// Cell returns the owner of (row, col), or Empty when it is off the grid.
func (s *GameState) Cell(row, col int) PlayerID {
	if !s.InBounds(row, col) {
		return Empty
	}
	return s.grid[row][col]
}

// Grid returns a deep copy of the board
func (s *GameState) Grid() [][]PlayerID {
	newGrid := make([][]PlayerID, len(s.grid))
	for i := range s.grid {
		newGrid[i] = make([]PlayerID, len(s.grid[i]))
		copy(newGrid[i], s.grid[i])
	}
	return newGrid
}

// History returns the moves in play order.
func (s *GameState) History() []Move {
	history := make([]Move, len(s.history))
	copy(history, s.history)
	return history
}

// TurnCount is the number of tokens placed so far.
func (s *GameState) TurnCount() int {
	return len(s.history)
}

// LastMove returns the anchor move, if any.
func (s *GameState) LastMove() (Move, bool) {
	if len(s.history) == 0 {
		return Move{}, false
	}
	return s.history[len(s.history)-1], true
}

// TraceDropRow finds the row a token dropped into column would land on.
func (s *GameState) TraceDropRow(column int) (int, bool) {
	if column < 0 || column >= s.width {
		return -1, false
	}

	// scanning from the bottom row up till we find a free cell
	for row := s.height - 1; row >= 0; row-- {
		if s.grid[row][column] == Empty {
			return row, true
		}
	}

	return -1, false
}

// ValidColumns lists the columns that can still take a token.
func (s *GameState) ValidColumns() []int {
	columns := []int{}
	for col := 0; col < s.width; col++ {
		if s.grid[0][col] == Empty {
			columns = append(columns, col)
		}
	}
	return columns
}

// ApplyTurn drops a token for player into column. Nothing is written unless
// every check passes.
func (s *GameState) ApplyTurn(column int, player PlayerID) error {
	_, err := s.PlaceToken(column, player)
	return err
}

// PlaceToken is ApplyTurn returning the move it recorded.
func (s *GameState) PlaceToken(column int, player PlayerID) (Move, error) {
	if column < 0 || column >= s.width {
		return Move{}, ErrColumnOutOfRange
	}

	if player == Empty {
		return Move{}, ErrInvalidPlayer
	}

	if _, won := s.IsTerminal(); won {
		return Move{}, ErrGameOver
	}

	row, ok := s.TraceDropRow(column)
	if !ok {
		return Move{}, ErrColumnFull
	}

	move := Move{Row: row, Column: column, Player: player}
	s.grid[row][column] = player
	s.history = append(s.history, move)

	return move, nil
}
