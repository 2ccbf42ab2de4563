package domain

// Direction is a unit step across the grid.
type Direction struct {
	RowDelta int
	ColDelta int
}

var (
	vertical     = Direction{RowDelta: 1, ColDelta: 0}
	horizontal   = Direction{RowDelta: 0, ColDelta: 1}
	diagonal     = Direction{RowDelta: 1, ColDelta: 1}
	antiDiagonal = Direction{RowDelta: 1, ColDelta: -1}

	// order matters: the first direction holding a run wins the check
	directions = [...]Direction{vertical, horizontal, diagonal, antiDiagonal}
)

// CheckLine walks up to steps cells from (row, col) along d and reports
// whether LineLength consecutive cells belong to player.
func (s *GameState) CheckLine(row, col int, d Direction, steps int, player PlayerID) bool {
	if !s.InBounds(row, col) {
		return false
	}

	count := 0
	for step := 0; step < steps; step++ {
		if s.grid[row][col] == player {
			count++
			if count == LineLength {
				return true
			}
		} else {
			count = 0
		}

		row += d.RowDelta
		col += d.ColDelta

		if !s.InBounds(row, col) {
			return false
		}
	}

	return false
}

// windowStart backs off from (row, col) against d by at most lineOffset cells,
// stopping at the grid edge so the start stays on the same line.
func (s *GameState) windowStart(row, col int, d Direction) (int, int) {
	back := 0
	for back < lineOffset && s.InBounds(row-d.RowDelta, col-d.ColDelta) {
		row -= d.RowDelta
		col -= d.ColDelta
		back++
	}
	return row, col
}

// IsTerminal reports the winner if the last move completed a line.
// Only lines through the last move are checked, since any earlier line would
// have ended the game already.
func (s *GameState) IsTerminal() (PlayerID, bool) {
	last, ok := s.LastMove()
	if !ok {
		return Empty, false
	}

	for _, d := range directions {
		row, col := s.windowStart(last.Row, last.Column, d)
		if s.CheckLine(row, col, d, lineSteps, last.Player) {
			return last.Player, true
		}
	}

	return Empty, false
}
