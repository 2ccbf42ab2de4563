package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/dropfour/internal/config"
	"github.com/iamasit07/4-in-a-row/dropfour/internal/domain"
)

// Renderer prints a game state as a summary followed by the grid.
type Renderer struct {
	Glyphs config.Glyphs
}

func NewRenderer(glyphs config.Glyphs) Renderer {
	return Renderer{Glyphs: glyphs}
}

func (r Renderer) Render(w io.Writer, s *domain.GameState) error {
	var b strings.Builder

	fmt.Fprintf(&b, "size:     %d x %d\n", s.Width(), s.Height())
	fmt.Fprintf(&b, "turn:     %d\n", s.TurnCount())
	if winner, ok := s.IsTerminal(); ok {
		fmt.Fprintf(&b, "terminal: YES (player %d is a winner)\n", winner)
	} else {
		b.WriteString("terminal: NO\n")
	}
	b.WriteString("\n")

	for _, row := range s.Grid() {
		for _, cell := range row {
			b.WriteString(r.Glyphs.Symbol(cell))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
