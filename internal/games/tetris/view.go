package tetris

// ActivePiece is the falling piece as seen from outside the engine.
type ActivePiece struct {
	Kind  Kind
	Shape Shape
	Pos   Point
}

// View is a read-only copy of the engine state. Mutating it has no effect
// on the engine.
type View struct {
	Width, Height int
	Cells         [][]Cell
	Active        *ActivePiece
	Next          *Kind
	Score         int
	Lines         int
	Level         int
	Started       bool
	GameOver      bool
	Paused        bool
}

// View returns a snapshot of the current state.
func (e *Engine) View() View {
	v := View{
		Width:    e.board.Width(),
		Height:   e.board.Height(),
		Cells:    e.board.Rows(),
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		Started:  e.started,
		GameOver: e.gameOver,
		Paused:   e.paused,
	}
	if e.active != nil {
		v.Active = &ActivePiece{Kind: e.active.Kind, Shape: e.active.Shape.Clone(), Pos: e.pos}
	}
	if e.next != nil && e.started {
		k := e.next.Kind
		v.Next = &k
	}
	return v
}

// Composite returns the board cells with the active piece drawn in.
func (v View) Composite() [][]Cell {
	out := make([][]Cell, len(v.Cells))
	for y := range v.Cells {
		out[y] = append([]Cell(nil), v.Cells[y]...)
	}
	if v.Active == nil {
		return out
	}
	c := CellOf(v.Active.Kind)
	for r, row := range v.Active.Shape {
		for col, filled := range row {
			x, y := v.Active.Pos.X+col, v.Active.Pos.Y+r
			if filled && y >= 0 && y < v.Height && x >= 0 && x < v.Width {
				out[y][x] = c
			}
		}
	}
	return out
}
