package tetris

// Cell is a board square: 0 for empty, Kind+1 for a settled block of that kind.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// CellOf returns the cell value a settled block of kind k leaves behind.
func CellOf(k Kind) Cell {
	return Cell(k + 1)
}

// Kind returns the piece kind that produced a non-empty cell.
func (c Cell) Kind() Kind {
	return Kind(c) - 1
}

// Board is the playfield, indexed [row][col] with row 0 at the top.
type Board struct {
	w, h  int
	cells [][]Cell
}

// NewBoard returns an empty w×h board.
func NewBoard(w, h int) *Board {
	b := &Board{w: w, h: h, cells: make([][]Cell, h)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, w)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// At returns the cell at (x, y), or Empty outside the board.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell; out-of-range writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y][x] = c
}

// Fits reports whether shape anchored at pos is a legal placement: every
// occupied cell lies inside the side walls and above the floor, and does not
// overlap a settled block. Cells above the top edge (y < 0) are allowed.
func (b *Board) Fits(s Shape, pos Point) bool {
	for r, row := range s {
		for c, filled := range row {
			if !filled {
				continue
			}
			x, y := pos.X+c, pos.Y+r
			if x < 0 || x >= b.w || y >= b.h {
				return false
			}
			if y >= 0 && b.cells[y][x] != Empty {
				return false
			}
		}
	}
	return true
}

// Merge writes the occupied cells of a piece at pos into the board.
// Cells above the top edge are dropped.
func (b *Board) Merge(p Piece, pos Point) {
	v := CellOf(p.Kind)
	for r, row := range p.Shape {
		for c, filled := range row {
			if filled && pos.Y+r >= 0 {
				b.Set(pos.X+c, pos.Y+r, v)
			}
		}
	}
}

// ClearLines removes every completely filled row, shifts the rows above it
// down, and fills the top with empty rows. It returns how many were removed.
func (b *Board) ClearLines() int {
	kept := make([][]Cell, 0, b.h)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.h - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, cleared, b.h)
	for i := range fresh {
		fresh[i] = make([]Cell, b.w)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of non-empty cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.h)
	for y, row := range b.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{w: b.w, h: b.h, cells: b.Rows()}
}
