package tetris

import "github.com/vovakirdan/blockdrop/internal/core"

// Kind identifies one of the seven tetromino shapes.
// Its index doubles as the color index stored in board cells.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of shapes in the catalogue.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Color returns the display color for pieces of this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindL:
		return core.ColorOrange
	case KindJ:
		return core.ColorBlue
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Shape is a rectangular occupancy matrix indexed [row][col].
type Shape [][]bool

// shapeOf builds a Shape from rows of '#' and '.' characters.
func shapeOf(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// catalogue holds the spawn orientation of every kind. Never hand these out
// directly; callers get clones.
var catalogue = [KindCount]Shape{
	KindI: shapeOf("####"),
	KindO: shapeOf("##", "##"),
	KindT: shapeOf("###", ".#."),
	KindL: shapeOf("###", "#.."),
	KindJ: shapeOf("###", "..#"),
	KindS: shapeOf(".##", "##."),
	KindZ: shapeOf("##.", ".##"),
}

// Rows returns the matrix height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the matrix width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]bool(nil), s[r]...)
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(o Shape) bool {
	if s.Rows() != o.Rows() || s.Cols() != o.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells returns the number of occupied cells.
func (s Shape) Cells() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// RotateClockwise returns a new shape turned 90° clockwise:
// out[c][rows-1-r] = s[r][c]. The receiver is not modified.
func (s Shape) RotateClockwise() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for c := range out {
		out[c] = make([]bool, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = s[r][c]
		}
	}
	return out
}

// Piece is a tetromino in a particular orientation.
type Piece struct {
	Kind  Kind
	Shape Shape
}

// NewPiece returns a piece of the given kind in its spawn orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: catalogue[k].Clone()}
}

// Point is a board coordinate; Y grows downward.
type Point struct {
	X, Y int
}
