package entities

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Cardinal lists the four movement directions in the order ghosts draw from.
var Cardinal = [4]Direction{DirRight, DirLeft, DirDown, DirUp}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := DirDelta(d)
	return Point{X: p.X + dx, Y: p.Y + dy}
}

type Player struct {
	Pos Point
}
