package game

// Direction is a cardinal movement direction, or DirNone when stopped.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	directionCount // sentinel
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit tile offset for the direction.
func (d Direction) Delta() (dc, dr int) {
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

// Reverse returns the opposite direction. DirNone reverses to DirNone.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Horizontal returns true for left/right.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// perpendicular returns true if the two directions lie on different axes.
// A DirNone on either side is never perpendicular.
func perpendicular(a, b Direction) bool {
	if a == DirNone || b == DirNone {
		return false
	}
	return a.Horizontal() != b.Horizontal()
}

// steerOrder is the fixed evaluation order for direction choices at a
// junction. Ties in target distance resolve to the earlier entry.
var steerOrder = [4]Direction{DirUp, DirLeft, DirDown, DirRight}
