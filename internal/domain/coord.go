package domain

// Position is a zero-based cell coordinate on the board.
type Position struct {
	X uint32
	Y uint32
}

func NewPosition(x, y uint32) Position {
	return Position{X: x, Y: y}
}

func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}
