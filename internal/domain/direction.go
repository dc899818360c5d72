package domain

// Direction values double as axis weights: a direction and its opposite sum to zero.
type Direction int8

const (
	DirectionNone  Direction = 0
	DirectionUp    Direction = 1
	DirectionDown  Direction = -1
	DirectionLeft  Direction = 2
	DirectionRight Direction = -2
)

func (d Direction) Weight() int8 {
	return int8(d)
}

// IsOpposite reports whether d and other point along the same axis in reverse.
// None is the opposite of nothing except None itself.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Weight()+other.Weight() == 0
}

func (d Direction) Delta() (int64, int64) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}
