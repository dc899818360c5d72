package domain

// InitialTailLen is the trailing body length move() keeps when nothing was eaten.
const InitialTailLen = 3

type Snake struct {
	head      Position
	tail      []Position
	direction Direction
}

func NewSnake(head Position) *Snake {
	return &Snake{
		head:      head,
		tail:      make([]Position, 0, InitialTailLen+1),
		direction: DirectionNone,
	}
}

// Reset clears the tail only. Head and direction are left to the caller.
func (s *Snake) Reset() {
	s.tail = s.tail[:0]
}

func (s *Snake) Head() Position {
	return s.head
}

func (s *Snake) Tail() []Position {
	return s.tail
}

func (s *Snake) Direction() Direction {
	return s.direction
}

func (s *Snake) Current(p Position) bool {
	return s.head.Equals(p)
}

func (s *Snake) SetHead(p Position) {
	s.head = p
}

// SetDirection ignores an exact reversal of the current direction.
func (s *Snake) SetDirection(dir Direction) bool {
	if s.direction.IsOpposite(dir) {
		return false
	}
	s.direction = dir
	return true
}

// Grow moves the head to p and keeps every tail segment.
func (s *Snake) Grow(p Position) {
	s.tail = append(s.tail, Position{})
	copy(s.tail[1:], s.tail)
	s.tail[0] = s.head
	s.head = p
}

// Move is Grow followed by dropping the oldest segment once the tail
// is longer than InitialTailLen. At most one segment is dropped per call.
func (s *Snake) Move(p Position) {
	s.Grow(p)
	if len(s.tail) > InitialTailLen {
		s.tail = s.tail[:len(s.tail)-1]
	}
}

func (s *Snake) Last() (Position, bool) {
	if len(s.tail) == 0 {
		return Position{}, false
	}
	return s.tail[len(s.tail)-1], true
}

// Step returns the head moved one cell along the current direction. It
// reports false when either coordinate would go negative.
func (s *Snake) Step() (Position, bool) {
	dx, dy := s.direction.Delta()
	x := int64(s.head.X) + dx
	y := int64(s.head.Y) + dy

	if x < 0 || y < 0 {
		return Position{}, false
	}
	return Position{X: uint32(x), Y: uint32(y)}, true
}

// Body returns the head followed by the tail.
func (s *Snake) Body() []Position {
	body := make([]Position, 0, len(s.tail)+1)
	body = append(body, s.head)
	body = append(body, s.tail...)
	return body
}
