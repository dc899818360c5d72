package domain

// Frame is what a renderer needs after one tick.
type Frame struct {
	Snake  []Position
	Food   Position
	Passed *Position
	Alive  bool
	Score  uint
}

func (f Frame) Copy() Frame {
	c := Frame{
		Snake: make([]Position, len(f.Snake)),
		Food:  f.Food,
		Alive: f.Alive,
		Score: f.Score,
	}
	copy(c.Snake, f.Snake)
	if f.Passed != nil {
		p := *f.Passed
		c.Passed = &p
	}
	return c
}

// Paint is one cell a renderer has to repaint.
type Paint struct {
	Position Position
	Cell     Cell
}

// Paints lists the cells to repaint in order: the snake, then the food, then
// the passed cell is erased.
func (f Frame) Paints() []Paint {
	paints := make([]Paint, 0, len(f.Snake)+2)
	for _, p := range f.Snake {
		paints = append(paints, Paint{Position: p, Cell: CellSnake})
	}
	paints = append(paints, Paint{Position: f.Food, Cell: CellFood})
	if f.Passed != nil {
		paints = append(paints, Paint{Position: *f.Passed, Cell: CellEmpty})
	}
	return paints
}
