package domain

// Board is the grid of cell states. Cells are addressed x-major:
// index = x*width + y, which is transposed relative to the usual row-major layout.
type Board struct {
	width  uint32
	height uint32
	cells  []Cell
}

func NewBoard(width, height uint32) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  emptyCells(width, height),
	}
}

func emptyCells(width, height uint32) []Cell {
	cells := make([]Cell, int(width)*int(height))
	for i := range cells {
		cells[i] = CellEmpty
	}
	return cells
}

func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = CellEmpty
	}
}

// EmptyIndexes returns every empty index in ascending order.
func (b *Board) EmptyIndexes() []int {
	result := make([]int, 0, len(b.cells))
	for i, cell := range b.cells {
		if cell == CellEmpty {
			result = append(result, i)
		}
	}
	return result
}

// ToIndex does no bounds checking; an out-of-range position yields an
// index outside the board.
func (b *Board) ToIndex(p Position) int {
	return int(p.X)*int(b.width) + int(p.Y)
}

func (b *Board) ToPosition(index int) Position {
	w := int(b.width)
	return Position{
		X: uint32(index / w),
		Y: uint32(index % w),
	}
}

// Set replaces the cell at index and returns the previous value.
func (b *Board) Set(index int, cell Cell) Cell {
	prev := b.cells[index]
	b.cells[index] = cell
	return prev
}

func (b *Board) Get(index int) (Cell, bool) {
	if index < 0 || index >= len(b.cells) {
		return CellEmpty, false
	}
	return b.cells[index], true
}

func (b *Board) Contains(p Position) bool {
	return p.X < b.width && p.Y < b.height
}

func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) Width() uint32 {
	return b.width
}

func (b *Board) Height() uint32 {
	return b.height
}
