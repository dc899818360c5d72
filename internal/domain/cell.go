package domain

import "image/color"

type Cell int

const (
	CellFood Cell = iota
	CellEmpty
	CellSnake
)

var (
	ColorFood  = color.RGBA{255, 41, 164, 255}
	ColorEmpty = color.RGBA{209, 255, 231, 255}
	ColorSnake = color.RGBA{109, 41, 255, 255}
)

// Color is the fill every renderer uses for the cell.
func (c Cell) Color() color.RGBA {
	switch c {
	case CellFood:
		return ColorFood
	case CellSnake:
		return ColorSnake
	}
	return ColorEmpty
}

func (c Cell) String() string {
	switch c {
	case CellFood:
		return "food"
	case CellSnake:
		return "snake"
	}
	return "empty"
}
