package types

import (
	"image/color"

	"gridsnake/internal/domain"
)

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorFieldBorder   = color.RGBA{60, 60, 65, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorInputBg       = color.RGBA{50, 50, 55, 255}
	ColorInputBorder   = color.RGBA{100, 100, 110, 255}
	ColorInputFocused  = color.RGBA{100, 150, 200, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 170}
)

// Board colours come from the engine palette so every frontend agrees.
var (
	ColorFood  = domain.ColorFood
	ColorEmpty = domain.ColorEmpty
	ColorSnake = domain.ColorSnake
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
