package components

import (
	"image/color"

	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Hint          string
	Enabled       bool

	keys    []ebiten.Key
	hovered bool
	pressed bool
}

// NewButton creates a button that is clicked with the mouse or any of keys.
func NewButton(width, height int, buttonText, hint string, keys ...ebiten.Key) *Button {
	return &Button{
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Hint:    hint,
		Enabled: true,
		keys:    keys,
	}
}

func (b *Button) Update() bool {
	if !b.Enabled {
		return false
	}

	for _, key := range b.keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.Enabled:
		bgColor = types.Darken(types.ColorButton, 0.5)
	case b.pressed:
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	case b.hovered:
		bgColor = types.ColorButtonHover
	default:
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorInputBorder, false)

	fonts := types.GetFonts()
	textColor := types.ColorButtonText
	if !b.Enabled {
		textColor = types.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2
	if b.Hint != "" {
		textY -= 6
	}
	text.Draw(screen, b.Text, fonts.Normal, textX, textY, textColor)

	if b.Hint != "" {
		bounds = text.BoundString(fonts.Small, b.Hint)
		text.Draw(screen, b.Hint, fonts.Small, b.X+(b.Width-bounds.Dx())/2, textY+16, types.ColorTextDim)
	}
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
