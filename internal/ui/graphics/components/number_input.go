package components

import (
	"fmt"
	"strconv"

	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NumberInput is a text field that only takes digits and knows its range.
type NumberInput struct {
	X, Y          int
	Width, Height int
	Label         string
	Text          string
	Min, Max      int
	Focused       bool

	cursorBlink int
}

func NewNumberInput(width, height int, label string, lo, hi, value int) *NumberInput {
	return &NumberInput{
		Width:  width,
		Height: height,
		Label:  label,
		Text:   strconv.Itoa(value),
		Min:    lo,
		Max:    hi,
	}
}

func (ni *NumberInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ni.Focused = mx >= ni.X && mx < ni.X+ni.Width && my >= ni.Y && my < ni.Y+ni.Height
	}

	if !ni.Focused {
		return
	}

	ni.cursorBlink++

	for _, r := range ebiten.AppendInputChars(nil) {
		ni.Insert(r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		ni.Backspace()
	}
}

// Insert appends r when it is a digit and the field has room for it.
func (ni *NumberInput) Insert(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if len(ni.Text) >= len(strconv.Itoa(ni.Max)) {
		return
	}
	ni.Text += string(r)
}

func (ni *NumberInput) Backspace() {
	if len(ni.Text) > 0 {
		ni.Text = ni.Text[:len(ni.Text)-1]
	}
}

func (ni *NumberInput) Value() (int, error) {
	v, err := strconv.Atoi(ni.Text)
	if err != nil || v < ni.Min || v > ni.Max {
		return 0, fmt.Errorf("%s must be %d-%d", ni.Label, ni.Min, ni.Max)
	}
	return v, nil
}

func (ni *NumberInput) Draw(screen *ebiten.Image) {
	fonts := types.GetFonts()

	label := fmt.Sprintf("%s (%d-%d):", ni.Label, ni.Min, ni.Max)
	text.Draw(screen, label, fonts.Normal, ni.X, ni.Y-8, types.ColorText)

	vector.DrawFilledRect(screen,
		float32(ni.X), float32(ni.Y),
		float32(ni.Width), float32(ni.Height),
		types.ColorInputBg, false)

	borderColor := types.ColorInputBorder
	if ni.Focused {
		borderColor = types.ColorInputFocused
	}
	vector.StrokeRect(screen,
		float32(ni.X), float32(ni.Y),
		float32(ni.Width), float32(ni.Height),
		2, borderColor, false)

	textX := ni.X + 8
	textY := ni.Y + ni.Height/2 + 5
	text.Draw(screen, ni.Text, fonts.Normal, textX, textY, types.ColorText)

	if ni.Focused && (ni.cursorBlink/30)%2 == 0 {
		bounds := text.BoundString(fonts.Normal, ni.Text)
		cursorX := float32(textX + bounds.Dx() + 2)
		vector.StrokeLine(screen, cursorX, float32(ni.Y+5), cursorX, float32(ni.Y+ni.Height-5), 2, types.ColorText, false)
	}
}

func (ni *NumberInput) SetPosition(x, y int) {
	ni.X = x
	ni.Y = y
}
