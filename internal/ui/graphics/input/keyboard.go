package input

import (
	"gridsnake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var steerKeys = []struct {
	keys []ebiten.Key
	dir  domain.Direction
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, domain.DirectionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, domain.DirectionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, domain.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, domain.DirectionRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction of a steering key pressed this tick, or
// DirectionNone.
func (kh *KeyboardHandler) Update() domain.Direction {
	for _, sk := range steerKeys {
		for _, key := range sk.keys {
			if inpututil.IsKeyJustPressed(key) {
				return sk.dir
			}
		}
	}
	return domain.DirectionNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}
