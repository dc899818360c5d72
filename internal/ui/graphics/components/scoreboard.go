package components

import (
	"fmt"
	"sort"

	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Draw lists finished runs best first; the most recent run is highlighted.
func (sb *Scoreboard) Draw(screen *ebiten.Image, history []uint) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Darken(types.ColorButton, 0.6), false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorFieldBorder, false)

	fonts := types.GetFonts()

	text.Draw(screen, "RUNS", fonts.Title, sb.X+10, sb.Y+20, types.ColorTextHighlight)

	if len(history) == 0 {
		text.Draw(screen, "no finished runs", fonts.Small, sb.X+10, sb.Y+45, types.ColorTextDim)
		return
	}

	type run struct {
		number int
		score  uint
	}
	runs := make([]run, len(history))
	for i, s := range history {
		runs[i] = run{number: i + 1, score: s}
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].score != runs[j].score {
			return runs[i].score > runs[j].score
		}
		return runs[i].number < runs[j].number
	})

	latest := len(history)
	y := sb.Y + 45
	for i, r := range runs {
		if y > sb.Y+sb.Height-20 {
			break
		}

		textColor := types.ColorText
		if r.number == latest {
			textColor = types.ColorTextHighlight
		}

		line := fmt.Sprintf("%d. run #%d: %d", i+1, r.number, r.score)
		text.Draw(screen, line, fonts.Normal, sb.X+10, y, textColor)

		y += 22
	}
}
