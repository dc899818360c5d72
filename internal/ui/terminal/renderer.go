package terminal

import (
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/domain"
	"gridsnake/internal/score"
)

// Each board cell takes two terminal columns so it looks roughly square.
const cellColumns = 2

// boardTop leaves the first row for the status line.
const boardTop = 1

// Renderer draws the board into a tcell screen.
type Renderer struct {
	screen tcell.Screen

	mu     sync.Mutex
	cfg    *domain.GameConfig
	score  uint
	status string
}

func New(screen tcell.Screen, cfg *domain.GameConfig) *Renderer {
	return &Renderer{
		screen: screen,
		cfg:    cfg.Copy(),
	}
}

func (r *Renderer) Configure(cfg *domain.GameConfig) {
	r.mu.Lock()
	r.cfg = cfg.Copy()
	r.mu.Unlock()
}

func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.score = 0
	r.screen.Clear()

	empty := StyleFor(domain.CellEmpty)
	for y := uint32(0); y < r.cfg.Height; y++ {
		for x := uint32(0); x < r.cfg.Width; x++ {
			r.paint(domain.NewPosition(x, y), empty)
		}
	}
	r.drawStatus()
	r.screen.Show()
}

func (r *Renderer) Render(frame domain.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range frame.Paints() {
		r.paint(p.Position, StyleFor(p.Cell))
	}
	r.score = frame.Score
	r.drawStatus()
	r.screen.Show()
}

// SetStatus shows msg next to the score.
func (r *Renderer) SetStatus(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status = msg
	r.drawStatus()
	r.screen.Show()
}

func (r *Renderer) paint(p domain.Position, style tcell.Style) {
	x := int(p.X) * cellColumns
	y := int(p.Y) + boardTop
	for dx := 0; dx < cellColumns; dx++ {
		r.screen.SetContent(x+dx, y, ' ', nil, style)
	}
}

func (r *Renderer) drawStatus() {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}

	line := r.cfg.Title + "  " + score.Text(r.score)
	if r.status != "" {
		line += "  " + r.status
	}
	drawText(r.screen, 0, 0, line, tcell.StyleDefault.Bold(true))
}

// StyleFor maps a cell to a style whose background is the cell colour.
func StyleFor(cell domain.Cell) tcell.Style {
	return tcell.StyleDefault.Background(toColor(cell.Color()))
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
