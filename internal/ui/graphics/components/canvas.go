package components

import (
	"sync"

	"gridsnake/internal/domain"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas keeps the board picture between ticks. Frames arrive from the game
// goroutine and are painted onto the image on the ebiten thread, so only the
// changed cells are touched per tick.
type Canvas struct {
	X, Y int

	mu      sync.Mutex
	width   uint32
	height  uint32
	scale   int
	cleared bool
	pending []domain.Frame
	last    domain.Frame
	hasLast bool

	image *ebiten.Image
}

func NewCanvas(cfg *domain.GameConfig) *Canvas {
	c := &Canvas{}
	c.Configure(cfg)
	return c
}

func (c *Canvas) Configure(cfg *domain.GameConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.width = cfg.Width
	c.height = cfg.Height
	c.scale = cfg.Scale
	c.cleared = true
	c.pending = nil
	c.hasLast = false
}

func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleared = true
	c.pending = nil
	c.hasLast = false
}

func (c *Canvas) Render(frame domain.Frame) {
	frame = frame.Copy()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = append(c.pending, frame)
	c.last = frame
	c.hasLast = true
}

// Last returns the most recent frame handed to the canvas.
func (c *Canvas) Last() (domain.Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.hasLast
}

func (c *Canvas) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int(c.width) * c.scale, int(c.height) * c.scale
}

func (c *Canvas) Draw(screen *ebiten.Image) {
	c.flush()

	if c.image == nil {
		return
	}

	w, h := c.image.Bounds().Dx(), c.image.Bounds().Dy()
	vector.StrokeRect(screen,
		float32(c.X-1), float32(c.Y-1),
		float32(w+2), float32(h+2),
		2, types.ColorFieldBorder, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.X), float64(c.Y))
	screen.DrawImage(c.image, op)
}

func (c *Canvas) flush() {
	c.mu.Lock()
	frames := c.pending
	cleared := c.cleared
	w, h, scale := int(c.width)*c.scale, int(c.height)*c.scale, c.scale
	c.pending = nil
	c.cleared = false
	c.mu.Unlock()

	if w == 0 || h == 0 {
		return
	}

	if c.image == nil || c.image.Bounds().Dx() != w || c.image.Bounds().Dy() != h {
		if c.image != nil {
			c.image.Deallocate()
		}
		c.image = ebiten.NewImage(w, h)
		cleared = true
	}

	if cleared {
		c.image.Fill(types.ColorEmpty)
	}

	size := float32(scale)
	for _, frame := range frames {
		for _, paint := range frame.Paints() {
			x := float32(paint.Position.X) * size
			y := float32(paint.Position.Y) * size
			vector.DrawFilledRect(c.image, x, y, size, size, paint.Cell.Color(), false)
		}
	}
}
