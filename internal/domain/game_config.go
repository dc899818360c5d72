package domain

import "errors"

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	Title  string
	Width  uint32
	Height uint32
	Scale  int
	FPS    int
	Seed   uint64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Title:  "game",
		Width:  50,
		Height: 50,
		Scale:  15,
		FPS:    20,
	}
}

// Validate also requires a square board: cell indexing is x-major against
// the width, so only square boards keep spawn positions inside the bounds
// the step check uses.
func (c *GameConfig) Validate() bool {
	if c.Width < 2 || c.Width > 200 {
		return false
	}
	if c.Height < 2 || c.Height > 200 {
		return false
	}
	if c.Width != c.Height {
		return false
	}
	if c.Scale < 1 || c.Scale > 64 {
		return false
	}
	if c.FPS < 1 || c.FPS > 120 {
		return false
	}
	return true
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Scale:  c.Scale,
		FPS:    c.FPS,
		Seed:   c.Seed,
	}
}
