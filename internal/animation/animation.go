// Package animation drives a frame callback at a fixed rate until the
// callback asks to stop.
package animation

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidFPS = errors.New("fps must be positive")

// Clock schedules the next frame.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type Config struct {
	FPS   int
	Clock Clock
}

type Animation struct {
	interval time.Duration
	clock    Clock
}

func New(cfg Config) (*Animation, error) {
	if cfg.FPS <= 0 {
		return nil, ErrInvalidFPS
	}

	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}

	return &Animation{
		interval: time.Duration(1000/cfg.FPS) * time.Millisecond,
		clock:    clock,
	}, nil
}

func (a *Animation) Interval() time.Duration {
	return a.interval
}

// Render calls frame right away and then once per interval. It returns nil
// as soon as frame returns false, or the context error if ctx ends first.
// Frames never overlap.
func (a *Animation) Render(ctx context.Context, frame func() bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !frame() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.clock.After(a.interval):
		}
	}
}
