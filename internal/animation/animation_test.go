package animation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func TestNewRejectsNonPositiveFPS(t *testing.T) {
	for _, fps := range []int{0, -5} {
		if _, err := New(Config{FPS: fps}); !errors.Is(err, ErrInvalidFPS) {
			t.Errorf("fps %d: expected ErrInvalidFPS, got %v", fps, err)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{fps: 20, want: 50 * time.Millisecond},
		{fps: 60, want: 16 * time.Millisecond},
		{fps: 1, want: time.Second},
	}

	for _, tt := range tests {
		a, err := New(Config{FPS: tt.fps})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if a.Interval() != tt.want {
			t.Errorf("fps %d: expected %v, got %v", tt.fps, tt.want, a.Interval())
		}
	}
}

func TestRenderStopsWhenFrameReturnsFalse(t *testing.T) {
	clock := &fakeClock{}
	a, err := New(Config{FPS: 20, Clock: clock})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	calls := 0
	err = a.Render(context.Background(), func() bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 frames, got %d", calls)
	}
	if len(clock.delays) != 4 {
		t.Fatalf("expected 4 scheduled waits, got %d", len(clock.delays))
	}
	for _, d := range clock.delays {
		if d != 50*time.Millisecond {
			t.Fatalf("expected 50ms between frames, got %v", d)
		}
	}
}

func TestRenderHonoursCancellation(t *testing.T) {
	a, err := New(Config{FPS: 1})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err = a.Render(ctx, func() bool {
		calls++
		cancel()
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single frame, got %d", calls)
	}
}

func TestRenderDoesNotStartOnCancelledContext(t *testing.T) {
	a, _ := New(Config{FPS: 10, Clock: &fakeClock{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	if err := a.Render(ctx, func() bool { called = true; return true }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatal("frame must not run on a cancelled context")
	}
}
