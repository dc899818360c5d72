package terminal

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"gridsnake/internal/app"
	"gridsnake/internal/domain"
)

var errQuit = errors.New("quit requested")

// Controller is the part of app.App the terminal drives.
type Controller interface {
	Events() <-chan app.AppEvent
	SendSteer(dir domain.Direction) error
	Restart() error
}

// KeyDirection maps W/A/S/D and the arrow keys to a direction.
func KeyDirection(ev *tcell.EventKey) domain.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.DirectionUp
	case tcell.KeyDown:
		return domain.DirectionDown
	case tcell.KeyLeft:
		return domain.DirectionLeft
	case tcell.KeyRight:
		return domain.DirectionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return domain.DirectionUp
		case 's', 'S':
			return domain.DirectionDown
		case 'a', 'A':
			return domain.DirectionLeft
		case 'd', 'D':
			return domain.DirectionRight
		}
	}
	return domain.DirectionNone
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func isRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R')
}

// Run pumps keys into ctrl and app events onto the status line until the
// player quits or ctx ends. The caller owns the screen and finalizes it.
func (r *Renderer) Run(ctx context.Context, ctrl Controller) error {
	keys := make(chan *tcell.EventKey, 32)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.screen.Sync()
			case *tcell.EventKey:
				select {
				case keys <- ev:
				default:
				}
			}
		}
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-keys:
				if err := r.handleKey(ev, ctrl); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event := <-ctrl.Events():
				r.handleAppEvent(event)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (r *Renderer) handleKey(ev *tcell.EventKey, ctrl Controller) error {
	switch {
	case isQuit(ev):
		return errQuit

	case isRestart(ev):
		if err := ctrl.Restart(); err != nil {
			log.Printf("Restart ignored: %v", err)
		}

	default:
		if dir := KeyDirection(ev); dir != domain.DirectionNone {
			if err := ctrl.SendSteer(dir); err != nil {
				log.Printf("Failed to send steer: %v", err)
			}
		}
	}
	return nil
}

func (r *Renderer) handleAppEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventGameStarted:
		r.SetStatus("")

	case app.AppEventGameOver:
		if payload, ok := event.Payload.(app.GameOverPayload); ok {
			r.SetStatus("GAME OVER " + payload.Text + "  r to replay, q to quit")
		}

	case app.AppEventError:
		if payload, ok := event.Payload.(app.ErrorPayload); ok {
			r.SetStatus("error: " + payload.Message)
		}
	}
}
