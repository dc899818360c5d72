package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gridsnake/internal/animation"
	"gridsnake/internal/domain"
	"gridsnake/internal/score"
)

// Renderer draws frames produced by the engine. Render paints the snake,
// then the food, then erases the passed cell.
type Renderer interface {
	Clear()
	Render(frame domain.Frame)
}

type Result struct {
	Score uint
	Text  string
	Path  string
}

type Game struct {
	logic     *domain.Logic
	animation *animation.Animation
	renderer  Renderer
	store     *score.Store
}

func New(logic *domain.Logic, anim *animation.Animation, renderer Renderer, store *score.Store) *Game {
	return &Game{
		logic:     logic,
		animation: anim,
		renderer:  renderer,
		store:     store,
	}
}

func (g *Game) Logic() *domain.Logic {
	return g.logic
}

// Play resets the engine and animates it until the snake dies or ctx ends.
// A board with no room left to spawn into aborts the game with
// domain.ErrBoardFull.
func (g *Game) Play(ctx context.Context) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, domain.ErrBoardFull) {
				err = fmt.Errorf("game aborted: %w", e)
				return
			}
			panic(r)
		}
	}()

	g.logic.Reset()
	g.renderer.Clear()

	var last domain.Frame
	err = g.animation.Render(ctx, func() bool {
		last = g.logic.Advance()
		g.renderer.Render(last)
		return last.Alive
	})
	if err != nil {
		return Result{}, err
	}

	result = Result{
		Score: last.Score,
		Text:  score.Text(last.Score),
	}
	log.Printf("Game over: %s", result.Text)

	if g.store != nil {
		path, err := g.store.Save(result.Score)
		if err != nil {
			return result, err
		}
		result.Path = path
		log.Printf("Score saved to %s (%s)", path, score.FileType)
	}

	return result, nil
}
