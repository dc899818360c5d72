package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"gridsnake/internal/animation"
	"gridsnake/internal/domain"
	"gridsnake/internal/game"
	"gridsnake/internal/score"
)

var (
	ErrNotStarted     = errors.New("app is not started")
	ErrNoGame         = errors.New("no game created")
	ErrAlreadyPlaying = errors.New("game is already running")
)

type App struct {
	renderer game.Renderer
	store    *score.Store
	clock    animation.Clock

	game     *game.Game
	config   *domain.GameConfig
	playing  bool
	stopPlay context.CancelFunc
	playDone chan struct{}
	history  []uint

	eventCh chan AppEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventGameStarted AppEventType = iota
	AppEventGameOver
	AppEventError
)

type GameOverPayload struct {
	Score uint
	Text  string
	Path  string
}

type ErrorPayload struct {
	Message string
}

type Options struct {
	ScoreDir string
	Clock    animation.Clock
}

// Configurable renderers are told about every new game before it starts.
type Configurable interface {
	Configure(cfg *domain.GameConfig)
}

func NewApp(renderer game.Renderer, opts Options) *App {
	return &App{
		renderer: renderer,
		store:    score.NewStore(opts.ScoreDir),
		clock:    opts.Clock,
		eventCh:  make(chan AppEvent, 100),
	}
}

func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ctx, a.cancel = context.WithCancel(ctx)
	log.Printf("App started, scores go to %s", a.store.Path())
	return nil
}

func (a *App) Stop() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	a.mu.Unlock()

	a.wg.Wait()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) GetConfig() *domain.GameConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.config == nil {
		return nil
	}
	return a.config.Copy()
}

func (a *App) History() []uint {
	a.mu.RLock()
	defer a.mu.RUnlock()
	result := make([]uint, len(a.history))
	copy(result, a.history)
	return result
}

func (a *App) IsPlaying() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.playing
}

// LastSavedScore reads the score file left by a previous game.
func (a *App) LastSavedScore() (uint, error) {
	return a.store.Load()
}

// CreateGame replaces the current game with a new engine built from cfg and
// starts playing it.
func (a *App) CreateGame(cfg *domain.GameConfig) error {
	if !cfg.Validate() {
		return fmt.Errorf("%w: %dx%d scale %d fps %d", domain.ErrInvalidConfig, cfg.Width, cfg.Height, cfg.Scale, cfg.FPS)
	}

	a.ExitGame()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logic, err := domain.NewLogic(cfg.Width, cfg.Height, rand.New(rand.NewPCG(seed, 0)))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	anim, err := animation.New(animation.Config{FPS: cfg.FPS, Clock: a.clock})
	if err != nil {
		return fmt.Errorf("failed to create animation: %w", err)
	}

	if c, ok := a.renderer.(Configurable); ok {
		c.Configure(cfg.Copy())
	}

	a.mu.Lock()
	a.game = game.New(logic, anim, a.renderer, a.store)
	a.config = cfg.Copy()
	a.mu.Unlock()

	log.Printf("Game created: %dx%d, %d fps, seed %d", cfg.Width, cfg.Height, cfg.FPS, seed)

	return a.play()
}

// Restart replays the current game; the engine is reset, not rebuilt.
func (a *App) Restart() error {
	return a.play()
}

func (a *App) ExitGame() {
	a.mu.RLock()
	stop, done := a.stopPlay, a.playDone
	a.mu.RUnlock()

	if stop == nil {
		return
	}
	stop()
	<-done
}

func (a *App) SendSteer(dir domain.Direction) error {
	a.mu.RLock()
	g := a.game
	a.mu.RUnlock()

	if g == nil {
		return ErrNoGame
	}
	g.Logic().SetDirection(dir)
	return nil
}

func (a *App) play() error {
	a.mu.Lock()
	if a.ctx == nil {
		a.mu.Unlock()
		return ErrNotStarted
	}
	if a.game == nil {
		a.mu.Unlock()
		return ErrNoGame
	}
	if a.playing {
		a.mu.Unlock()
		return ErrAlreadyPlaying
	}

	ctx, cancel := context.WithCancel(a.ctx)
	done := make(chan struct{})
	g := a.game
	a.playing = true
	a.stopPlay = cancel
	a.playDone = done
	a.mu.Unlock()

	a.wg.Add(1)
	go a.playLoop(ctx, cancel, done, g)

	return nil
}

func (a *App) playLoop(ctx context.Context, cancel context.CancelFunc, done chan struct{}, g *game.Game) {
	defer a.wg.Done()
	defer close(done)
	defer cancel()

	a.emit(AppEvent{Type: AppEventGameStarted})

	result, err := g.Play(ctx)

	a.mu.Lock()
	a.playing = false
	a.stopPlay = nil
	a.playDone = nil
	if err == nil {
		a.history = append(a.history, result.Score)
	}
	a.mu.Unlock()

	switch {
	case errors.Is(err, context.Canceled):
		log.Println("Game stopped")

	case err != nil:
		log.Printf("Game failed: %v", err)
		a.emit(AppEvent{
			Type:    AppEventError,
			Payload: ErrorPayload{Message: err.Error()},
		})

	default:
		a.emit(AppEvent{
			Type: AppEventGameOver,
			Payload: GameOverPayload{
				Score: result.Score,
				Text:  result.Text,
				Path:  result.Path,
			},
		})
	}
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("App event channel full, dropping event")
	}
}
