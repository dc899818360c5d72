package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gridsnake/internal/domain"
	"gridsnake/internal/score"
)

type tickClock struct{}

func (tickClock) After(time.Duration) <-chan time.Time {
	return time.After(time.Millisecond)
}

type fakeRenderer struct {
	mu         sync.Mutex
	clears     int
	frames     int
	configured *domain.GameConfig
}

func (r *fakeRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *fakeRenderer) Render(domain.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++
}

func (r *fakeRenderer) Configure(cfg *domain.GameConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configured = cfg
}

func testConfig() *domain.GameConfig {
	cfg := domain.DefaultGameConfig()
	cfg.Width = 8
	cfg.Height = 8
	cfg.FPS = 120
	cfg.Seed = 42
	return cfg
}

func startApp(t *testing.T) (*App, *fakeRenderer, string) {
	t.Helper()
	dir := t.TempDir()
	renderer := &fakeRenderer{}
	a := NewApp(renderer, Options{ScoreDir: dir, Clock: tickClock{}})
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(a.Stop)
	return a, renderer, dir
}

func waitEvent(t *testing.T, a *App, want AppEventType) AppEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case event := <-a.Events():
			if event.Type == want {
				return event
			}
			if event.Type == AppEventError {
				t.Fatalf("unexpected error event: %+v", event.Payload)
			}
		case <-timeout:
			t.Fatalf("timed out waiting for event %d", want)
		}
	}
}

func TestCreateGamePlaysUntilGameOver(t *testing.T) {
	a, renderer, dir := startApp(t)

	if err := a.CreateGame(testConfig()); err != nil {
		t.Fatalf("create game: %v", err)
	}
	waitEvent(t, a, AppEventGameStarted)

	if err := a.SendSteer(domain.DirectionUp); err != nil {
		t.Fatalf("steer: %v", err)
	}

	event := waitEvent(t, a, AppEventGameOver)
	payload, ok := event.Payload.(GameOverPayload)
	if !ok {
		t.Fatalf("unexpected payload %T", event.Payload)
	}
	if payload.Text != score.Text(payload.Score) {
		t.Errorf("expected text %q, got %q", score.Text(payload.Score), payload.Text)
	}
	if payload.Path != filepath.Join(dir, score.Filename) {
		t.Errorf("unexpected score path %q", payload.Path)
	}

	data, err := os.ReadFile(payload.Path)
	if err != nil {
		t.Fatalf("read score file: %v", err)
	}
	if string(data) != payload.Text {
		t.Errorf("expected file %q, got %q", payload.Text, data)
	}

	if got := a.History(); len(got) != 1 || got[0] != payload.Score {
		t.Errorf("unexpected history %v", got)
	}
	if a.IsPlaying() {
		t.Error("expected no running game after game over")
	}

	renderer.mu.Lock()
	defer renderer.mu.Unlock()
	if renderer.configured == nil || renderer.configured.Width != 8 {
		t.Errorf("expected renderer to be configured, got %+v", renderer.configured)
	}
	if renderer.clears != 1 || renderer.frames == 0 {
		t.Errorf("expected one clear and some frames, got %d clears %d frames", renderer.clears, renderer.frames)
	}
}

func TestRestartReplaysGame(t *testing.T) {
	a, _, _ := startApp(t)

	if err := a.CreateGame(testConfig()); err != nil {
		t.Fatalf("create game: %v", err)
	}
	if err := a.SendSteer(domain.DirectionLeft); err != nil {
		t.Fatalf("steer: %v", err)
	}
	waitEvent(t, a, AppEventGameOver)

	if err := a.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	waitEvent(t, a, AppEventGameOver)

	if got := len(a.History()); got != 2 {
		t.Fatalf("expected 2 runs in history, got %d", got)
	}
}

func TestRestartWhilePlaying(t *testing.T) {
	a, _, _ := startApp(t)

	if err := a.CreateGame(testConfig()); err != nil {
		t.Fatalf("create game: %v", err)
	}
	if err := a.Restart(); !errors.Is(err, ErrAlreadyPlaying) {
		t.Fatalf("expected ErrAlreadyPlaying, got %v", err)
	}
}

func TestExitGameStopsPlay(t *testing.T) {
	a, _, _ := startApp(t)

	if err := a.CreateGame(testConfig()); err != nil {
		t.Fatalf("create game: %v", err)
	}
	waitEvent(t, a, AppEventGameStarted)

	a.ExitGame()
	if a.IsPlaying() {
		t.Fatal("expected game to be stopped")
	}
	if got := len(a.History()); got != 0 {
		t.Fatalf("expected aborted run to stay out of history, got %d", got)
	}

	if err := a.Restart(); err != nil {
		t.Fatalf("restart after exit: %v", err)
	}
}

func TestCreateGameReplacesRunningGame(t *testing.T) {
	a, _, _ := startApp(t)

	if err := a.CreateGame(testConfig()); err != nil {
		t.Fatalf("create game: %v", err)
	}

	cfg := testConfig()
	cfg.Width = 12
	cfg.Height = 12
	if err := a.CreateGame(cfg); err != nil {
		t.Fatalf("second create game: %v", err)
	}
	if got := a.GetConfig(); got.Width != 12 {
		t.Fatalf("expected new config, got %+v", got)
	}
}

func TestCreateGameInvalidConfig(t *testing.T) {
	a, _, _ := startApp(t)

	cfg := testConfig()
	cfg.Width = 4
	if err := a.CreateGame(cfg); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if a.GetConfig() != nil {
		t.Fatal("expected no config after a rejected game")
	}
}

func TestCommandsWithoutGame(t *testing.T) {
	a, _, _ := startApp(t)

	if err := a.SendSteer(domain.DirectionUp); !errors.Is(err, ErrNoGame) {
		t.Errorf("expected ErrNoGame from steer, got %v", err)
	}
	if err := a.Restart(); !errors.Is(err, ErrNoGame) {
		t.Errorf("expected ErrNoGame from restart, got %v", err)
	}
	a.ExitGame()
}

func TestCreateGameBeforeStart(t *testing.T) {
	a := NewApp(&fakeRenderer{}, Options{ScoreDir: t.TempDir(), Clock: tickClock{}})
	if err := a.CreateGame(testConfig()); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestLastSavedScore(t *testing.T) {
	a, _, dir := startApp(t)

	if err := os.WriteFile(filepath.Join(dir, score.Filename), []byte(score.Text(7)), 0644); err != nil {
		t.Fatalf("write score: %v", err)
	}
	got, err := a.LastSavedScore()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
