package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"gridsnake/internal/domain"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config holds the snake command configuration.
type Config struct {
	Title    string `env:"SNAKE_TITLE"     envDefault:"game"`
	Width    uint   `env:"SNAKE_WIDTH"     envDefault:"50"`
	Height   uint   `env:"SNAKE_HEIGHT"    envDefault:"50"`
	Scale    int    `env:"SNAKE_SCALE"     envDefault:"15"`
	FPS      int    `env:"SNAKE_FPS"       envDefault:"20"`
	Seed     uint64 `env:"SNAKE_SEED"`
	ScoreDir string `env:"SNAKE_SCORE_DIR" envDefault:"."`
	Frontend string `env:"SNAKE_FRONTEND"  envDefault:"window"`
	LogFile  string `env:"SNAKE_LOG_FILE"  envDefault:"snake.log"`
}

// ParseConfig reads the environment first, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.UintVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.UintVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per cell")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "ticks per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&cfg.ScoreDir, "score-dir", cfg.ScoreDir, "directory for score.txt")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "window or terminal")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log destination in terminal mode")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", domain.ErrInvalidConfig, c.Frontend)
	}
	if c.Width > 200 || c.Height > 200 {
		return fmt.Errorf("%w: board %dx%d", domain.ErrInvalidConfig, c.Width, c.Height)
	}
	if !c.GameConfig().Validate() {
		return fmt.Errorf("%w: %dx%d scale %d fps %d", domain.ErrInvalidConfig, c.Width, c.Height, c.Scale, c.FPS)
	}
	return nil
}

func (c Config) GameConfig() *domain.GameConfig {
	return &domain.GameConfig{
		Title:  c.Title,
		Width:  uint32(c.Width),
		Height: uint32(c.Height),
		Scale:  c.Scale,
		FPS:    c.FPS,
		Seed:   c.Seed,
	}
}
