package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/app"
	"gridsnake/internal/config"
	"gridsnake/internal/score"
	"gridsnake/internal/ui/graphics"
	"gridsnake/internal/ui/graphics/screens"
	"gridsnake/internal/ui/terminal"
	"gridsnake/internal/ui/types"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(ctx, cfg)
	default:
		err = runWindow(ctx, cfg)
	}
	if err != nil {
		stop()
		log.Fatalf("UI error: %v", err)
	}
}

func runWindow(ctx context.Context, cfg config.Config) error {
	engine := graphics.NewEngine(cfg.GameConfig())
	application := app.NewApp(engine, app.Options{ScoreDir: cfg.ScoreDir})

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}
	defer application.Stop()

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewConfigScreen(engine),
		screens.NewGameScreen(engine, engine.Canvas()),
	)
	showLastScore(application, engine)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		engine.Quit()
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	return engine.Run()
}

func runTerminal(ctx context.Context, cfg config.Config) error {
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	gameCfg := cfg.GameConfig()
	renderer := terminal.New(screen, gameCfg)
	application := app.NewApp(renderer, app.Options{ScoreDir: cfg.ScoreDir})

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}
	defer application.Stop()

	if err := application.CreateGame(gameCfg); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return renderer.Run(ctx, application)
}

func showLastScore(application *app.App, engine *graphics.Engine) {
	n, err := application.LastSavedScore()
	if err != nil {
		return
	}
	engine.SetMessage("Last game: " + score.Text(n))
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventGameStarted:
			engine.SetGameOver("")

		case app.AppEventGameOver:
			payload, ok := event.Payload.(app.GameOverPayload)
			if !ok {
				continue
			}
			engine.SetHistory(application.History())
			engine.SetGameOver(payload.Text)
			if payload.Path != "" {
				engine.SetMessage("Saved to " + payload.Path)
			}

		case app.AppEventError:
			if payload, ok := event.Payload.(app.ErrorPayload); ok {
				engine.SetError(payload.Message)
			}
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	for event := range engine.Events() {
		switch event.Type {
		case types.UIEventStartGame:
			data := event.Payload.(types.StartGameData)
			if err := application.CreateGame(data.Config); err != nil {
				log.Printf("Failed to create game: %v", err)
				engine.SetError(err.Error())
				continue
			}
			engine.SetScreen(types.ScreenGame)

		case types.UIEventRestart:
			if err := application.Restart(); err != nil {
				log.Printf("Failed to restart: %v", err)
				engine.SetError(err.Error())
			}

		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			if err := application.SendSteer(data.Direction); err != nil {
				log.Printf("Failed to send steer: %v", err)
			}

		case types.UIEventExitGame:
			application.ExitGame()
			engine.SetScreen(types.ScreenMenu)
			showLastScore(application, engine)

		case types.UIEventQuit:
			log.Println("Quit requested")
		}
	}
}
