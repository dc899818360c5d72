package screens

import (
	"fmt"

	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnPlay     *components.Button
	btnSettings *components.Button
	btnQuit     *components.Button

	message  string
	errorMsg string
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:         ctx,
		btnPlay:     components.NewButton(250, 50, "Play", "ENTER", ebiten.KeyEnter),
		btnSettings: components.NewButton(250, 50, "Settings", "S", ebiten.KeyS),
		btnQuit:     components.NewButton(250, 50, "Quit", "ESC", ebiten.KeyEscape),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-80)
	s.btnSettings.SetPosition(centerX-125, centerY-20)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.btnPlay.Update() {
		return types.UIEvent{
			Type:    types.UIEventStartGame,
			Payload: types.StartGameData{Config: s.ctx.Config()},
		}
	}

	if s.btnSettings.Update() {
		return types.UIEvent{Type: types.UIEventShowConfig}
	}

	if s.btnQuit.Update() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	cfg := s.ctx.Config()

	title := "SNAKE"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, 100, types.ColorTextHighlight)

	subtitle := fmt.Sprintf("%dx%d board, %d fps", cfg.Width, cfg.Height, cfg.FPS)
	bounds = text.BoundString(fonts.Normal, subtitle)
	text.Draw(screen, subtitle, fonts.Normal, (w-bounds.Dx())/2, 130, types.ColorTextDim)

	s.btnPlay.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnQuit.Draw(screen)

	msg, msgColor := s.message, types.ColorSuccess
	if s.errorMsg != "" {
		msg, msgColor = s.errorMsg, types.ColorError
	}
	if msg != "" {
		bounds = text.BoundString(fonts.Normal, msg)
		text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, h/2+130, msgColor)
	}

	hint := "W/A/S/D to steer once the game starts"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {
	s.errorMsg = ""
}

func (s *MenuScreen) OnExit() {}

func (s *MenuScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *MenuScreen) SetMessage(msg string) {
	s.message = msg
}
