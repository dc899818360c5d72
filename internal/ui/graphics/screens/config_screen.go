package screens

import (
	"gridsnake/internal/domain"
	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/graphics/input"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type ConfigScreen struct {
	ctx types.ScreenContext

	inputWidth  *components.NumberInput
	inputHeight *components.NumberInput
	inputFPS    *components.NumberInput
	inputScale  *components.NumberInput

	btnStart *components.Button
	btnBack  *components.Button

	errorMsg string
}

func NewConfigScreen(ctx types.ScreenContext) *ConfigScreen {
	cfg := ctx.Config()
	return &ConfigScreen{
		ctx:         ctx,
		inputWidth:  components.NewNumberInput(140, 35, "Width", 2, 200, int(cfg.Width)),
		inputHeight: components.NewNumberInput(140, 35, "Height", 2, 200, int(cfg.Height)),
		inputFPS:    components.NewNumberInput(140, 35, "FPS", 1, 120, cfg.FPS),
		inputScale:  components.NewNumberInput(140, 35, "Scale", 1, 64, cfg.Scale),
		btnStart:    components.NewButton(140, 45, "Start", "ENTER", ebiten.KeyEnter),
		btnBack:     components.NewButton(140, 45, "Back", "ESC"),
	}
}

func (s *ConfigScreen) inputs() []*components.NumberInput {
	return []*components.NumberInput{s.inputWidth, s.inputHeight, s.inputFPS, s.inputScale}
}

func (s *ConfigScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 140

	s.inputWidth.SetPosition(centerX-150, startY)
	s.inputHeight.SetPosition(centerX+10, startY)
	s.inputFPS.SetPosition(centerX-150, startY+80)
	s.inputScale.SetPosition(centerX+10, startY+80)
	s.btnBack.SetPosition(centerX-150, startY+150)
	s.btnStart.SetPosition(centerX+10, startY+150)

	for _, in := range s.inputs() {
		in.Update()
	}

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnStart.Update() {
		return s.startGame()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ConfigScreen) cycleFocus() {
	inputs := s.inputs()

	currentIdx := -1
	for i, in := range inputs {
		if in.Focused {
			currentIdx = i
			in.Focused = false
			break
		}
	}

	nextIdx := (currentIdx + 1) % len(inputs)
	inputs[nextIdx].Focused = true
}

func (s *ConfigScreen) startGame() types.UIEvent {
	cfg, err := s.readConfig()
	if err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	if cfg.Width != cfg.Height {
		s.errorMsg = "Board must be square"
		return types.UIEvent{Type: types.UIEventNone}
	}

	return types.UIEvent{
		Type:    types.UIEventStartGame,
		Payload: types.StartGameData{Config: cfg},
	}
}

func (s *ConfigScreen) readConfig() (*domain.GameConfig, error) {
	cfg := s.ctx.Config()

	width, err := s.inputWidth.Value()
	if err != nil {
		return nil, err
	}
	height, err := s.inputHeight.Value()
	if err != nil {
		return nil, err
	}
	fps, err := s.inputFPS.Value()
	if err != nil {
		return nil, err
	}
	scale, err := s.inputScale.Value()
	if err != nil {
		return nil, err
	}

	cfg.Width = uint32(width)
	cfg.Height = uint32(height)
	cfg.FPS = fps
	cfg.Scale = scale
	return cfg, nil
}

func (s *ConfigScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SETTINGS"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, 60, types.ColorTextHighlight)

	for _, in := range s.inputs() {
		in.Draw(screen)
	}

	s.btnBack.Draw(screen)
	s.btnStart.Draw(screen)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, 380, types.ColorError)
	}

	hint := "TAB to switch fields, ENTER to start"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *ConfigScreen) OnEnter() {
	s.errorMsg = ""
	s.inputWidth.Focused = true
}

func (s *ConfigScreen) OnExit() {
	for _, in := range s.inputs() {
		in.Focused = false
	}
}

func (s *ConfigScreen) SetError(err string) {
	s.errorMsg = err
}
