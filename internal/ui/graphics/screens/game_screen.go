package screens

import (
	"gridsnake/internal/domain"
	"gridsnake/internal/score"
	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/graphics/input"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type GameScreen struct {
	ctx types.ScreenContext

	canvas     *components.Canvas
	scoreboard *components.Scoreboard
	keyboard   *input.KeyboardHandler

	history  []uint
	gameOver string

	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext, canvas *components.Canvas) *GameScreen {
	return &GameScreen{
		ctx:        ctx,
		canvas:     canvas,
		scoreboard: components.NewScoreboard(0, 0, 230, 400),
		keyboard:   input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetHistory(history []uint) {
	s.history = history
}

func (s *GameScreen) SetGameOver(msg string) {
	s.gameOver = msg
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventExitGame}
	}

	if s.gameOver != "" {
		if input.IsEnterPressed() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()

	s.canvas.X = 20
	s.canvas.Y = 50
	s.canvas.Draw(screen)

	s.scoreboard.X = w - 250
	s.scoreboard.Y = 50
	s.scoreboard.Height = h - 100
	s.scoreboard.Draw(screen, s.history)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)

	if s.gameOver != "" {
		s.drawGameOver(screen)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	text.Draw(screen, s.ctx.Config().Title, fonts.Title, 20, 30, types.ColorTextHighlight)

	var current uint
	if frame, ok := s.canvas.Last(); ok {
		current = frame.Score
	}
	scoreText := score.Text(current)
	bounds := text.BoundString(fonts.Normal, scoreText)
	text.Draw(screen, scoreText, fonts.Normal, w-bounds.Dx()-20, 30, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  ESC to exit"
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-15, types.ColorError)
	} else if s.message != "" {
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-20, h-15, types.ColorSuccess)
	}
}

func (s *GameScreen) drawGameOver(screen *ebiten.Image) {
	fonts := types.GetFonts()
	cw, ch := s.canvas.Size()

	vector.DrawFilledRect(screen,
		float32(s.canvas.X), float32(s.canvas.Y),
		float32(cw), float32(ch),
		types.ColorOverlay, false)

	lines := []string{"GAME OVER", s.gameOver, "ENTER to play again, ESC for menu"}
	y := s.canvas.Y + ch/2 - 30
	for i, line := range lines {
		face := fonts.Normal
		if i == 0 {
			face = fonts.Title
		}
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, s.canvas.X+(cw-bounds.Dx())/2, y, types.ColorText)
		y += 26
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
}
