package graphics

import (
	"log"
	"sync"

	"gridsnake/internal/domain"
	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768

	sidebarWidth = 300
	chromeHeight = 100
)

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	canvas *components.Canvas

	config        *domain.GameConfig
	history       []uint
	gameOver      string
	pendingScreen *types.ScreenType
	notices       []notice
	resize        bool
	quitting      bool

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

type notice struct {
	text  string
	isErr bool
}

func NewEngine(cfg *domain.GameConfig) *Engine {
	e := &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		canvas:        components.NewCanvas(cfg),
		config:        cfg.Copy(),
		eventCh:       make(chan types.UIEvent, 100),
	}
	e.width, e.height = e.windowSize()

	return e
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	config types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenConfig] = config
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.Config().Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	if quitting := e.applyPending(); quitting {
		return ebiten.Termination
	}

	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(HistoryUpdater); ok {
		e.dataMu.RLock()
		updater.SetHistory(e.history)
		e.dataMu.RUnlock()
	}

	if updater, ok := currentScreen.(GameOverUpdater); ok {
		e.dataMu.RLock()
		updater.SetGameOver(e.gameOver)
		e.dataMu.RUnlock()
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) Canvas() *components.Canvas {
	return e.canvas
}

func (e *Engine) Config() *domain.GameConfig {
	e.dataMu.RLock()
	defer e.dataMu.RUnlock()
	return e.config.Copy()
}

// Clear and Render make the engine the renderer of the running game.
func (e *Engine) Clear() {
	e.canvas.Clear()
}

func (e *Engine) Render(frame domain.Frame) {
	e.canvas.Render(frame)
}

// Configure is called with the config of every new game.
func (e *Engine) Configure(cfg *domain.GameConfig) {
	e.canvas.Configure(cfg)

	e.dataMu.Lock()
	e.config = cfg.Copy()
	e.gameOver = ""
	e.resize = true
	e.dataMu.Unlock()
}

// SetScreen may be called from any goroutine; the switch happens on the next
// update.
func (e *Engine) SetScreen(screen types.ScreenType) {
	e.dataMu.Lock()
	e.pendingScreen = &screen
	e.dataMu.Unlock()
}

func (e *Engine) SetHistory(history []uint) {
	e.dataMu.Lock()
	e.history = history
	e.dataMu.Unlock()
}

func (e *Engine) SetGameOver(msg string) {
	e.dataMu.Lock()
	e.gameOver = msg
	e.dataMu.Unlock()
}

func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.notices = append(e.notices, notice{text: err, isErr: true})
	e.dataMu.Unlock()
}

func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.notices = append(e.notices, notice{text: msg})
	e.dataMu.Unlock()
}

// Quit closes the window on the next update.
func (e *Engine) Quit() {
	e.dataMu.Lock()
	e.quitting = true
	e.dataMu.Unlock()
}

func (e *Engine) applyPending() bool {
	e.dataMu.Lock()
	quitting := e.quitting
	pendingScreen := e.pendingScreen
	notices := e.notices
	resize := e.resize
	e.pendingScreen = nil
	e.notices = nil
	e.resize = false
	e.dataMu.Unlock()

	if pendingScreen != nil {
		e.switchScreen(*pendingScreen)
	}

	if resize {
		w, h := e.windowSize()
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(e.Config().Title)
	}

	for _, n := range notices {
		if n.isErr {
			if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
				s.SetError(n.text)
			}
			continue
		}
		if s, ok := e.screenMap[e.currentScreen].(MessageSetter); ok {
			s.SetMessage(n.text)
		}
	}

	return quitting
}

func (e *Engine) windowSize() (int, int) {
	cw, ch := e.canvas.Size()
	return max(DefaultWidth, cw+sidebarWidth), max(DefaultHeight, ch+chromeHeight)
}

func (e *Engine) switchScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.switchScreen(types.ScreenMenu)

	case types.UIEventShowConfig:
		e.switchScreen(types.ScreenConfig)

	case types.UIEventQuit:
		e.Quit()
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

type HistoryUpdater interface {
	SetHistory(history []uint)
}

type GameOverUpdater interface {
	SetGameOver(msg string)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
