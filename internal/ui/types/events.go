package types

import (
	"gridsnake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventRestart
	UIEventExitGame
	UIEventSteer
	UIEventQuit
	UIEventShowConfig
	UIEventShowMenu
)

type StartGameData struct {
	Config *domain.GameConfig
}

type SteerData struct {
	Direction domain.Direction
}
