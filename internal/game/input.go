package game

import (
	"seed-maze/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionConfirm
	ActionRetry
	ActionMenu
	ActionQuit
	ActionTier1
	ActionTier2
	ActionTier3
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionMenu
	case tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return ActionMoveN
	case 'j', 'J', 's', 'S':
		return ActionMoveS
	case 'l', 'L', 'd', 'D':
		return ActionMoveE
	case 'h', 'H', 'a', 'A':
		return ActionMoveW
	case ' ':
		return ActionConfirm
	case 'r', 'R':
		return ActionRetry
	case 'm', 'M':
		return ActionMenu
	case 'q', 'Q':
		return ActionQuit
	case '1':
		return ActionTier1
	case '2':
		return ActionTier2
	case '3':
		return ActionTier3
	}
	return ActionNone
}

// actionToDirection converts a movement action to a unit move.
func actionToDirection(a Action) (gamemap.Position, bool) {
	switch a {
	case ActionMoveN:
		return gamemap.Up, true
	case ActionMoveS:
		return gamemap.Down, true
	case ActionMoveE:
		return gamemap.Right, true
	case ActionMoveW:
		return gamemap.Left, true
	}
	return gamemap.Position{}, false
}
