package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionJump
	ActionSelectSlot // slot index carried alongside
	ActionCrafting
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. slot is only
// meaningful for ActionSelectSlot: keys 1–9 map to slots 0–8, key 0 to
// slot 9.
func keyToAction(ev *tcell.EventKey) (a Action, slot int) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionMoveLeft, 0
	case tcell.KeyRight:
		return ActionMoveRight, 0
	case tcell.KeyDown:
		return ActionMoveDown, 0
	case tcell.KeyUp:
		return ActionJump, 0
	case tcell.KeyEscape:
		return ActionQuit, 0
	}

	switch r := ev.Rune(); r {
	case 'a', 'A':
		return ActionMoveLeft, 0
	case 'd', 'D':
		return ActionMoveRight, 0
	case 's', 'S':
		return ActionMoveDown, 0
	case 'w', 'W', ' ':
		return ActionJump, 0
	case 'e', 'E':
		return ActionCrafting, 0
	case 'q', 'Q':
		return ActionQuit, 0
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return ActionSelectSlot, int(r - '1')
	case '0':
		return ActionSelectSlot, 9
	}
	return ActionNone, 0
}
