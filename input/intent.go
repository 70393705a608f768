// Package input translates raw terminal events into semantic intents and
// enforces the turn rules of the snake.
package input

import "github.com/lixenwraith/kobra/component"

// Intent discriminates semantic actions
type Intent uint8

const (
	IntentNone Intent = iota

	// Direction intents steer the snake in play and navigate menus
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentPause       // p
	IntentMenu        // m, ESC
	IntentConfirm     // Enter, Space
	IntentToggleMusic // n
	IntentResize      // terminal resize event
)

// Direction maps a direction intent to a grid velocity. ok is false for
// non-direction intents.
func Direction(i Intent) (component.Velocity, bool) {
	switch i {
	case IntentUp:
		return component.Velocity{DX: 0, DY: -1}, true
	case IntentDown:
		return component.Velocity{DX: 0, DY: 1}, true
	case IntentLeft:
		return component.Velocity{DX: -1, DY: 0}, true
	case IntentRight:
		return component.Velocity{DX: 1, DY: 0}, true
	}
	return component.Velocity{}, false
}

// AllowedTurn rejects a direct reversal into the neck; every other turn,
// including re-pressing the current direction, is accepted. A resting
// snake may start in any direction.
func AllowedTurn(current, next component.Velocity) bool {
	if current.IsZero() {
		return true
	}
	return !(next.DX == -current.DX && next.DY == -current.DY)
}
