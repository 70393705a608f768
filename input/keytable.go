package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents. Separate maps for special keys
// and rune keys mirror how tcell reports them.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows or WASD to steer,
// p to pause, q to quit, m for the menu, n to toggle music.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyEnter:  IntentConfirm,
			tcell.KeyEscape: IntentMenu,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'w': IntentUp,
			's': IntentDown,
			'a': IntentLeft,
			'd': IntentRight,
			'p': IntentPause,
			'q': IntentQuit,
			'm': IntentMenu,
			'n': IntentToggleMusic,
			' ': IntentConfirm,
		},
	}
}

// Translate converts a tcell event into an intent. Rune keys are matched
// case-insensitively; unknown events yield IntentNone.
func (t *KeyTable) Translate(ev tcell.Event) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			r := e.Rune()
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			return t.Runes[r]
		}
		return t.SpecialKeys[e.Key()]
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
