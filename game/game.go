package game

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kobra/audio"
	"github.com/lixenwraith/kobra/config"
	"github.com/lixenwraith/kobra/engine"
	"github.com/lixenwraith/kobra/input"
	"github.com/lixenwraith/kobra/parameter"
	"github.com/lixenwraith/kobra/render"
	"github.com/lixenwraith/kobra/system"
)

// Mode is the top-level screen the game is showing
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeSettings
	ModePlaying
	ModeGameOver
)

var mainMenuItems = []string{"Play", "Settings", "Quit"}

// Game is the application shell: terminal, audio, settings, one session,
// and the frame loop driving them.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	clock    *engine.FrameClock
	keys     *input.KeyTable
	sound    *audio.SoundManager

	settings     config.Settings
	settingsPath string

	session *Session
	mode    Mode
	paused  bool
	quit    bool

	menuIndex     int
	settingsIndex int
	fields        []settingsField
	editSettings  config.Settings

	deathCause string
}

// New builds the game on an initialized screen. A nil sound manager or a
// failed settings load degrades to defaults rather than failing startup.
func New(screen tcell.Screen, sound *audio.SoundManager, settingsPath string) (*Game, error) {
	settings, err := config.Load(settingsPath)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
		settings = config.Default()
	}

	g := &Game{
		screen:       screen,
		renderer:     render.New(screen),
		clock:        engine.NewFrameClock(parameter.TargetFPS),
		keys:         input.DefaultKeyTable(),
		sound:        sound,
		settings:     settings,
		settingsPath: settingsPath,
		mode:         ModeMenu,
		fields:       settingsFields(),
	}

	if err := g.buildSession(); err != nil {
		return nil, err
	}
	if sound != nil && settings.Music {
		sound.SetMusic(true)
	}
	return g, nil
}

func (g *Game) buildSession() error {
	session, err := NewSession(g.settings, uint64(time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	g.session = session
	g.renderer.Layout(session.Board)
	return nil
}

// Run drives the frame loop until quit. Input is polled on a separate
// goroutine; the loop itself stays single-threaded.
func (g *Game) Run() error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	g.clock.Reset()
	for !g.quit {
		dtMs := g.clock.Tick()

	drain:
		for {
			select {
			case ev := <-events:
				g.handleIntent(g.keys.Translate(ev))
			default:
				break drain
			}
		}
		if g.quit {
			break
		}

		if g.mode == ModePlaying && !g.paused {
			g.session.Update(dtMs)
			if !g.session.Alive() {
				g.deathCause = deathCause(g.session.LastDeath)
				g.mode = ModeGameOver
			}
		}
		g.playQueuedSounds()
		g.draw()
	}
	return nil
}

func (g *Game) draw() {
	switch g.mode {
	case ModeMenu:
		g.renderer.RenderMenu("K O B R A", mainMenuItems, g.menuIndex,
			"arrows or wasd to move, enter to select, q to quit")
	case ModeSettings:
		g.renderer.RenderMenu("SETTINGS", menuLines(g.fields, &g.editSettings), g.settingsIndex,
			"left/right to change, esc to save and go back")
	case ModePlaying:
		g.renderer.RenderGame(g.session.World, g.session.Snake, g.session.Score, g.paused, g.settings.Music)
	case ModeGameOver:
		g.renderer.RenderGame(g.session.World, g.session.Snake, g.session.Score, false, g.settings.Music)
		g.renderer.RenderGameOver(g.session.Score, g.deathCause)
	}
	g.renderer.Show()
}

// playQueuedSounds drains the session's event queue into the sound
// manager, honoring the per-effect settings toggles.
func (g *Game) playQueuedSounds() {
	for _, ev := range g.session.Events.Drain() {
		switch ev.Type {
		case engine.EventAppleEaten:
			if g.sound != nil && g.settings.EatSound {
				g.sound.PlayEat()
			}
		case engine.EventGrapeEaten:
			if g.sound != nil && g.settings.EatSound {
				g.sound.PlayGrape()
			}
		case engine.EventDeath:
			if g.sound != nil && g.settings.DeathSound {
				g.sound.PlayDeath()
			}
		}
	}
}

func (g *Game) handleIntent(intent input.Intent) {
	switch intent {
	case input.IntentNone:
		return
	case input.IntentResize:
		g.screen.Sync()
		g.renderer.Layout(g.session.Board)
		return
	case input.IntentToggleMusic:
		g.settings.Music = !g.settings.Music
		if g.sound != nil {
			g.sound.SetMusic(g.settings.Music)
		}
		return
	}

	switch g.mode {
	case ModeMenu:
		g.handleMenuIntent(intent)
	case ModeSettings:
		g.handleSettingsIntent(intent)
	case ModePlaying:
		g.handlePlayIntent(intent)
	case ModeGameOver:
		g.handleGameOverIntent(intent)
	}
}

func (g *Game) handleMenuIntent(intent input.Intent) {
	switch intent {
	case input.IntentUp:
		if g.menuIndex > 0 {
			g.menuIndex--
		}
	case input.IntentDown:
		if g.menuIndex < len(mainMenuItems)-1 {
			g.menuIndex++
		}
	case input.IntentConfirm:
		switch mainMenuItems[g.menuIndex] {
		case "Play":
			g.startRound()
		case "Settings":
			g.openSettings()
		case "Quit":
			g.quit = true
		}
	case input.IntentQuit:
		g.quit = true
	}
}

func (g *Game) openSettings() {
	g.editSettings = g.settings
	g.settingsIndex = 0
	g.mode = ModeSettings
}

func (g *Game) handleSettingsIntent(intent input.Intent) {
	backRow := len(g.fields)
	switch intent {
	case input.IntentUp:
		if g.settingsIndex > 0 {
			g.settingsIndex--
		}
	case input.IntentDown:
		if g.settingsIndex < backRow {
			g.settingsIndex++
		}
	case input.IntentLeft:
		if g.settingsIndex < backRow {
			g.fields[g.settingsIndex].adjust(&g.editSettings, -1)
		}
	case input.IntentRight:
		if g.settingsIndex < backRow {
			g.fields[g.settingsIndex].adjust(&g.editSettings, 1)
		}
	case input.IntentConfirm:
		if g.settingsIndex == backRow {
			g.closeSettings()
		}
	case input.IntentMenu:
		g.closeSettings()
	case input.IntentQuit:
		g.quit = true
	}
}

// closeSettings validates, persists and applies the edited settings.
// Geometry changes rebuild the session; the rest apply in place.
func (g *Game) closeSettings() {
	if err := g.editSettings.Validate(); err != nil {
		g.editSettings = g.settings
		g.mode = ModeMenu
		return
	}

	needsReset := g.editSettings.NeedsReset(g.settings)
	g.settings = g.editSettings
	_ = config.Save(g.settingsPath, g.settings)

	if needsReset {
		if err := g.buildSession(); err != nil {
			// Keep the old session rather than dying mid-game.
			g.mode = ModeMenu
			return
		}
	} else {
		g.session.ApplyLive(g.settings)
	}
	if g.sound != nil {
		g.sound.SetMusic(g.settings.Music)
	}
	g.mode = ModeMenu
}

func (g *Game) startRound() {
	g.session.ResetRound()
	g.paused = false
	g.mode = ModePlaying
}

func (g *Game) handlePlayIntent(intent input.Intent) {
	if v, ok := input.Direction(intent); ok {
		if !g.paused {
			g.session.Steer(v)
		}
		return
	}
	switch intent {
	case input.IntentPause:
		g.paused = !g.paused
	case input.IntentMenu:
		g.paused = false
		g.mode = ModeMenu
	case input.IntentQuit:
		g.quit = true
	}
}

func (g *Game) handleGameOverIntent(intent input.Intent) {
	switch intent {
	case input.IntentConfirm:
		g.startRound()
	case input.IntentMenu:
		g.mode = ModeMenu
	case input.IntentQuit:
		g.quit = true
	}
}

// deathCause maps a death reason to the game over message
func deathCause(r system.DeathReason) string {
	switch r {
	case system.ReasonWall:
		return "Zapped by the wall"
	case system.ReasonSelf:
		return "Bit your own tail"
	case system.ReasonObstacle:
		return "Crashed into a rock"
	}
	return "Dead"
}
