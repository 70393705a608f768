package game

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kobra/config"
	"github.com/lixenwraith/kobra/input"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(120, 40)

	path := filepath.Join(t.TempDir(), "kobra.toml")
	g, err := New(screen, nil, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestCorruptSettingsFileWarnsAndUsesDefaults(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(120, 40)

	path := filepath.Join(t.TempDir(), "kobra.toml")
	if err := os.WriteFile(path, []byte("cells_per_side = nonsense\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	g, err := New(screen, nil, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.settings != config.Default() {
		t.Errorf("settings = %+v, want defaults", g.settings)
	}
	if !strings.Contains(buf.String(), "using defaults") {
		t.Errorf("load failure must be logged, got %q", buf.String())
	}
}

func TestMenuNavigationStartsGame(t *testing.T) {
	g := newTestGame(t)
	if g.mode != ModeMenu {
		t.Fatalf("initial mode = %v, want menu", g.mode)
	}

	g.handleIntent(input.IntentConfirm) // Play is the first item
	if g.mode != ModePlaying {
		t.Errorf("mode = %v, want playing", g.mode)
	}
	if !g.session.Alive() {
		t.Error("started round must have a live snake")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)

	g.handleIntent(input.IntentPause)
	if !g.paused {
		t.Error("pause intent must pause")
	}
	g.handleIntent(input.IntentPause)
	if g.paused {
		t.Error("second pause intent must resume")
	}
}

func TestMenuIntentLeavesGame(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)
	g.paused = true

	g.handleIntent(input.IntentMenu)
	if g.mode != ModeMenu {
		t.Errorf("mode = %v, want menu", g.mode)
	}
	if g.paused {
		t.Error("returning to menu must clear pause")
	}
}

func TestSettingsAdjustAndPersist(t *testing.T) {
	g := newTestGame(t)

	g.handleIntent(input.IntentDown) // focus Settings
	g.handleIntent(input.IntentConfirm)
	if g.mode != ModeSettings {
		t.Fatalf("mode = %v, want settings", g.mode)
	}

	// First field is grid size; one right press grows it by one step.
	before := g.editSettings.CellsPerSide
	g.handleIntent(input.IntentRight)
	if g.editSettings.CellsPerSide != before+2 {
		t.Errorf("cells = %d, want %d", g.editSettings.CellsPerSide, before+2)
	}

	g.handleIntent(input.IntentMenu) // save and back
	if g.mode != ModeMenu {
		t.Fatalf("mode = %v, want menu", g.mode)
	}
	if g.settings.CellsPerSide != before+2 {
		t.Errorf("applied cells = %d, want %d", g.settings.CellsPerSide, before+2)
	}
	// The grid change rebuilt the session with the new board.
	if got := g.session.Board.Cols(); got != before+2 {
		t.Errorf("session board cols = %d, want %d", got, before+2)
	}

	// And the change survived the settings file round trip.
	loaded, err := config.Load(g.settingsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CellsPerSide != before+2 {
		t.Errorf("persisted cells = %d, want %d", loaded.CellsPerSide, before+2)
	}
}

func TestQuitFromAnywhere(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentQuit)
	if !g.quit {
		t.Error("quit intent in menu must set quit")
	}

	g = newTestGame(t)
	g.handleIntent(input.IntentConfirm)
	g.handleIntent(input.IntentQuit)
	if !g.quit {
		t.Error("quit intent in play must set quit")
	}
}

func TestGameOverRestart(t *testing.T) {
	g := newTestGame(t)
	g.handleIntent(input.IntentConfirm)

	// Kill the snake directly, then drive the loop transition by hand the
	// way Run does.
	body, _ := g.session.World.Bodies.Get(g.session.Snake)
	body.Alive = false
	g.session.World.Bodies.Set(g.session.Snake, body)
	g.mode = ModeGameOver

	g.handleIntent(input.IntentConfirm)
	if g.mode != ModePlaying {
		t.Errorf("mode = %v, want playing", g.mode)
	}
	if !g.session.Alive() {
		t.Error("restart must revive the snake")
	}
	if g.session.Score != 0 {
		t.Errorf("score = %d, want 0 after restart", g.session.Score)
	}
}
