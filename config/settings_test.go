package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/kobra/parameter"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"cells too small", func(s *Settings) { s.CellsPerSide = 5 }},
		{"cells too large", func(s *Settings) { s.CellsPerSide = 200 }},
		{"initial speed zero", func(s *Settings) { s.InitialSpeed = 0 }},
		{"max speed below initial", func(s *Settings) { s.InitialSpeed = 10; s.MaxSpeed = 5 }},
		{"no apples", func(s *Settings) { s.Apples = 0 }},
		{"too many apples", func(s *Settings) { s.Apples = 500 }},
	}
	for _, tc := range tests {
		s := Default()
		tc.mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kobra.toml")
	want := Settings{
		CellsPerSide: 40,
		InitialSpeed: 6.5,
		MaxSpeed:     25,
		Apples:       7,
		Difficulty:   parameter.DifficultyHard,
		LethalWalls:  false,
		EatSound:     true,
		DeathSound:   false,
		Music:        true,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Default() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kobra.toml")
	if err := os.WriteFile(path, []byte("speling = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("got %v, want unknown key error", err)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kobra.toml")
	if err := os.WriteFile(path, []byte("cells_per_side = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected range error for 2 cells per side")
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kobra.toml")
	content := "# comment\n\napples = 9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Apples != 9 {
		t.Errorf("apples = %d, want 9", got.Apples)
	}
}

func TestNeedsReset(t *testing.T) {
	base := Default()

	changed := base
	changed.CellsPerSide++
	if !changed.NeedsReset(base) {
		t.Error("grid change must force a reset")
	}

	changed = base
	changed.Music = !base.Music
	if changed.NeedsReset(base) {
		t.Error("music toggle must not force a reset")
	}

	changed = base
	changed.MaxSpeed += 5
	if changed.NeedsReset(base) {
		t.Error("max speed applies live, no reset")
	}
}
