package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lixenwraith/kobra/parameter"
)

// The settings file is a flat TOML table: one key = value pair per line,
// # comments, quoted strings for the difficulty label.

// DefaultPath is the settings file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "kobra.toml"
	}
	return filepath.Join(dir, "kobra", "kobra.toml")
}

// Load reads settings from path. A missing file returns the defaults;
// unknown keys fail so a typo does not silently fall back.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}

	for ln, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return s, fmt.Errorf("settings line %d: missing '='", ln+1)
		}
		if err := s.assign(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return s, fmt.Errorf("settings line %d: %w", ln+1, err)
		}
	}

	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("settings: %w", err)
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("# kobra settings\n")
	fmt.Fprintf(&b, "cells_per_side = %d\n", s.CellsPerSide)
	fmt.Fprintf(&b, "initial_speed = %s\n", formatFloat(s.InitialSpeed))
	fmt.Fprintf(&b, "max_speed = %s\n", formatFloat(s.MaxSpeed))
	fmt.Fprintf(&b, "apples = %d\n", s.Apples)
	fmt.Fprintf(&b, "difficulty = %q\n", s.Difficulty.String())
	fmt.Fprintf(&b, "lethal_walls = %t\n", s.LethalWalls)
	fmt.Fprintf(&b, "eat_sound = %t\n", s.EatSound)
	fmt.Fprintf(&b, "death_sound = %t\n", s.DeathSound)
	fmt.Fprintf(&b, "music = %t\n", s.Music)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Settings) assign(key, value string) error {
	switch key {
	case "cells_per_side":
		return parseInt(value, &s.CellsPerSide)
	case "initial_speed":
		return parseFloat(value, &s.InitialSpeed)
	case "max_speed":
		return parseFloat(value, &s.MaxSpeed)
	case "apples":
		return parseInt(value, &s.Apples)
	case "difficulty":
		label, err := unquote(value)
		if err != nil {
			return err
		}
		s.Difficulty = parameter.ParseDifficulty(label)
		return nil
	case "lethal_walls":
		return parseBool(value, &s.LethalWalls)
	case "eat_sound":
		return parseBool(value, &s.EatSound)
	case "death_sound":
		return parseBool(value, &s.DeathSound)
	case "music":
		return parseBool(value, &s.Music)
	}
	return fmt.Errorf("unknown key %q", key)
}

func parseInt(value string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected integer, got %q", value)
	}
	*dst = n
	return nil
}

func parseFloat(value string, dst *float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("expected float, got %q", value)
	}
	*dst = f
	return nil
}

func parseBool(value string, dst *bool) error {
	switch value {
	case "true":
		*dst = true
	case "false":
		*dst = false
	default:
		return fmt.Errorf("expected true or false, got %q", value)
	}
	return nil
}

func unquote(value string) (string, error) {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1], nil
	}
	return "", fmt.Errorf("expected quoted string, got %q", value)
}

// formatFloat keeps whole values readable while preserving TOML's
// requirement that floats carry a decimal point.
func formatFloat(f float64) string {
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}
