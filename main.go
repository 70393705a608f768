package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kobra/audio"
	"github.com/lixenwraith/kobra/config"
	"github.com/lixenwraith/kobra/game"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	defer screen.Fini()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs silent without a speaker
		log.Printf("Audio initialization failed: %v", err)
		sound = nil
	}
	if sound != nil {
		defer sound.Cleanup()
	}

	g, err := game.New(screen, sound, config.DefaultPath())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	if err := g.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}
