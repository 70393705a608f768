package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the arena
var (
	RgbBackground = tcell.NewRGBColor(18, 18, 24)    // Near-black blue
	RgbBorder     = tcell.NewRGBColor(110, 110, 130) // Muted gray

	RgbHeadAlive = tcell.NewRGBColor(80, 255, 80)   // Bright green
	RgbHeadDead  = tcell.NewRGBColor(255, 60, 60)   // Crash red
	RgbTail      = tcell.NewRGBColor(0, 170, 0)     // Darker green
	RgbApple     = tcell.NewRGBColor(255, 80, 80)   // Apple red
	RgbGrape     = tcell.NewRGBColor(190, 110, 255) // Purple
	RgbObstacle  = tcell.NewRGBColor(140, 120, 100) // Stone brown

	RgbScore     = tcell.NewRGBColor(255, 255, 120) // Pale yellow
	RgbStatus    = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbTitle     = tcell.NewRGBColor(255, 255, 255) // White
	RgbMenuFocus = tcell.NewRGBColor(255, 165, 0)   // Orange
)

var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground)
	StyleBorder     = StyleBackground.Foreground(RgbBorder)
	StyleHeadAlive  = StyleBackground.Foreground(RgbHeadAlive)
	StyleHeadDead   = StyleBackground.Foreground(RgbHeadDead)
	StyleTail       = StyleBackground.Foreground(RgbTail)
	StyleApple      = StyleBackground.Foreground(RgbApple)
	StyleGrape      = StyleBackground.Foreground(RgbGrape)
	StyleObstacle   = StyleBackground.Foreground(RgbObstacle)
	StyleScore      = StyleBackground.Foreground(RgbScore).Bold(true)
	StyleStatus     = StyleBackground.Foreground(RgbStatus)
	StyleTitle      = StyleBackground.Foreground(RgbTitle).Bold(true)
	StyleMenuFocus  = StyleBackground.Foreground(RgbMenuFocus).Bold(true)
)
