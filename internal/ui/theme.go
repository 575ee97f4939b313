package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the player window.
var (
	colorBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	colorInput      = color.NRGBA{R: 0x2e, G: 0x2e, B: 0x3e, A: 0xff}
	colorPrimary    = color.NRGBA{R: 0x3e, G: 0x8e, B: 0xf7, A: 0xff}
	colorHover      = color.NRGBA{R: 0x6f, G: 0xa3, B: 0xef, A: 0xff}
	colorForeground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorError      = color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}
)

// PlayerTheme is the dark theme of the player window. It ignores the system
// light/dark variant.
type PlayerTheme struct{}

// NewPlayerTheme creates the player theme
func NewPlayerTheme() fyne.Theme {
	return &PlayerTheme{}
}

// Color returns theme colors
func (t *PlayerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return colorBackground
	case theme.ColorNameInputBackground:
		return colorInput
	case theme.ColorNameInputBorder, theme.ColorNameFocus:
		return colorHover
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return colorPrimary
	case theme.ColorNameHover:
		return colorHover
	case theme.ColorNameForeground, theme.ColorNameForegroundOnPrimary:
		return colorForeground
	case theme.ColorNameError:
		return colorError
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *PlayerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PlayerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *PlayerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameSubHeadingText:
		return 16 // section labels
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 5
	case theme.SizeNameInnerPadding:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
