package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme is the application's fixed dark palette with rounded inputs
type DarkTheme struct{}

// NewDarkTheme creates the application theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors regardless of the system variant
func (t *DarkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xff}
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameButton:
		return color.RGBA{R: 0x5f, G: 0x5f, B: 0x5f, A: 0xff}
	case theme.ColorNameHover:
		return color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff}
	case theme.ColorNameInputBorder:
		return color.RGBA{R: 0x68, G: 0x68, B: 0x68, A: 0xff}
	case theme.ColorNameSelection:
		return color.RGBA{R: 0x6e, G: 0x6e, B: 0x6e, A: 0xff}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 10
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInputBorder:
		return 1
	}

	return theme.DefaultTheme().Size(name)
}
