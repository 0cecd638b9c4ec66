// Package color provides a curated palette of terminal colors.
package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Hex initializes a lipgloss.Color from a hex triplet, accepting values with or without the leading "#".
// Document color values are stored bare, so this is the bridge between them and terminal rendering.
func Hex(value string) lipgloss.Color {
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	return New(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
	HiBlack  = New("16")
)

// Hex-defined accent and semantic colors.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
