// Package styles provides shared lipgloss styles for CLI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// IDStyle styles generated IDs in interactive output.
var IDStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Bold(true)

// HintStyle styles secondary hints below generated output.
var HintStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// FormTheme returns the huh theme used for interactive forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorGreen)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorBlue)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorYellow)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorGray)

	return t
}
