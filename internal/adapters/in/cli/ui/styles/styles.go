// Package styles holds the lipgloss styles of the forcedeck CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors.
var (
	ColorPrimary   = lipgloss.Color("#00a1e0")
	ColorSuccess   = lipgloss.Color("#2e844a")
	ColorWarning   = lipgloss.Color("#dd7a01")
	ColorError     = lipgloss.Color("#ea001e")
	ColorText      = lipgloss.Color("#e5e5e5")
	ColorTextMuted = lipgloss.Color("#737373")
	ColorBorder    = lipgloss.Color("#404040")
)

// Status glyphs. Plain Unicode so they render without a Nerd Font.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "•"
)

// Theme contains the composed styles.
var Theme = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Muted:   lipgloss.NewStyle().Foreground(ColorTextMuted),
	Bold:    lipgloss.NewStyle().Bold(true).Foreground(ColorText),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1),
	Border:  lipgloss.NewStyle().Foreground(ColorBorder),
}

// RenderSuccess renders a success line with its icon.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderError renders an error line with its icon.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderWarning renders a warning line with its icon.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo renders an info line with its icon.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}
