package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors used across the CLI.
const (
	ColorPrimary   = "#3776AB" // Python blue
	ColorSecondary = "#FFD43B" // Python yellow
	ColorSuccess   = "#2ECC71"
	ColorError     = "#E74C3C"
	ColorWarning   = "#F39C12"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#374151"
)

// ThemeColors groups the configurable color values.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Text      string
	Muted     string
	Border    string
}

// Theme holds rendering configuration for CLI output.
type Theme struct {
	NoColor bool
	Colors  ThemeColors

	success  lipgloss.Style
	errStyle lipgloss.Style
	warning  lipgloss.Style
	info     lipgloss.Style
	muted    lipgloss.Style
	heading  lipgloss.Style
}

// NewTheme creates a Theme, honoring the NO_COLOR convention.
func NewTheme() *Theme {
	t := &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: ThemeColors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Error:     ColorError,
			Warning:   ColorWarning,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
	}

	if !t.NoColor {
		t.success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
		t.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error))
		t.warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
		t.info = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary))
		t.muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
		t.heading = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Bold(true)
	}

	return t
}

// Success renders a success line with a leading check mark.
func (t *Theme) Success(format string, args ...any) string {
	return t.render(t.success, "✓ "+fmt.Sprintf(format, args...))
}

// Error renders an error line with a leading cross mark.
func (t *Theme) Error(format string, args ...any) string {
	return t.render(t.errStyle, "✗ "+fmt.Sprintf(format, args...))
}

// Warning renders a warning line.
func (t *Theme) Warning(format string, args ...any) string {
	return t.render(t.warning, "! "+fmt.Sprintf(format, args...))
}

// Info renders an informational line.
func (t *Theme) Info(format string, args ...any) string {
	return t.render(t.info, fmt.Sprintf(format, args...))
}

// Muted renders de-emphasized text.
func (t *Theme) Muted(format string, args ...any) string {
	return t.render(t.muted, fmt.Sprintf(format, args...))
}

// Heading renders a bold section heading.
func (t *Theme) Heading(format string, args ...any) string {
	return t.render(t.heading, fmt.Sprintf(format, args...))
}

func (t *Theme) render(style lipgloss.Style, s string) string {
	if t.NoColor {
		return s
	}
	return style.Render(s)
}
