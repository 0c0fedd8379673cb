// Package ui renders user-facing console output: styled lines and cards,
// stage progress, and markdown tables. Every component degrades to plain
// text when no terminal is attached.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors, as hex strings for the dark background variant.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Palette holds the hex colors used by progress gradients.
type Palette struct {
	Primary   string
	Secondary string
}

// Theme carries the styles shared by every ui component.
type Theme struct {
	NoColor bool
	Colors  Palette

	Primary lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Border  lipgloss.Style
}

// NewTheme builds the default theme. With noColor every style renders its
// input unchanged.
func NewTheme(noColor bool) *Theme {
	t := &Theme{
		NoColor: noColor,
		Colors:  Palette{Primary: ColorPrimary, Secondary: ColorSecondary},
	}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Primary, t.Success, t.Warn, t.Error, t.Muted, t.Border = plain, plain, plain, plain, plain, plain
		return t
	}
	t.Primary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary})
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess})
	t.Warn = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: ColorWarning})
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError})
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ColorMuted})
	t.Border = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder})
	return t
}

func (t *Theme) cardStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border.GetForeground()).
		Padding(0, 2)
}

// SuccessCard renders a check-marked title followed by detail lines.
func (t *Theme) SuccessCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(t.Success.Render("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}

// InfoCard renders a bold title above content.
func (t *Theme) InfoCard(title, content string) string {
	return t.cardStyle().Render(t.Primary.Bold(true).Render(title) + "\n\n" + content)
}
