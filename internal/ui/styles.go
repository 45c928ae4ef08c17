package ui

import "github.com/charmbracelet/lipgloss"

// Status labels rendered by Badge.
const (
	StatusOK       = "OK"
	StatusDiverges = "DIVERGES"
	StatusFailed   = "FAILED"
)

// Heading renders a bold section title in the theme accent color.
func Heading(text string) string {
	t := GetCurrentTheme()
	if t.Name == NoColorTheme.Name {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(text)
}

// Badge renders a status label. OK is drawn in the success color, every
// other label in the error color. Labels are padded to a fixed width so that
// table columns stay aligned.
func Badge(status string) string {
	t := GetCurrentTheme()
	style := lipgloss.NewStyle().Width(len(StatusDiverges))
	if t.Name == NoColorTheme.Name {
		return style.Render(status)
	}
	color := t.Bad
	if status == StatusOK {
		color = t.Good
	}
	return style.Bold(true).Foreground(color).Render(status)
}
