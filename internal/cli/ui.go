package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the text renderer and the interactive browser.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary accents
	colorGreen  = lipgloss.Color("35")  // Green - release status
	colorYellow = lipgloss.Color("220") // Amber - integration status
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// styles bundles the lipgloss styles used for descriptor rendering. With
// color disabled every style is a zero style, so the same rendering code
// produces plain text.
type styles struct {
	Title       lipgloss.Style
	Release     lipgloss.Style
	Integration lipgloss.Style
	Conf        lipgloss.Style
	Value       lipgloss.Style
	Dim         lipgloss.Style
	Selected    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		return styles{}
	}
	return styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Release:     lipgloss.NewStyle().Foreground(colorGreen),
		Integration: lipgloss.NewStyle().Foreground(colorYellow),
		Conf:        lipgloss.NewStyle().Foreground(colorGray),
		Value:       lipgloss.NewStyle().Foreground(colorWhite),
		Dim:         lipgloss.NewStyle().Foreground(colorDim),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
	}
}

// statusStyle picks the style for a module status.
func (s styles) statusStyle(status string) lipgloss.Style {
	if status == "release" {
		return s.Release
	}
	return s.Integration
}
