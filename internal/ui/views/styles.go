package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	SearchBar   lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	Tags        lipgloss.Style
	PreviewBox  lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Tags:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
