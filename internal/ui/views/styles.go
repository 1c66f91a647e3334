package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
const (
	colorPrimary   = lipgloss.Color("51")  // cyan
	colorSecondary = lipgloss.Color("171") // magenta
	colorAccent    = lipgloss.Color("78")  // green
	colorMuted     = lipgloss.Color("241")
	colorFaint     = lipgloss.Color("238")
	colorText      = lipgloss.Color("252")
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Highlight     lipgloss.Style
	CardActive    lipgloss.Style
	CardPrevious  lipgloss.Style
	CardNext      lipgloss.Style
	CardLabel     lipgloss.Style
	CardTitle     lipgloss.Style
	CardSubtitle  lipgloss.Style
	Hash          lipgloss.Style
	Match         lipgloss.Style
	ConnectorOn   lipgloss.Style
	ConnectorOff  lipgloss.Style
	DotActive     lipgloss.Style
	DotIdle       lipgloss.Style
	InfoBox       lipgloss.Style
	Modal         lipgloss.Style
	Section       lipgloss.Style
	Tag           lipgloss.Style
	Code          lipgloss.Style
	LinkMarker    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	Progress      lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CardActive: card.
			BorderForeground(colorPrimary),
		CardPrevious: card.
			BorderForeground(colorMuted),
		CardNext: card.
			BorderForeground(colorFaint),
		CardLabel:    lipgloss.NewStyle().Foreground(colorSecondary),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(colorText),
		CardSubtitle: lipgloss.NewStyle().Foreground(colorPrimary),
		Hash:         lipgloss.NewStyle().Foreground(colorMuted),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		ConnectorOn:  lipgloss.NewStyle().Foreground(colorPrimary),
		ConnectorOff: lipgloss.NewStyle().Foreground(colorFaint),
		DotActive:    lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		DotIdle:      lipgloss.NewStyle().Foreground(colorMuted),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 1),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Tag:           lipgloss.NewStyle().Foreground(colorAccent),
		Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		LinkMarker:    lipgloss.NewStyle().Foreground(colorSecondary),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(colorAccent),
		StatusInfo:    lipgloss.NewStyle().Foreground(colorMuted),
		Progress:      lipgloss.NewStyle().Foreground(colorPrimary),
		ProgressEmpty: lipgloss.NewStyle().Foreground(colorFaint),
	}
}
