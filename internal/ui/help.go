package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"blockfolio/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// renderOverlay renders the key table shown by "?"
func (r *HelpRenderer) renderOverlay(h help.Model) string {
	h.ShowAll = true
	return h.View(r.keys)
}

// renderHelpContent renders the full help shown in the pager
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	line := func(k, desc string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(k), descStyle.Render(desc)))
	}

	b.WriteString(titleStyle.Render("Blockfolio Help"))
	b.WriteString("\n")

	sections := []string{"Navigation", "Block Details", "Search", "Other"}
	for i, group := range r.keys.FullHelp() {
		b.WriteString(sectionStyle.Render(sections[i]))
		b.WriteString("\n")
		for _, kb := range group {
			hb := kb.Help()
			line(hb.Key, hb.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Mouse"))
	b.WriteString("\n")
	line("wheel", "Scroll through blocks (or the open detail view)")
	line("drag", "Swipe up/down for next/previous block")
	line("click dot", "Jump to that block")
	line("click card", "Focus a block; click the focused card to open it")

	filterStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(filterStyle.Render("  Search matches titles, subtitles and technologies, with typo tolerance."))
	b.WriteString("\n")

	return b.String()
}
