package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over a greyed-out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, vp ViewportInfo) string {
	popupW := lipgloss.Width(popup)
	popupH := lipgloss.Height(popup)
	x := (vp.Width - popupW) / 2
	y := (vp.Height - popupH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	c := newCanvas(vp.Width, vp.Height)
	c.place(0, 0, desaturate(mainContent))
	c.place(x, y, popup)
	return c.String()
}

// desaturate strips styling and recolors every line dim gray
func desaturate(s string) string {
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = grey.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
