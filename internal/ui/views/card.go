package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"blockfolio/internal/domain"
)

// CardRenderer draws timeline cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// CardRole describes a card relative to the active block
type CardRole int

const (
	RoleActive CardRole = iota
	RolePrevious
	RoleNext
)

// RoleFor returns the role of card index given the active index
func RoleFor(index, active int) CardRole {
	switch {
	case index == active:
		return RoleActive
	case index < active:
		return RolePrevious
	default:
		return RoleNext
	}
}

// RenderCard renders one block into a card of the given layout size
func (r *CardRenderer) RenderCard(b domain.Block, cl CardLayout, role CardRole, vp ViewportInfo, matched bool) string {
	inner := cl.Width - 4
	if inner < 1 {
		inner = 1
	}
	fit := func(s string) string {
		return truncate.StringWithTail(s, uint(inner), "…")
	}

	label := fmt.Sprintf("Block #%d", b.Number)
	if role == RoleActive {
		label = "▶ " + label
	}
	date := b.Timestamp.Format("2006-01-02")
	header := r.styles.CardLabel.Render(label)
	if gap := inner - lipgloss.Width(label) - len(date); gap >= 1 {
		header += strings.Repeat(" ", gap) + r.styles.Dim.Render(date)
	}

	title := b.Title
	if matched {
		title = "◆ " + title
	}
	titleStyle := r.styles.CardTitle
	if matched {
		titleStyle = r.styles.Match.Bold(true)
	}

	descLines := 2
	if vp.Compact {
		descLines = 1
	}

	lines := []string{
		header,
		titleStyle.Render(fit(title)),
		r.styles.CardSubtitle.Render(fit(b.Subtitle)),
	}
	lines = append(lines, clampLines(b.Description, inner, descLines)...)
	lines = append(lines, r.styles.Hash.Render(fit("Hash: "+b.HashPreview(vp.HashPreviewLen()))))

	style := r.styles.CardNext
	switch role {
	case RoleActive:
		style = r.styles.CardActive
	case RolePrevious:
		style = r.styles.CardPrevious
	}
	if cl.Faint {
		style = style.Faint(true)
	}

	return style.Width(cl.Width - 2).Render(strings.Join(lines, "\n"))
}

// clampLines wraps text to width and keeps exactly n lines
func clampLines(text string, width, n int) []string {
	wrapped := strings.Split(wordwrap.String(text, width), "\n")
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(wrapped) {
			out[i] = truncate.StringWithTail(wrapped[i], uint(width), "…")
		}
	}
	if len(wrapped) > n && n > 0 {
		last := out[n-1]
		if lipgloss.Width(last) >= width {
			last = truncate.String(last, uint(width-1))
		}
		out[n-1] = last + "…"
	}
	return out
}

// RenderConnector draws the vertical link between two cards
func (r *CardRenderer) RenderConnector(rows int, active bool) string {
	if rows <= 0 {
		return ""
	}
	style := r.styles.ConnectorOff
	glyph := "┊"
	if active {
		style = r.styles.ConnectorOn
		glyph = "┃"
	}
	parts := make([]string, rows)
	for i := range parts {
		parts[i] = style.Render(glyph)
	}
	return strings.Join(parts, "\n")
}
