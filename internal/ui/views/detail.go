package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"blockfolio/internal/domain"
)

// DetailHashLen is the hash prefix shown in the detail view and info panel
const DetailHashLen = 16

// ModalSize returns the outer size of the detail modal for a viewport
func ModalSize(vp ViewportInfo) (width, height int) {
	width = vp.Width - 4
	if width > 90 {
		width = 90
	}
	height = vp.Height - 2
	if width < 10 {
		width = vp.Width
	}
	if height < 6 {
		height = vp.Height
	}
	return width, height
}

// ModalBodySize returns the size of the scrollable area inside the modal
func ModalBodySize(vp ViewportInfo) (width, height int) {
	w, h := ModalSize(vp)
	width = w - 4  // border and padding
	height = h - 4 // border, title and footer
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// FormatThousands renders n with comma separators
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// LinkMarker returns the short tag shown before a link
func LinkMarker(t domain.LinkType) string {
	switch t {
	case domain.LinkGitHub:
		return "[gh]"
	case domain.LinkDemo:
		return "[demo]"
	case domain.LinkLinkedIn:
		return "[in]"
	case domain.LinkEmail:
		return "[@]"
	default:
		return "[www]"
	}
}

// DetailContent renders the full content of a block wrapped to width
func (r *Renderer) DetailContent(b domain.Block, width int) string {
	s := r.styles
	if width < 10 {
		width = 10
	}
	wrap := func(text string) string {
		return wordwrap.String(text, width)
	}

	var out strings.Builder
	section := func(name string) {
		out.WriteString("\n")
		out.WriteString(s.Section.Render(name))
		out.WriteString("\n")
	}

	out.WriteString(s.CardSubtitle.Render(b.Subtitle))
	out.WriteString("\n\n")
	out.WriteString(fmt.Sprintf("%s %s\n", s.Dim.Render("Timestamp:"), b.Timestamp.Format("2006-01-02 15:04 MST")))
	out.WriteString(fmt.Sprintf("%s %s\n", s.Dim.Render("Hash:     "), s.Hash.Render(b.HashPreview(DetailHashLen))))
	out.WriteString(fmt.Sprintf("%s %s\n", s.Dim.Render("Nonce:    "), FormatThousands(b.Nonce)))

	if b.Details.Content != "" {
		section("Overview")
		out.WriteString(wrap(b.Details.Content))
		out.WriteString("\n")
	}

	if len(b.Details.Technologies) > 0 {
		section("Technologies")
		tags := make([]string, len(b.Details.Technologies))
		for i, t := range b.Details.Technologies {
			tags[i] = "#" + strings.ReplaceAll(t, " ", "_")
		}
		out.WriteString(s.Tag.Render(wrap(strings.Join(tags, " "))))
		out.WriteString("\n")
	}

	if len(b.Details.Achievements) > 0 {
		section("Achievements")
		for _, a := range b.Details.Achievements {
			item := wordwrap.String(a, width-2)
			out.WriteString("• " + strings.ReplaceAll(item, "\n", "\n  "))
			out.WriteString("\n")
		}
	}

	if b.Details.CodeSnippet != "" {
		section("Code")
		for _, line := range strings.Split(b.Details.CodeSnippet, "\n") {
			out.WriteString(s.Code.Render(truncate.StringWithTail(line, uint(width), "…")))
			out.WriteString("\n")
		}
	}

	if len(b.Details.Links) > 0 {
		section("Links")
		for _, l := range b.Details.Links {
			out.WriteString(fmt.Sprintf("%s %s %s\n", s.LinkMarker.Render(LinkMarker(l.Type)), l.Label, s.Dim.Render(l.URL)))
		}
	}

	return strings.TrimRight(out.String(), "\n")
}

// RenderModal frames the scrolled detail body with a title and footer
func (r *Renderer) RenderModal(vp ViewportInfo, b domain.Block, body string, scrollPercent float64) string {
	w, _ := ModalSize(vp)
	inner := w - 4

	title := r.styles.Title.Render(fmt.Sprintf("Block #%d  %s", b.Number, b.Title))
	footer := r.styles.Help.Render(fmt.Sprintf("esc close • o pager • ↑/↓ scroll • %3.0f%%", scrollPercent*100))

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
	return r.styles.Modal.Width(inner + 2).Render(content)
}
