package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blockfolio/internal/domain"
	"blockfolio/internal/ui/services/loading"
	"blockfolio/internal/ui/services/navigation"
)

// Screen selects which top-level view is drawn
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenTimeline
)

// StatusKind colors the status bar message
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// DetailView is the detail modal content for the active block
type DetailView struct {
	Block         domain.Block
	Body          string // rendered viewport
	ScrollPercent float64
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Viewport      ViewportInfo
	Screen        Screen
	Blocks        []domain.Block
	Nav           navigation.State
	Loading       loading.State
	Detail        *DetailView
	ShowHelp      bool
	HelpContent   string
	SearchActive  bool
	SearchInput   string
	SearchSummary string
	Matches       map[int]bool
	StatusMessage string
	StatusKind    StatusKind
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	vp := state.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return ""
	}

	if state.Screen == ScreenLoading {
		return r.RenderLoading(vp, state.Loading)
	}

	if len(state.Blocks) == 0 {
		return lipgloss.Place(vp.Width, vp.Height, lipgloss.Center, lipgloss.Center,
			r.styles.Dim.Render("No blocks in timeline."))
	}

	main := r.renderTimeline(state)

	if state.Detail != nil {
		modal := r.RenderModal(vp, state.Detail.Block, state.Detail.Body, state.Detail.ScrollPercent)
		return r.popupRender.RenderPopupOverlay(main, modal, vp)
	}

	if state.ShowHelp && state.HelpContent != "" {
		box := r.styles.InfoBox.Render(r.styles.Title.Render("Help") + "\n\n" + state.HelpContent)
		return r.popupRender.RenderPopupOverlay(main, box, vp)
	}

	return main
}

func (r *Renderer) renderTimeline(state ViewState) string {
	vp := state.Viewport
	contentH := vp.ContentHeight()
	layout := ComputeLayout(vp, state.Blocks, state.Nav.CameraPosition)
	active := state.Nav.ActiveIndex

	c := newCanvas(vp.Width, vp.Height)

	// Connectors sit in the gap below each card
	for i := 0; i < len(layout.Cards)-1; i++ {
		from, to := layout.Cards[i], layout.Cards[i+1]
		top := from.Y + from.Height
		rows := to.Y - top
		if rows <= 0 || top >= contentH || to.Y <= 0 {
			continue
		}
		x := (from.X + from.Width/2 + to.X + to.Width/2) / 2
		c.place(x, top, r.cardRender.RenderConnector(rows, active >= i))
	}

	for _, cl := range layout.Cards {
		if !cl.Visible(contentH) {
			continue
		}
		b := state.Blocks[cl.Index]
		card := r.cardRender.RenderCard(b, cl, RoleFor(cl.Index, active), vp, state.Matches[cl.Index])
		c.place(cl.X, cl.Y, clipRows(card, cl.Y, contentH))
	}

	if !vp.Compact && contentH >= 16 {
		c.place(1, contentH-5, r.renderInfoPanel(state.Blocks[active]))
	}

	focus := state.Nav.FocusIndex()
	for _, d := range layout.Dots {
		dot := r.styles.DotIdle.Render("○")
		if d.Index == focus {
			dot = r.styles.DotActive.Render("●")
		}
		c.place(d.X, d.Y, dot)
	}

	c.place(0, vp.Height-1, r.renderStatusBar(state))
	return c.String()
}

// clipRows drops the card rows that would run into the status bar
func clipRows(block string, y, limit int) string {
	lines := strings.Split(block, "\n")
	if keep := limit - y; keep < len(lines) && keep >= 0 {
		lines = lines[:keep]
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderInfoPanel(b domain.Block) string {
	lines := []string{
		r.styles.CardLabel.Render(fmt.Sprintf("Block #%d", b.Number)),
		r.styles.CardTitle.Render(b.Title),
		r.styles.Hash.Render("Hash: " + b.HashPreview(DetailHashLen)),
	}
	return r.styles.InfoBox.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	vp := state.Viewport

	var left string
	switch {
	case state.SearchActive:
		left = state.SearchInput
	case state.StatusMessage != "":
		style := r.styles.StatusInfo
		switch state.StatusKind {
		case StatusError:
			style = r.styles.StatusError
		case StatusSuccess:
			style = r.styles.StatusSuccess
		}
		left = style.Render(state.StatusMessage)
	default:
		left = r.styles.Help.Render("Press ? for help")
	}

	right := fmt.Sprintf("Block %d/%d", state.Nav.ActiveIndex+1, len(state.Blocks))
	if state.SearchSummary != "" {
		right = r.styles.Match.Render(state.SearchSummary) + "  " + right
	}
	right = r.styles.Dim.Render(right)

	gap := vp.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
