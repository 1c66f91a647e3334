package views

import (
	"math"

	"blockfolio/internal/domain"
)

// Card geometry in terminal cells
const (
	cardContentLines        = 6
	compactCardContentLines = 5
	cardGap                 = 3 // rows between cards, filled by the connector
	maxCardWidth            = 64
	maxCompactCardWidth     = 48
	minCardWidth            = 20
	positionScale           = 300.0 // scene units that map to the full horizontal shift
	farDistance             = 2.0
)

// CardLayout is where one block's card is drawn
type CardLayout struct {
	Index  int
	X, Y   int
	Width  int
	Height int
	Offset float64 // index - camera
	Faint  bool
}

// Visible reports whether any row of the card lands in the content area
func (c CardLayout) Visible(contentHeight int) bool {
	return c.Y+c.Height > 0 && c.Y < contentHeight
}

// Contains reports whether cell (x, y) is inside the card
func (c CardLayout) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// DotLayout is one navigation indicator cell
type DotLayout struct {
	Index int
	X, Y  int
}

// Layout places every element of the timeline screen
type Layout struct {
	Cards   []CardLayout
	Dots    []DotLayout
	Spacing int
}

// CardHeight returns the rendered card height including borders
func CardHeight(vp ViewportInfo) int {
	if vp.Compact {
		return compactCardContentLines + 2
	}
	return cardContentLines + 2
}

// BaseCardWidth returns the width of the focused card
func BaseCardWidth(vp ViewportInfo) int {
	w := vp.Width * 6 / 10
	limit := maxCardWidth
	if vp.Compact {
		w = vp.Width - 4
		limit = maxCompactCardWidth
	}
	if w > limit {
		w = limit
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	if w > vp.Width {
		w = vp.Width
	}
	return w
}

// ComputeLayout positions cards relative to the camera. Card i is drawn
// (i - camera) * spacing rows away from the vertical center.
func ComputeLayout(vp ViewportInfo, blocks []domain.Block, camera float64) Layout {
	h := CardHeight(vp)
	spacing := h + cardGap
	contentH := vp.ContentHeight()
	centerY := (contentH - h) / 2
	base := BaseCardWidth(vp)
	maxShift := float64(vp.Width) / 10

	layout := Layout{
		Cards:   make([]CardLayout, len(blocks)),
		Spacing: spacing,
	}

	for i, b := range blocks {
		off := float64(i) - camera
		near := math.Min(math.Abs(off), 1)

		w := int(math.Round(float64(base) * (1 - 0.2*near)))
		if w < minCardWidth && base >= minCardWidth {
			w = minCardWidth
		}

		shift := clampF(b.Position.X/positionScale, -1, 1) * maxShift * near
		x := (vp.Width-w)/2 + int(math.Round(shift))
		x = clampI(x, 0, max(vp.Width-w, 0))

		layout.Cards[i] = CardLayout{
			Index:  i,
			X:      x,
			Y:      centerY + int(math.Round(off*float64(spacing))),
			Width:  w,
			Height: h,
			Offset: off,
			Faint:  math.Abs(off) > farDistance,
		}
	}

	// Dots run down the right edge when there is room for them
	if len(blocks)+1 < contentH && vp.Width > 4 {
		layout.Dots = make([]DotLayout, len(blocks))
		for i := range blocks {
			layout.Dots[i] = DotLayout{Index: i, X: vp.Width - 2, Y: 1 + i}
		}
	}

	return layout
}

// HitKind identifies what a click landed on
type HitKind int

const (
	HitNone HitKind = iota
	HitDot
	HitCard
)

// Hit is the result of a hit test
type Hit struct {
	Kind  HitKind
	Index int
}

// HitTest maps a terminal cell onto a dot or card. Dots win over cards and
// the card nearest to focus wins when cards overlap.
func (l Layout) HitTest(x, y int) Hit {
	for _, d := range l.Dots {
		if y == d.Y && x >= d.X-1 && x <= d.X+1 {
			return Hit{Kind: HitDot, Index: d.Index}
		}
	}

	best := Hit{Kind: HitNone, Index: -1}
	bestDist := math.Inf(1)
	for _, c := range l.Cards {
		if c.Contains(x, y) && math.Abs(c.Offset) < bestDist {
			best = Hit{Kind: HitCard, Index: c.Index}
			bestDist = math.Abs(c.Offset)
		}
	}
	return best
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
