package views

// CompactWidth is the terminal width below which the compact layout is used
const CompactWidth = 80

// ViewportInfo describes the terminal the UI is drawn into
type ViewportInfo struct {
	Width   int
	Height  int
	Compact bool
}

// NewViewportInfo builds a ViewportInfo from a terminal size
func NewViewportInfo(width, height int) ViewportInfo {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return ViewportInfo{
		Width:   width,
		Height:  height,
		Compact: width < CompactWidth,
	}
}

// ContentHeight is the number of rows above the status bar
func (v ViewportInfo) ContentHeight() int {
	if v.Height <= 1 {
		return v.Height
	}
	return v.Height - 1
}

// HashPreviewLen is the number of hash runes shown on cards
func (v ViewportInfo) HashPreviewLen() int {
	if v.Compact {
		return 12
	}
	return 20
}
