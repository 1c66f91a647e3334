package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled rows that blocks can be stamped onto
type canvas struct {
	width int
	rows  []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, rows: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.rows {
		c.rows[i] = blank
	}
	return c
}

// place draws block with its top-left corner at (x, y), clipping at the edges
func (c *canvas) place(x, y int, block string) {
	for j, line := range strings.Split(block, "\n") {
		row := y + j
		if row < 0 || row >= len(c.rows) {
			continue
		}

		lineW := ansi.StringWidth(line)
		left := x
		if left < 0 {
			line = ansi.Cut(line, -left, lineW)
			lineW += left
			left = 0
		}
		if left >= c.width || lineW <= 0 {
			continue
		}
		if left+lineW > c.width {
			line = ansi.Truncate(line, c.width-left, "")
			lineW = c.width - left
		}

		cur := c.rows[row]
		c.rows[row] = ansi.Cut(cur, 0, left) + line + ansi.Cut(cur, left+lineW, c.width)
	}
}

// String joins the rows
func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}
