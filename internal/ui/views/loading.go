package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blockfolio/internal/ui/services/loading"
)

// RenderLoading draws the boot screen
func (r *Renderer) RenderLoading(vp ViewportInfo, st loading.State) string {
	s := r.styles
	barW := 40
	if vp.Width-8 < barW {
		barW = vp.Width - 8
	}
	if barW < 10 {
		barW = 10
	}

	filled := barW * st.Progress / 100
	bar := s.Progress.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", barW-filled))

	hash := st.Hash
	if len(hash) > 20 {
		hash = hash[:20]
	}

	lines := []string{
		s.Title.Render("0xDeveloper"),
		s.Dim.Render("Initializing blockchain portfolio..."),
		"",
		bar,
		s.Hash.Render(fmt.Sprintf("Generating hash: %s...", hash)),
		"",
	}

	for _, step := range st.Steps {
		if step.Done {
			lines = append(lines, s.StatusSuccess.Render("● "+step.Name+" ✓"))
		} else {
			lines = append(lines, s.Dim.Render("○ "+step.Name))
		}
	}

	lines = append(lines, "", s.Title.Render(fmt.Sprintf("%d%%", st.Progress)))
	if st.VerifyErr != nil {
		lines = append(lines, s.StatusError.Render("integrity check failed"))
	}
	lines = append(lines, "", s.Help.Render("press any key to skip"))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(vp.Width, vp.Height, lipgloss.Center, lipgloss.Center, body)
}
