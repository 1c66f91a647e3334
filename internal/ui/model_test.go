package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockfolio/internal/config"
	"blockfolio/internal/domain"
	"blockfolio/internal/timeline"
	inputtypes "blockfolio/internal/ui/input/types"
	"blockfolio/internal/ui/services/schedule"
	"blockfolio/internal/ui/views"
)

// testEpoch is the model clock in tests; transitions start here
var testEpoch = time.Unix(1000, 0)

func newTestModel(t *testing.T, intro bool) *Model {
	t.Helper()
	tl, err := timeline.Default()
	require.NoError(t, err)

	m := NewModel(nil, config.DefaultConfig(), tl, intro)
	m.now = func() time.Time { return testEpoch }
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func wheelDown() tea.MouseMsg {
	return tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, false)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Block 1/9")
	assert.Contains(t, out, "Genesis Block")
	assert.Contains(t, out, "Press ? for help")
}

func TestKeyNavigationAnimatesOverFrames(t *testing.T) {
	m := newTestModel(t, false)

	_, cmd := m.Update(keyRunes("j"))
	require.NotNil(t, cmd, "a transition must schedule a frame")
	assert.True(t, m.nav.State().IsTransitioning)
	assert.Equal(t, 1, m.nav.State().TargetIndex)

	t0 := testEpoch
	m.Update(frameMsg(t0))
	assert.Equal(t, 0, m.nav.State().ActiveIndex)

	m.Update(frameMsg(t0.Add(400 * time.Millisecond)))
	assert.Equal(t, 1, m.nav.State().ActiveIndex, "active index commits at the midpoint")

	_, cmd = m.Update(frameMsg(t0.Add(800 * time.Millisecond)))
	st := m.nav.State()
	assert.False(t, st.IsTransitioning)
	assert.Equal(t, 1.0, st.CameraPosition)
	assert.Nil(t, cmd, "frames stop once settled")
	assert.Contains(t, ansi.Strip(m.View()), "Block 2/9")
}

func TestTransitionClockStartsAtAcceptance(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(keyRunes("j"))

	// The first frame arrives a full duration after the key press
	_, cmd := m.Update(frameMsg(testEpoch.Add(800 * time.Millisecond)))
	assert.False(t, m.nav.State().IsTransitioning)
	assert.Equal(t, 1, m.nav.State().ActiveIndex)
	assert.Nil(t, cmd)
	assert.False(t, m.framing)
}

func TestKeysDuringTransitionAreDropped(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(keyRunes("j"))
	m.Update(keyRunes("G"))
	assert.Equal(t, 1, m.nav.State().TargetIndex)
}

func TestDigitJumps(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(keyRunes("5"))
	assert.Equal(t, 4, m.nav.State().TargetIndex)
}

func TestWheelAccumulates(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(wheelDown())
	assert.False(t, m.nav.State().IsTransitioning)

	_, cmd := m.Update(wheelDown())
	assert.True(t, m.nav.State().IsTransitioning)
	assert.Equal(t, 1, m.nav.State().TargetIndex)
	assert.NotNil(t, cmd)
}

func TestDragSwipes(t *testing.T) {
	m := newTestModel(t, false)
	now := time.Unix(2000, 0)
	m.now = func() time.Time { return now }

	m.Update(press(10, 20))
	now = now.Add(100 * time.Millisecond)
	m.Update(release(10, 12))

	assert.True(t, m.nav.State().IsTransitioning)
	assert.Equal(t, 1, m.nav.State().TargetIndex)
}

func TestSlowDragIsIgnored(t *testing.T) {
	m := newTestModel(t, false)
	now := time.Unix(2000, 0)
	m.now = func() time.Time { return now }

	m.Update(press(10, 20))
	now = now.Add(500 * time.Millisecond)
	m.Update(release(10, 12))

	assert.False(t, m.nav.State().IsTransitioning)
}

func TestClickDotNavigates(t *testing.T) {
	m := newTestModel(t, false)
	layout := views.ComputeLayout(m.vp, m.blocks, 0)
	require.NotEmpty(t, layout.Dots)
	dot := layout.Dots[3]

	m.Update(press(dot.X, dot.Y))
	m.Update(release(dot.X, dot.Y))
	assert.Equal(t, 3, m.nav.State().TargetIndex)
}

func TestClickActiveCardOpensDetail(t *testing.T) {
	m := newTestModel(t, false)
	card := views.ComputeLayout(m.vp, m.blocks, 0).Cards[0]

	m.Update(press(card.X+2, card.Y+1))
	m.Update(release(card.X+2, card.Y+1))

	assert.True(t, m.state.DetailOpen)
	assert.Equal(t, inputtypes.ModeDetail, m.inputHandler.CurrentMode())

	// Clicking the backdrop closes it again
	m.Update(press(0, 0))
	assert.False(t, m.state.DetailOpen)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestDetailModalKeys(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.state.DetailOpen)
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Block #0")
	assert.Contains(t, out, "esc close")

	// j scrolls the modal, the timeline stays put
	m.Update(keyRunes("j"))
	assert.False(t, m.nav.State().IsTransitioning)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.DetailOpen)
	assert.NotContains(t, ansi.Strip(m.View()), "esc close")
}

func TestPagerWithoutProgramShowsError(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(keyRunes("o"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, pagerMsg{}, msg)

	m.Update(msg)
	assert.Equal(t, views.StatusError, m.state.StatusKind)
	assert.Contains(t, m.state.StatusMessage, "Could not open detail pager")
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(keyRunes("?"))
	assert.True(t, m.state.ShowHelp)
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "next block")

	m.Update(keyRunes("?"))
	assert.False(t, m.state.ShowHelp)
}

func TestSearchNavigatesToMatch(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(keyRunes("/"))
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	for _, r := range "solana" {
		m.Update(keyRunes(string(r)))
	}
	assert.Contains(t, ansi.Strip(m.View()), "/solana")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, 5, m.nav.State().TargetIndex)
	assert.Equal(t, `1 match for "solana"`, m.state.StatusMessage)
	assert.Equal(t, views.StatusSuccess, m.state.StatusKind)
}

func TestSearchCycleWaitsForTransition(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(keyRunes("/"))
	for _, r := range "evm" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.nav.State().IsTransitioning)
	require.Equal(t, 4, m.nav.State().TargetIndex)

	// n while the camera is still moving keeps the first match selected
	m.Update(keyRunes("n"))
	assert.Equal(t, 1, m.search.GetCurrentPosition())
	assert.Equal(t, `2 matches for "evm"`, m.state.StatusMessage)

	t0 := testEpoch
	m.Update(frameMsg(t0))
	m.Update(frameMsg(t0.Add(800 * time.Millisecond)))
	require.False(t, m.nav.State().IsTransitioning)

	m.Update(keyRunes("n"))
	assert.Equal(t, 2, m.search.GetCurrentPosition())
	assert.Equal(t, 5, m.nav.State().TargetIndex)
	assert.Equal(t, "Match 2 of 2", m.state.StatusMessage)
}

func TestSearchWithoutMatches(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(keyRunes("/"))
	for _, r := range "zzzzzz" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.nav.State().IsTransitioning)
	assert.Equal(t, views.StatusError, m.state.StatusKind)
}

func TestToastExpiresOnlyForCurrentHandle(t *testing.T) {
	m := newTestModel(t, false)
	m.toast("first", views.StatusInfo)
	stale := schedule.FiredMsg{Handle: m.state.Toast(), Purpose: schedule.PurposeToast}
	m.toast("second", views.StatusInfo)

	m.Update(stale)
	assert.Equal(t, "second", m.state.StatusMessage)

	current := schedule.FiredMsg{Handle: m.state.Toast(), Purpose: schedule.PurposeToast}
	m.Update(current)
	assert.Empty(t, m.state.StatusMessage)
}

func TestLoadingScreenCompletes(t *testing.T) {
	m := newTestModel(t, true)
	assert.Equal(t, views.ScreenLoading, m.state.Screen)
	assert.Contains(t, ansi.Strip(m.View()), "0xDeveloper")

	var cmd tea.Cmd
	for i := 0; i < 50; i++ {
		_, cmd = m.Update(loadingTickMsg(time.Now()))
	}
	require.NotNil(t, cmd)
	assert.True(t, m.loader.Complete())
	assert.True(t, m.loader.Verified())
	assert.Equal(t, views.ScreenLoading, m.state.Screen)

	m.Update(schedule.FiredMsg{Handle: m.loadingHandle, Purpose: schedule.PurposeLoading})
	assert.Equal(t, views.ScreenTimeline, m.state.Screen)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestAnyKeySkipsIntro(t *testing.T) {
	m := newTestModel(t, true)

	m.Update(keyRunes("x"))
	assert.Equal(t, views.ScreenTimeline, m.state.Screen)
	assert.True(t, m.loader.Verified())
	assert.False(t, m.nav.State().IsTransitioning, "the skipping key does not navigate")
}

func TestBrokenChainIsReported(t *testing.T) {
	tl, err := timeline.New([]domain.Block{
		{ID: "a", Number: 0, Hash: "0xbad"},
		{ID: "b", Number: 1},
	})
	require.NoError(t, err)

	m := NewModel(nil, nil, tl, false)
	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.Equal(t, views.StatusError, m.state.StatusKind)
	assert.Contains(t, m.state.StatusMessage, "Integrity check failed")
}

func TestQuitCancelsTimers(t *testing.T) {
	m := newTestModel(t, false)
	m.toast("pending", views.StatusInfo)
	require.Equal(t, 1, m.scheduler.Pending())

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, m.scheduler.Pending())
}

func TestMouseDisabled(t *testing.T) {
	m := newTestModel(t, false)
	m.config.UISettings.Mouse = false

	m.Update(wheelDown())
	m.Update(wheelDown())
	assert.False(t, m.nav.State().IsTransitioning)
}
