package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/config"
	"blockfolio/internal/domain"
	"blockfolio/internal/eventbus"
	"blockfolio/internal/timeline"
	"blockfolio/internal/ui/input"
	inputtypes "blockfolio/internal/ui/input/types"
	"blockfolio/internal/ui/services/loading"
	"blockfolio/internal/ui/services/navigation"
	"blockfolio/internal/ui/services/schedule"
	"blockfolio/internal/ui/services/search"
	"blockfolio/internal/ui/state"
	"blockfolio/internal/ui/viewmodels"
	"blockfolio/internal/ui/views"
)

const (
	detailFallbackWidth = 60 // wrap width before the first WindowSizeMsg
	pagerWidth          = 80
)

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	timeline *timeline.Timeline
	blocks   []domain.Block
	state    *state.AppState

	// Services
	nav       *navigation.Controller
	search    *search.Service
	loader    *loading.Service
	scheduler *schedule.Scheduler

	// Rendering
	vp         views.ViewportInfo
	renderer   *views.Renderer
	viewModel  *viewmodels.ViewModel
	help       help.Model
	helpRender *HelpRenderer
	detail     viewport.Model

	inputHandler *input.Handler
	pager        *Pager

	framing        bool // a frame tick is in flight
	loadingHandle  schedule.Handle
	verifyReported bool
	now            func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over tl. With intro set the loading
// screen runs first.
func NewModel(bus eventbus.EventBus, cfg *config.Config, tl *timeline.Timeline, intro bool) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	blocks := tl.Blocks()
	appState := state.NewAppState(intro)

	hashes := make([]string, len(blocks))
	for i, b := range blocks {
		hashes[i] = b.Hash
	}

	opts := navigation.Options{
		WheelThreshold:     cfg.Navigation.WheelThreshold,
		SwipeThreshold:     cfg.Navigation.SwipeThreshold,
		MaxSwipeTime:       cfg.Navigation.MaxSwipeTime(),
		TransitionDuration: cfg.Navigation.TransitionDuration(),
	}

	startMode := inputtypes.ModeNormal
	if intro {
		startMode = inputtypes.ModeLoading
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		timeline:     tl,
		blocks:       blocks,
		state:        appState,
		nav:          navigation.NewController(len(blocks), opts, bus),
		search:       search.NewService(blocks, bus),
		loader:       loading.NewService(hashes, tl.Verify),
		scheduler:    schedule.NewScheduler(),
		renderer:     views.NewRenderer(),
		help:         help.New(),
		inputHandler: input.New(startMode),
		pager:        NewPager(),
		now:          time.Now,
	}
	m.helpRender = NewHelpRenderer(m.inputHandler.Keys())
	m.search.SetNavigateFunction(m.navigateToMatch)

	m.detail = viewport.New(0, 0)
	m.detail.MouseWheelEnabled = true

	// Text input lives in the input handler; the view model gets copies
	m.viewModel = viewmodels.NewViewModel(appState, blocks, textinput.New())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.state.Screen == views.ScreenLoading {
		return tea.Batch(loadingTick(), hashTick())
	}

	// No intro: verify straight away and go interactive
	m.loader.Skip()
	m.publish(eventbus.AppReadyEvent{SkippedIntro: true})
	return m.reportVerify()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if frame := m.ensureFrames(); frame != nil {
			cmds = append(cmds, frame)
		}

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, tea.Batch(cmd, m.ensureFrames())

	default:
		// Cursor blink messages go to the text input
		blink := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(blink, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPager {
		return ""
	}

	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	if m.state.ShowHelp {
		m.viewModel.SetHelpContent(m.helpRender.renderOverlay(m.help))
	}

	vs := m.viewModel.BuildViewState(m.nav.State(), m.loader.State(), m.detailView(), m.searchInfo())
	return m.renderer.Render(vs)
}

func (m *Model) resize(width, height int) {
	m.vp = views.NewViewportInfo(width, height)
	m.viewModel.SetViewport(m.vp)
	m.help.Width = m.vp.Width

	w, h := views.ModalBodySize(m.vp)
	m.detail.Width = w
	m.detail.Height = h
	if m.state.DetailOpen {
		// Rewrap for the new width, keeping the scroll position where possible
		offset := m.detail.YOffset
		m.detail.SetContent(m.renderer.DetailContent(m.blocks[m.state.DetailIndex], w))
		m.detail.SetYOffset(offset)
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{Nav: m.nav, Search: m.search}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case inputtypes.DirectionNext:
			m.nav.Next()
		case inputtypes.DirectionPrev:
			m.nav.Previous()
		case inputtypes.DirectionFirst:
			m.nav.First()
		case inputtypes.DirectionLast:
			m.nav.Last()
		}

	case inputtypes.GoToAction:
		m.nav.RequestNavigate(a.Index)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.performSearch(a.Text)
		}

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The query only runs on submit

	case inputtypes.SearchNavigateAction:
		var moved bool
		if a.Direction == inputtypes.DirectionPrev {
			moved = m.search.NavigatePrevious()
		} else {
			moved = m.search.NavigateNext()
		}
		if moved {
			return m.toast(fmt.Sprintf("Match %d of %d", m.search.GetCurrentPosition(), m.search.GetMatchCount()), views.StatusInfo)
		}

	case inputtypes.OpenDetailAction:
		m.openDetail()

	case inputtypes.CloseDetailAction:
		m.closeDetail()

	case inputtypes.ScrollDetailAction:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(a.Msg)
		return cmd

	case inputtypes.OpenDetailPagerAction:
		if !m.state.DetailOpen {
			return nil
		}
		b := m.blocks[m.state.DetailIndex]
		m.publish(eventbus.DetailOpenedEvent{BlockID: b.ID, Pager: true})
		content := fmt.Sprintf("Block #%d  %s\n\n%s\n", b.Number, b.Title, m.renderer.DetailContent(b, pagerWidth))
		return m.showInPager("detail", content)

	case inputtypes.ShowHelpAction:
		m.state.ShowHelp = a.Visible

	case inputtypes.ShowHelpPagerAction:
		return m.showInPager("help", m.helpRender.renderHelpContent())

	case inputtypes.SkipIntroAction:
		return m.finishIntro(true)

	case inputtypes.QuitAction:
		m.scheduler.CancelAll()
		return tea.Quit

	default:
		log.Printf("processAction: unhandled %T", action)
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.nav.Tick(unixMs(time.Time(msg)))
		return m, m.scheduleFrame()

	case loadingTickMsg:
		if m.state.Screen != views.ScreenLoading {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, step := range m.loader.Advance() {
			if step.Name == loading.VerifyStepName {
				cmds = append(cmds, m.reportVerify())
			}
		}
		if m.loader.Complete() {
			var cmd tea.Cmd
			m.loadingHandle, cmd = m.scheduler.Replace(loading.CompleteDelay, schedule.PurposeLoading)
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, loadingTick())
		}
		return m, tea.Batch(cmds...)

	case hashTickMsg:
		if m.state.Screen != views.ScreenLoading {
			return m, nil
		}
		m.loader.AdvanceHash()
		return m, hashTick()

	case schedule.FiredMsg:
		if !m.scheduler.Accept(msg) {
			return m, nil
		}
		switch msg.Purpose {
		case schedule.PurposeToast:
			m.state.ClearStatus(msg.Handle)
		case schedule.PurposeLoading:
			return m, m.finishIntro(false)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			return m, m.toast(fmt.Sprintf("Could not open %s pager: %v", msg.what, msg.err), views.StatusError)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil

	default:
		return m, nil
	}
}

// handleMouse maps wheel, drag and click input onto navigation
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UISettings.Mouse || m.state.InPager {
		return nil
	}

	if m.state.Screen == views.ScreenLoading {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
			return m.finishIntro(true)
		}
		return nil
	}

	if m.state.ShowHelp {
		return nil
	}

	if m.state.DetailOpen {
		return m.handleDetailMouse(msg)
	}

	switch {
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		m.nav.OnWheel(m.config.UISettings.WheelStep)

	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.nav.OnWheel(-m.config.UISettings.WheelStep)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.state.StartDrag(msg.Y, m.now())

	case msg.Action == tea.MouseActionRelease:
		row, start, ok := m.state.EndDrag()
		if !ok {
			return nil
		}
		if row != msg.Y {
			delta := float64(row-msg.Y) * m.config.UISettings.SwipeRowUnits
			elapsed := float64(m.now().Sub(start)) / float64(time.Millisecond)
			m.nav.OnSwipe(delta, elapsed)
			return nil
		}
		return m.handleClick(msg.X, msg.Y)
	}

	return nil
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	ns := m.nav.State()
	hit := views.ComputeLayout(m.vp, m.blocks, ns.CameraPosition).HitTest(x, y)

	switch hit.Kind {
	case views.HitDot:
		m.nav.RequestNavigate(hit.Index)
	case views.HitCard:
		if hit.Index == ns.ActiveIndex && !ns.IsTransitioning {
			var cmds []tea.Cmd
			for _, a := range m.inputHandler.ChangeMode(inputtypes.ModeDetail, m.inputContext()) {
				cmds = append(cmds, m.processAction(a))
			}
			m.openDetail()
			return tea.Batch(cmds...)
		}
		m.nav.RequestNavigate(hit.Index)
	}
	return nil
}

// handleDetailMouse scrolls the modal and closes it on a click outside
func (m *Model) handleDetailMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
		w, h := views.ModalSize(m.vp)
		left, top := (m.vp.Width-w)/2, (m.vp.Height-h)/2
		inside := msg.X >= left && msg.X < left+w && msg.Y >= top && msg.Y < top+h
		if !inside {
			var cmds []tea.Cmd
			for _, a := range m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext()) {
				cmds = append(cmds, m.processAction(a))
			}
			return tea.Batch(cmds...)
		}
		return nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return cmd
}

// ensureFrames starts the frame loop for a newly accepted transition
func (m *Model) ensureFrames() tea.Cmd {
	if m.framing || !m.nav.State().IsTransitioning {
		return nil
	}
	// The first tick anchors the transition clock at acceptance
	m.nav.Tick(unixMs(m.now()))
	return m.scheduleFrame()
}

// scheduleFrame requests the next frame, or stops once the camera settled
func (m *Model) scheduleFrame() tea.Cmd {
	if !m.nav.State().IsTransitioning {
		m.framing = false
		return nil
	}
	m.framing = true
	return tea.Tick(m.config.UISettings.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) openDetail() {
	if len(m.blocks) == 0 {
		return
	}
	idx := m.nav.State().ActiveIndex
	m.state.OpenDetail(idx)

	width := m.detail.Width
	if width <= 0 {
		width = detailFallbackWidth
	}
	m.detail.SetContent(m.renderer.DetailContent(m.blocks[idx], width))
	m.detail.GotoTop()

	m.publish(eventbus.DetailOpenedEvent{BlockID: m.blocks[idx].ID})
}

func (m *Model) closeDetail() {
	if !m.state.DetailOpen {
		return
	}
	m.state.CloseDetail()
	m.publish(eventbus.DetailClosedEvent{BlockID: m.blocks[m.state.DetailIndex].ID})
}

// navigateToMatch jumps to a search hit; it refuses only while a transition runs
func (m *Model) navigateToMatch(index int) bool {
	if m.nav.State().IsTransitioning {
		return false
	}
	m.nav.RequestNavigate(index)
	return true
}

func (m *Model) performSearch(query string) tea.Cmd {
	matches := m.search.Search(query)
	q := m.search.GetQuery()
	switch {
	case q == "":
		m.search.Clear()
		return nil
	case len(matches) == 0:
		return m.toast(fmt.Sprintf("No blocks match %q", q), views.StatusError)
	case len(matches) == 1:
		return m.toast(fmt.Sprintf("1 match for %q", q), views.StatusSuccess)
	default:
		return m.toast(fmt.Sprintf("%d matches for %q", len(matches), q), views.StatusSuccess)
	}
}

// finishIntro leaves the loading screen; skipped is true when the user cut it short
func (m *Model) finishIntro(skipped bool) tea.Cmd {
	if m.state.Screen != views.ScreenLoading {
		return nil
	}
	if skipped {
		m.loader.Skip()
	}
	m.scheduler.Cancel(m.loadingHandle)
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
	m.state.Screen = views.ScreenTimeline

	m.publish(eventbus.AppReadyEvent{SkippedIntro: skipped})
	return m.reportVerify()
}

// reportVerify publishes the chain check once and toasts a failure
func (m *Model) reportVerify() tea.Cmd {
	if m.verifyReported || !m.loader.Verified() {
		return nil
	}
	m.verifyReported = true

	err := m.loader.VerifyErr()
	m.publish(eventbus.ChainVerifiedEvent{Valid: err == nil, Err: err})
	if err != nil {
		log.Printf("Timeline integrity check failed: %v", err)
		return m.toast("Integrity check failed: "+err.Error(), views.StatusError)
	}
	return nil
}

// toast shows msg in the status bar until the toast timer fires
func (m *Model) toast(msg string, kind views.StatusKind) tea.Cmd {
	h, cmd := m.scheduler.Replace(m.config.UISettings.ToastDuration(), schedule.PurposeToast)
	m.state.SetStatus(msg, kind, h)
	return cmd
}

func (m *Model) detailView() *views.DetailView {
	if !m.state.DetailOpen {
		return nil
	}
	return &views.DetailView{
		Block:         m.blocks[m.state.DetailIndex],
		Body:          m.detail.View(),
		ScrollPercent: m.detail.ScrollPercent(),
	}
}

func (m *Model) searchInfo() viewmodels.SearchInfo {
	count := m.search.GetMatchCount()
	if count == 0 {
		return viewmodels.SearchInfo{}
	}
	info := viewmodels.SearchInfo{
		Summary: fmt.Sprintf("[%d/%d]", m.search.GetCurrentPosition(), count),
		Matches: make(map[int]bool, count),
	}
	for i := range m.blocks {
		if m.search.IsMatch(i) {
			info.Matches[i] = true
		}
	}
	return info
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func loadingTick() tea.Cmd {
	return tea.Tick(loading.StepInterval, func(t time.Time) tea.Msg {
		return loadingTickMsg(t)
	})
}

func hashTick() tea.Cmd {
	return tea.Tick(loading.HashInterval, func(t time.Time) tea.Msg {
		return hashTickMsg(t)
	})
}

func unixMs(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}
