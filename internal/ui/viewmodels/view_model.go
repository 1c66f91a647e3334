package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"blockfolio/internal/domain"
	"blockfolio/internal/ui/input/types"
	"blockfolio/internal/ui/services/loading"
	"blockfolio/internal/ui/services/navigation"
	"blockfolio/internal/ui/state"
	"blockfolio/internal/ui/views"
)

// SearchInfo is the search state the status bar and cards need
type SearchInfo struct {
	Summary string
	Matches map[int]bool
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	viewport         views.ViewportInfo
	blocks           []domain.Block
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, blocks []domain.Block, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		blocks:           blocks,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetViewport sets the current terminal dimensions
func (vm *ViewModel) SetViewport(vp views.ViewportInfo) {
	vm.viewport = vp
}

// Viewport returns the last terminal dimensions
func (vm *ViewModel) Viewport() views.ViewportInfo {
	return vm.viewport
}

// SetHelpContent sets the rendered key help for the overlay
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(nav navigation.State, ld loading.State, detail *views.DetailView, search SearchInfo) views.ViewState {
	return views.ViewState{
		Viewport:      vm.viewport,
		Screen:        vm.state.Screen,
		Blocks:        vm.blocks,
		Nav:           nav,
		Loading:       ld,
		Detail:        detail,
		ShowHelp:      vm.state.ShowHelp,
		HelpContent:   vm.helpContent,
		SearchActive:  vm.inputTransformer.Active(),
		SearchInput:   vm.inputTransformer.GetInputText(),
		SearchSummary: search.Summary,
		Matches:       search.Matches,
		StatusMessage: vm.state.StatusMessage,
		StatusKind:    vm.state.StatusKind,
	}
}
