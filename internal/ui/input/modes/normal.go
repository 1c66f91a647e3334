package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}, true

	case key.Matches(msg, k.Prev):
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrev}}, true

	case key.Matches(msg, k.First):
		return []types.Action{types.NavigateAction{Direction: types.DirectionFirst}}, true

	case key.Matches(msg, k.Last):
		return []types.Action{types.NavigateAction{Direction: types.DirectionLast}}, true

	case key.Matches(msg, k.Jump):
		// Digits are 1-based; the controller clamps anything past the end
		d := int(msg.String()[0] - '1')
		return []types.Action{types.GoToAction{Index: d}}, true

	case key.Matches(msg, k.Open):
		return []types.Action{
			types.OpenDetailAction{},
			types.ChangeModeAction{Mode: types.ModeDetail},
		}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, k.SearchNext):
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: types.DirectionNext}}, true
		}
		return nil, true // Consume the key even if no action

	case key.Matches(msg, k.SearchPrev):
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: types.DirectionPrev}}, true
		}
		return nil, true

	case key.Matches(msg, k.Help):
		return []types.Action{
			types.ShowHelpAction{Visible: true},
			types.ChangeModeAction{Mode: types.ModeHelp},
		}, true

	case key.Matches(msg, k.HelpPager):
		return []types.Action{types.ShowHelpPagerAction{}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
