package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/ui/input/types"
)

// HelpMode is active while the help overlay is shown
type HelpMode struct {
	keys types.KeyMap
}

func NewHelpMode(keys types.KeyMap) *HelpMode {
	return &HelpMode{keys: keys}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ShowHelpAction{Visible: false}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.ShowHelpPagerAction{},
		}, true
	}
	return nil, true // the overlay swallows everything else
}
