package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/ui/input/types"
)

// DetailMode captures every key while the block detail modal is open
type DetailMode struct {
	keys types.KeyMap
}

func NewDetailMode(keys types.KeyMap) *DetailMode {
	return &DetailMode{keys: keys}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Close), msg.Type == tea.KeyEnter:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenDetailPagerAction{}}, true
	default:
		return []types.Action{types.ScrollDetailAction{Msg: msg}}, true
	}
}
