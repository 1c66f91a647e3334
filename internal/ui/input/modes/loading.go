package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/ui/input/types"
)

// LoadingMode is active during the intro; any key skips it
type LoadingMode struct{}

func NewLoadingMode() *LoadingMode {
	return &LoadingMode{}
}

func (m *LoadingMode) Name() string {
	return "loading"
}

func (m *LoadingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LoadingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LoadingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return []types.Action{
		types.SkipIntroAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, true
}
