package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"blockfolio/internal/ui/input/types"
)

const maxHistory = 20

// SearchMode edits the search query and remembers submitted queries
type SearchMode struct {
	textInput *textinput.Model
	history   []string
	recall    int // index into history while browsing, len(history) when not
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.recall = len(m.history)
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Prompt = "/"
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

// History returns submitted queries, oldest first
func (m *SearchMode) History() []string {
	return m.history
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		m.remember(text)
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "up":
		if m.recall > 0 {
			m.recall--
			return m.setText(m.history[m.recall]), true
		}
		return nil, true
	case "down":
		if m.recall < len(m.history)-1 {
			m.recall++
			return m.setText(m.history[m.recall]), true
		}
		m.recall = len(m.history)
		return m.setText(""), true
	case "ctrl+u":
		return m.setText(""), true
	default:
		// Returning false lets the handler feed the key to the text input
		return nil, false
	}
}

func (m *SearchMode) setText(s string) []types.Action {
	if m.textInput == nil {
		return nil
	}
	m.textInput.SetValue(s)
	m.textInput.CursorEnd()
	return []types.Action{types.UpdateTextAction{Text: s}}
}

func (m *SearchMode) remember(q string) {
	if q == "" {
		return
	}
	if n := len(m.history); n > 0 && m.history[n-1] == q {
		return
	}
	m.history = append(m.history, q)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}
