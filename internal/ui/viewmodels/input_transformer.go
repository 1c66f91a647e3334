package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"blockfolio/internal/ui/input/types"
)

// InputTransformer turns the input mode into status bar text
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// Active reports whether the status bar shows a text prompt
func (it *InputTransformer) Active() bool {
	return it.mode == types.ModeSearch
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case types.ModeSearch:
		// The prompt ("/") is part of the textinput view
		return it.textInput.View()
	default:
		return ""
	}
}
