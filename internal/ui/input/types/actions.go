package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation directions
const (
	DirectionNext  = "next"
	DirectionPrev  = "prev"
	DirectionFirst = "first"
	DirectionLast  = "last"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "next", "prev", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToAction jumps straight to a block
type GoToAction struct {
	Index int
}

func (a GoToAction) Type() string { return "goto" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Detail view actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

// ScrollDetailAction forwards a key to the detail viewport
type ScrollDetailAction struct {
	Msg tea.KeyMsg
}

func (a ScrollDetailAction) Type() string { return "scroll_detail" }

type OpenDetailPagerAction struct{}

func (a OpenDetailPagerAction) Type() string { return "open_detail_pager" }

// Help actions
type ShowHelpAction struct {
	Visible bool
}

func (a ShowHelpAction) Type() string { return "show_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

// SkipIntroAction ends the loading screen early
type SkipIntroAction struct{}

func (a SkipIntroAction) Type() string { return "skip_intro" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
