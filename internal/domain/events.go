package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTransitionStarted EventType = "TransitionStarted"
	EventBlockCommitted    EventType = "BlockCommitted"
	EventTransitionSettled EventType = "TransitionSettled"
	EventDetailOpened      EventType = "DetailOpened"
	EventDetailClosed      EventType = "DetailClosed"
	EventSearchCompleted   EventType = "SearchCompleted"
	EventTimelineLoaded    EventType = "TimelineLoaded"
	EventChainVerified     EventType = "ChainVerified"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// InputSource names the producer that caused a navigation
type InputSource string

const (
	SourceDirect InputSource = "direct"
	SourceWheel  InputSource = "wheel"
	SourceSwipe  InputSource = "swipe"
)

// TransitionStartedEvent is emitted when the navigation controller accepts a request
type TransitionStartedEvent struct {
	From   int
	To     int
	Source InputSource
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// BlockCommittedEvent is emitted when the active index changes (transition midpoint)
type BlockCommittedEvent struct {
	Index int
}

func (e BlockCommittedEvent) Type() EventType { return EventBlockCommitted }

// TransitionSettledEvent is emitted when the camera reaches its target
type TransitionSettledEvent struct {
	Index int
}

func (e TransitionSettledEvent) Type() EventType { return EventTransitionSettled }

// DetailOpenedEvent is emitted when a block's detail view is shown
type DetailOpenedEvent struct {
	BlockID string
	Pager   bool // true when shown in the external pager
}

func (e DetailOpenedEvent) Type() EventType { return EventDetailOpened }

// DetailClosedEvent is emitted when the detail view is dismissed
type DetailClosedEvent struct {
	BlockID string
}

func (e DetailClosedEvent) Type() EventType { return EventDetailClosed }

// SearchCompletedEvent is emitted after a search query is evaluated
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstMatch int // -1 if none
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// TimelineLoadedEvent is emitted once the timeline data is available
type TimelineLoadedEvent struct {
	Source string // file path or "embedded"
	Blocks int
}

func (e TimelineLoadedEvent) Type() EventType { return EventTimelineLoaded }

// ChainVerifiedEvent is emitted when the loading screen checks the hash chain
type ChainVerifiedEvent struct {
	Valid bool
	Err   error
}

func (e ChainVerifiedEvent) Type() EventType { return EventChainVerified }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the intro finished and the timeline is interactive
type AppReadyEvent struct {
	SkippedIntro bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
