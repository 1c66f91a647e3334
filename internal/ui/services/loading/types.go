package loading

import "time"

// Loading screen pacing
const (
	StepInterval   = 50 * time.Millisecond
	ProgressStep   = 2
	CompleteDelay  = 500 * time.Millisecond
	HashInterval   = 100 * time.Millisecond
	VerifyStepName = "Verifying block integrity"
)

// Step is one line of the boot checklist
type Step struct {
	Name      string
	Threshold int
}

// Steps is the boot checklist in display order
var Steps = []Step{
	{Name: "Connecting to blockchain network", Threshold: 20},
	{Name: "Loading smart contract data", Threshold: 40},
	{Name: VerifyStepName, Threshold: 60},
	{Name: "Rendering timeline", Threshold: 80},
	{Name: "Portfolio ready", Threshold: 100},
}

// State is a snapshot for rendering
type State struct {
	Progress  int
	Hash      string
	Steps     []StepState
	Complete  bool // progress reached 100
	VerifyErr error
}

// StepState pairs a step with whether it has been reached
type StepState struct {
	Step
	Done bool
}
