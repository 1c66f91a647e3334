package loading

// Service drives the boot progress shown before the timeline
type Service struct {
	progress  int
	hashes    []string
	hashPos   int
	verify    func() error
	verified  bool
	verifyErr error
}

// NewService creates a loading sequence. hashes feed the hash ticker and
// verify runs once when the integrity step is reached.
func NewService(hashes []string, verify func() error) *Service {
	return &Service{hashes: hashes, verify: verify}
}

// Advance moves progress one step and returns the steps reached by it
func (s *Service) Advance() []Step {
	if s.progress >= 100 {
		return nil
	}

	before := s.progress
	s.progress += ProgressStep
	if s.progress > 100 {
		s.progress = 100
	}

	var reached []Step
	for _, st := range Steps {
		if before < st.Threshold && s.progress >= st.Threshold {
			reached = append(reached, st)
			if st.Name == VerifyStepName {
				s.runVerify()
			}
		}
	}
	return reached
}

// AdvanceHash rotates the hash ticker
func (s *Service) AdvanceHash() {
	if len(s.hashes) > 0 {
		s.hashPos = (s.hashPos + 1) % len(s.hashes)
	}
}

// Skip jumps to the end, still running verification
func (s *Service) Skip() {
	s.progress = 100
	s.runVerify()
}

// Complete reports whether progress reached 100
func (s *Service) Complete() bool {
	return s.progress >= 100
}

// VerifyErr returns the integrity check result, nil until it has run
func (s *Service) VerifyErr() error {
	return s.verifyErr
}

// Verified reports whether the integrity check has run
func (s *Service) Verified() bool {
	return s.verified
}

// State returns a snapshot for rendering
func (s *Service) State() State {
	st := State{
		Progress:  s.progress,
		Complete:  s.Complete(),
		VerifyErr: s.verifyErr,
		Steps:     make([]StepState, len(Steps)),
	}
	if len(s.hashes) > 0 {
		st.Hash = s.hashes[s.hashPos]
	}
	for i, step := range Steps {
		st.Steps[i] = StepState{Step: step, Done: s.progress >= step.Threshold}
	}
	return st
}

func (s *Service) runVerify() {
	if s.verified {
		return
	}
	s.verified = true
	if s.verify != nil {
		s.verifyErr = s.verify()
	}
}
