package search

import (
	"log"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"blockfolio/internal/domain"
	"blockfolio/internal/eventbus"
)

// Service matches queries against timeline blocks and cycles through results
type Service struct {
	state      *State
	bus        eventbus.EventBus
	blocks     []domain.Block
	navigateFn func(int) bool
}

// NewService creates a new search service over blocks
func NewService(blocks []domain.Block, bus eventbus.EventBus) *Service {
	return &Service{
		state:  &State{},
		bus:    bus,
		blocks: blocks,
	}
}

// SetNavigateFunction sets the function used to jump to a match.
// fn returns false when the jump was refused.
func (s *Service) SetNavigateFunction(fn func(int) bool) {
	s.navigateFn = fn
}

// Search runs query and navigates to the first match
func (s *Service) Search(query string) []Match {
	query = strings.TrimSpace(query)
	s.state.Query = query
	s.state.CurrentMatch = 0

	if query == "" {
		s.state.Matches = nil
		return nil
	}

	s.state.Matches = FindMatches(s.blocks, query)
	log.Printf("Search completed for '%s': found %d matches", query, len(s.state.Matches))

	first := -1
	if len(s.state.Matches) > 0 {
		first = s.state.Matches[0].Index
		s.navigateToCurrentMatch()
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SearchCompletedEvent{
			Query:      query,
			MatchCount: len(s.state.Matches),
			FirstMatch: first,
		})
	}
	return s.state.Matches
}

// Clear forgets the current query and results
func (s *Service) Clear() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0
}

// NavigateNext moves to the next search result
func (s *Service) NavigateNext() bool {
	if len(s.state.Matches) == 0 {
		return false
	}
	return s.moveTo((s.state.CurrentMatch + 1) % len(s.state.Matches))
}

// NavigatePrevious moves to the previous search result
func (s *Service) NavigatePrevious() bool {
	if len(s.state.Matches) == 0 {
		return false
	}
	n := len(s.state.Matches)
	return s.moveTo((s.state.CurrentMatch - 1 + n) % n)
}

// moveTo selects match i, keeping the old selection when the jump is refused
func (s *Service) moveTo(i int) bool {
	prev := s.state.CurrentMatch
	s.state.CurrentMatch = i
	if !s.navigateToCurrentMatch() {
		s.state.CurrentMatch = prev
		return false
	}
	return true
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Matches)
}

// GetCurrentMatch returns the block index of the selected match, or -1
func (s *Service) GetCurrentMatch() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch].Index
}

// GetCurrentPosition returns the 1-based position of the selected match
func (s *Service) GetCurrentPosition() int {
	if len(s.state.Matches) == 0 {
		return 0
	}
	return s.state.CurrentMatch + 1
}

// IsMatch checks if a block index is a search match
func (s *Service) IsMatch(index int) bool {
	for _, m := range s.state.Matches {
		if m.Index == index {
			return true
		}
	}
	return false
}

func (s *Service) navigateToCurrentMatch() bool {
	if len(s.state.Matches) == 0 {
		return false
	}
	if s.navigateFn == nil {
		return true
	}
	return s.navigateFn(s.state.Matches[s.state.CurrentMatch].Index)
}

// FindMatches returns the blocks matching query, in timeline order.
// Substring hits on title, subtitle or technologies win; otherwise a block
// matches when a title word is within MaxFuzzyDistance edits of the query.
func FindMatches(blocks []domain.Block, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Match
	for i, b := range blocks {
		if field, ok := substringField(b, q); ok {
			matches = append(matches, Match{Index: i, Field: field, Kind: MatchSubstring})
		}
	}
	if len(matches) > 0 {
		return matches
	}

	for i, b := range blocks {
		if fuzzyTitle(b.Title, q) {
			matches = append(matches, Match{Index: i, Field: "title", Kind: MatchFuzzy})
		}
	}
	return matches
}

func substringField(b domain.Block, q string) (string, bool) {
	if strings.Contains(strings.ToLower(b.Title), q) {
		return "title", true
	}
	if strings.Contains(strings.ToLower(b.Subtitle), q) {
		return "subtitle", true
	}
	for _, tech := range b.Details.Technologies {
		if strings.Contains(strings.ToLower(tech), q) {
			return "technology", true
		}
	}
	return "", false
}

func fuzzyTitle(title, q string) bool {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if levenshtein.ComputeDistance(w, q) <= MaxFuzzyDistance {
			return true
		}
	}
	return false
}
