package search

// State holds search state
type State struct {
	Query        string
	Matches      []Match
	CurrentMatch int // position in Matches
}

// MatchKind says which rule produced a match
type MatchKind string

const (
	MatchSubstring MatchKind = "substring"
	MatchFuzzy     MatchKind = "fuzzy"
)

// Match is one block that satisfied the query
type Match struct {
	Index int
	Field string // title, subtitle or technology
	Kind  MatchKind
}

// MaxFuzzyDistance is the largest edit distance accepted for a title word
const MaxFuzzyDistance = 2
