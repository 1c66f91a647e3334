package domain

import "time"

// LinkType identifies what a block link points at
type LinkType string

const (
	LinkGitHub   LinkType = "github"
	LinkDemo     LinkType = "demo"
	LinkWebsite  LinkType = "website"
	LinkLinkedIn LinkType = "linkedin"
	LinkEmail    LinkType = "email"
)

// Block represents one timeline entry (a biography milestone)
type Block struct {
	ID           string    `yaml:"id"`
	Number       int       `yaml:"number"`
	Timestamp    time.Time `yaml:"timestamp"`
	Title        string    `yaml:"title"`
	Subtitle     string    `yaml:"subtitle"`
	Description  string    `yaml:"description"`
	Details      Details   `yaml:"details"`
	Hash         string    `yaml:"hash,omitempty"`
	PreviousHash string    `yaml:"previous_hash,omitempty"`
	Nonce        int64     `yaml:"nonce"`
	Position     Position  `yaml:"position"`
}

// Details holds the long-form content shown in the detail view
type Details struct {
	Content      string   `yaml:"content"`
	Technologies []string `yaml:"technologies,omitempty"`
	Links        []Link   `yaml:"links,omitempty"`
	Achievements []string `yaml:"achievements,omitempty"`
	CodeSnippet  string   `yaml:"code_snippet,omitempty"`
}

// Link is an external reference attached to a block
type Link struct {
	Label string   `yaml:"label"`
	URL   string   `yaml:"url"`
	Type  LinkType `yaml:"type"`
}

// Position is the block's decorative offset in scene units
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// HashPreview returns the first n runes of the hash followed by an ellipsis
func (b Block) HashPreview(n int) string {
	if n <= 0 || len(b.Hash) <= n {
		return b.Hash
	}
	return b.Hash[:n] + "..."
}
