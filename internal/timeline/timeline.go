// Package timeline loads and validates the chain of portfolio blocks.
package timeline

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"blockfolio/internal/domain"
)

//go:embed default.yaml
var defaultTimeline []byte

// GenesisPreviousHash is the previous hash of block 0
var GenesisPreviousHash = "0x" + strings.Repeat("0", 64)

// EmbeddedSource names the timeline compiled into the binary
const EmbeddedSource = "embedded"

var (
	ErrEmpty       = errors.New("timeline has no blocks")
	ErrDuplicateID = errors.New("duplicate block id")
	ErrBlockNumber = errors.New("block number does not match position")
	ErrBrokenChain = errors.New("hash chain is broken")
)

// document is the on-disk layout of a timeline file
type document struct {
	Blocks []domain.Block `yaml:"blocks"`
}

// Timeline is an ordered, sealed sequence of blocks
type Timeline struct {
	blocks []domain.Block
	source string
}

// Load decodes, validates and seals a timeline document
func Load(r io.Reader) (*Timeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to parse timeline: %w", err)
	}

	if err := validate(doc.Blocks); err != nil {
		return nil, err
	}

	seal(doc.Blocks)
	return &Timeline{blocks: doc.Blocks}, nil
}

// LoadFile loads a timeline from a YAML file
func LoadFile(path string) (*Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timeline: %w", err)
	}
	defer f.Close()

	tl, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tl.source = path
	return tl, nil
}

// Default returns the timeline compiled into the binary
func Default() (*Timeline, error) {
	tl, err := Load(bytes.NewReader(defaultTimeline))
	if err != nil {
		return nil, fmt.Errorf("embedded timeline: %w", err)
	}
	tl.source = EmbeddedSource
	return tl, nil
}

// New builds a timeline from blocks already in memory
func New(blocks []domain.Block) (*Timeline, error) {
	cp := make([]domain.Block, len(blocks))
	copy(cp, blocks)
	if err := validate(cp); err != nil {
		return nil, err
	}
	seal(cp)
	return &Timeline{blocks: cp, source: "memory"}, nil
}

func validate(blocks []domain.Block) error {
	if len(blocks) == 0 {
		return ErrEmpty
	}

	seen := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b.ID == "" {
			return fmt.Errorf("block %d: %w: empty id", i, ErrDuplicateID)
		}
		if prev, ok := seen[b.ID]; ok {
			return fmt.Errorf("block %d: %w %q (first seen at %d)", i, ErrDuplicateID, b.ID, prev)
		}
		seen[b.ID] = i
		if b.Number != i {
			return fmt.Errorf("block %q: %w: number %d at position %d", b.ID, ErrBlockNumber, b.Number, i)
		}
	}
	return nil
}

// seal fills in missing hashes, linking each block to its predecessor
func seal(blocks []domain.Block) {
	prev := GenesisPreviousHash
	for i := range blocks {
		b := &blocks[i]
		if b.PreviousHash == "" {
			b.PreviousHash = prev
		}
		if b.Hash == "" {
			b.Hash = ComputeHash(*b)
		}
		prev = b.Hash
	}
}

// ComputeHash returns the sealing hash of a block given its PreviousHash
func ComputeHash(b domain.Block) string {
	payload := strings.Join([]string{
		b.PreviousHash,
		b.ID,
		strconv.Itoa(b.Number),
		b.Timestamp.UTC().Format(time.RFC3339),
		b.Title,
		strconv.FormatInt(b.Nonce, 10),
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return "0x" + hex.EncodeToString(sum[:])
}

// Verify recomputes the chain and reports the first block that does not match
func (t *Timeline) Verify() error {
	prev := GenesisPreviousHash
	for _, b := range t.blocks {
		if b.PreviousHash != prev {
			return fmt.Errorf("%w: block %d (%s) links to %s, want %s",
				ErrBrokenChain, b.Number, b.ID, short(b.PreviousHash), short(prev))
		}
		if want := ComputeHash(b); b.Hash != want {
			return fmt.Errorf("%w: block %d (%s) hash %s, want %s",
				ErrBrokenChain, b.Number, b.ID, short(b.Hash), short(want))
		}
		prev = b.Hash
	}
	return nil
}

func short(h string) string {
	if len(h) > 12 {
		return h[:12] + "..."
	}
	return h
}

// Len returns the number of blocks
func (t *Timeline) Len() int {
	return len(t.blocks)
}

// Source returns the file the timeline came from
func (t *Timeline) Source() string {
	return t.source
}

// Blocks returns a copy of all blocks in order
func (t *Timeline) Blocks() []domain.Block {
	out := make([]domain.Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// ByNumber returns the block at position n
func (t *Timeline) ByNumber(n int) (domain.Block, bool) {
	if n < 0 || n >= len(t.blocks) {
		return domain.Block{}, false
	}
	return t.blocks[n], true
}

// Next returns the block after n
func (t *Timeline) Next(n int) (domain.Block, bool) {
	return t.ByNumber(n + 1)
}

// Previous returns the block before n
func (t *Timeline) Previous(n int) (domain.Block, bool) {
	return t.ByNumber(n - 1)
}

// IndexOf returns the position of the block with the given id, or -1
func (t *Timeline) IndexOf(id string) int {
	for i, b := range t.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
