package timeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockfolio/internal/domain"
)

const twoBlocks = `
blocks:
  - id: a
    number: 0
    timestamp: 2020-01-01T00:00:00Z
    title: First
    nonce: 1
  - id: b
    number: 1
    timestamp: 2021-01-01T00:00:00Z
    title: Second
    nonce: 2
`

func TestDefaultTimeline(t *testing.T) {
	tl, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 9, tl.Len())
	assert.Equal(t, EmbeddedSource, tl.Source())
	require.NoError(t, tl.Verify())

	first, ok := tl.ByNumber(0)
	require.True(t, ok)
	assert.Equal(t, "genesis", first.ID)
	assert.Equal(t, GenesisPreviousHash, first.PreviousHash)

	last, ok := tl.ByNumber(8)
	require.True(t, ok)
	assert.Equal(t, "contact", last.ID)
	assert.NotEmpty(t, last.Details.Links)
	assert.Equal(t, domain.LinkEmail, last.Details.Links[0].Type)
}

func TestLoadSealsChain(t *testing.T) {
	tl, err := Load(strings.NewReader(twoBlocks))
	require.NoError(t, err)

	a, _ := tl.ByNumber(0)
	b, _ := tl.ByNumber(1)

	assert.True(t, strings.HasPrefix(a.Hash, "0x"))
	assert.Len(t, a.Hash, 66)
	assert.Equal(t, a.Hash, b.PreviousHash)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), b.Timestamp.UTC())
	require.NoError(t, tl.Verify())
}

func TestHashIsDeterministic(t *testing.T) {
	t1, err := Load(strings.NewReader(twoBlocks))
	require.NoError(t, err)
	t2, err := Load(strings.NewReader(twoBlocks))
	require.NoError(t, err)

	assert.Equal(t, t1.Blocks(), t2.Blocks())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", ErrEmpty},
		{"no blocks", "blocks: []\n", ErrEmpty},
		{"duplicate id", "blocks:\n  - {id: a, number: 0}\n  - {id: a, number: 1}\n", ErrDuplicateID},
		{"missing id", "blocks:\n  - {number: 0}\n", ErrDuplicateID},
		{"number gap", "blocks:\n  - {id: a, number: 0}\n  - {id: b, number: 2}\n", ErrBlockNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("blocks:\n  - {id: a, number: 0, colour: red}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse timeline")
}

func TestVerifyDetectsTampering(t *testing.T) {
	tl, err := Load(strings.NewReader(twoBlocks))
	require.NoError(t, err)

	tl.blocks[1].Title = "Rewritten history"
	err = tl.Verify()
	require.ErrorIs(t, err, ErrBrokenChain)
	assert.Contains(t, err.Error(), "block 1 (b)")
}

func TestVerifyDetectsBrokenLink(t *testing.T) {
	doc := twoBlocks + "    previous_hash: 0xdeadbeef\n"
	tl, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	require.ErrorIs(t, tl.Verify(), ErrBrokenChain)
}

func TestLookups(t *testing.T) {
	tl, err := Load(strings.NewReader(twoBlocks))
	require.NoError(t, err)

	assert.Equal(t, 1, tl.IndexOf("b"))
	assert.Equal(t, -1, tl.IndexOf("zzz"))

	next, ok := tl.Next(0)
	require.True(t, ok)
	assert.Equal(t, "b", next.ID)

	_, ok = tl.Next(1)
	assert.False(t, ok)

	_, ok = tl.Previous(0)
	assert.False(t, ok)

	_, ok = tl.ByNumber(-1)
	assert.False(t, ok)
}

func TestBlocksReturnsCopy(t *testing.T) {
	tl, err := Load(strings.NewReader(twoBlocks))
	require.NoError(t, err)

	blocks := tl.Blocks()
	blocks[0].Title = "changed"

	a, _ := tl.ByNumber(0)
	assert.Equal(t, "First", a.Title)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "career.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoBlocks), 0644))

	tl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, tl.Source())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewSealsCopy(t *testing.T) {
	in := []domain.Block{{ID: "x", Number: 0, Title: "X"}}
	tl, err := New(in)
	require.NoError(t, err)

	assert.Empty(t, in[0].Hash)
	b, _ := tl.ByNumber(0)
	assert.NotEmpty(t, b.Hash)
}
