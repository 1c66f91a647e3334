//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const customTimeline = `blocks:
  - id: first
    number: 0
    timestamp: 2020-01-01T00:00:00Z
    title: Alpha Start
    subtitle: Where it began
    description: The first entry.
    nonce: 7
    details:
      content: Hello from alpha.
      technologies: [Go]
  - id: second
    number: 1
    timestamp: 2021-01-01T00:00:00Z
    title: Beta Release
    subtitle: Shipping
    description: The second entry.
    nonce: 8
    details:
      content: Hello from beta.
      technologies: [Rust]
`

func TestCustomTimelineFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteFile("career.yaml", customTimeline)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-no-intro", "-t", path))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Alpha Start"))
	require.True(t, tf.SeePlain("Block 1/2"))
}

func TestBrokenTimelineFileFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteFile("empty.yaml", "")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-no-intro", "-timeline", path))
	require.True(t, tf.SeePlain("Error loading timeline"))
	require.Error(t, tf.WaitExit(2*time.Second))
}

func TestSearchJumpsToMatch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-no-intro"))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Block 1/9"))

	tf.Search("solana")
	require.True(t, tf.SeePlain(`1 match for "solana"`), "Search should report its result")
	require.True(t, tf.SeePlain("Block 6/9"), "Search should navigate to the match")
}

func TestDetailModal(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-no-intro"))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Block 1/9"))

	tf.Enter()
	require.True(t, tf.SeePlain("Overview"), "Detail modal should show the overview section")
	require.True(t, tf.SeePlain("Nonce:"), "Detail modal should show the nonce")

	tf.Esc()
	time.Sleep(200 * time.Millisecond)
	tf.Quit()
	require.NoError(t, tf.WaitExit(2*time.Second))
}
