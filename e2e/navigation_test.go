//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-no-intro"), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Genesis Block"), "Should show the genesis block")
	require.True(t, tf.SeePlain("Block 1/9"), "Should start at the first block")

	tf.Down()
	require.True(t, tf.SeePlain("Block 2/9"), "j should move to the next block")

	// Wait for the transition to settle before the next key
	time.Sleep(time.Second)
	tf.Up()
	require.True(t, tf.WaitFor(func(string) bool {
		plain := tf.SnapshotPlain()
		return strings.LastIndex(plain, "Block 1/9") > strings.LastIndex(plain, "Block 2/9")
	}, 3*time.Second), "k should move back to the first block")
}

func TestJumpToLastBlock(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-no-intro"))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Block 1/9"))

	tf.SendKeys(KeyLast)
	require.True(t, tf.SeePlain("Block 9/9"), "G should jump to the latest block")
	require.True(t, tf.SeePlain("Let's Connect"), "Latest block title should be visible")
}

func TestDigitJump(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-no-intro"))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Block 1/9"))

	tf.SendKeys("4")
	require.True(t, tf.SeePlain("Block 4/9"), "4 should jump to the fourth block")
}
