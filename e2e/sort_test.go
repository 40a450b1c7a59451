//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortModePicker(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	srv := newMockServer(t)
	srv.seedDefault()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartAppWithServer(srv.URL())
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should render the tab bar")
	require.True(t, tf.SeePlain("alpha-sub"), "Should list the fixture subscriptions")

	// Open the sort picker; the default mode is name
	tf.SendKeys(KeySort)
	require.True(t, tf.SeePlain("Sort by: Name"), "Sort picker should open on the current mode")

	// Cycle through the modes; each step applies immediately
	tf.Down()
	require.True(t, tf.SeePlain("Sort by: Recent"), "Next sort mode should be recent")

	tf.Down()
	require.True(t, tf.SeePlain("Sort by: Nodes"), "Next sort mode should be node count")

	// Accept and return to normal mode
	tf.Enter()

	// The picker line is gone; j moves the cursor again
	tf.Down()
	output := tf.SnapshotPlain()
	require.Greater(t, len(output), 100, "App should still be rendering after sorting")
}

func TestSortPickerCancel(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	srv := newMockServer(t)
	srv.seedDefault()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartAppWithServer(srv.URL())
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should render the tab bar")

	tf.SendKeys(KeySort)
	require.True(t, tf.SeePlain("Sort by: Name"), "Sort picker should open on the current mode")

	tf.Down()
	require.True(t, tf.SeePlain("Sort by: Recent"), "Next sort mode should be recent")

	// Escape restores the sort that was active before the picker opened
	tf.SendKeys(KeyEscape)

	// Quit cleanly afterwards to prove normal mode is back
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	tf.Quit()
	require.True(t, tf.WaitFor(func(string) bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, 3*time.Second), "App should quit from normal mode after cancelling the picker")
}
