package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverin/maplegend/internal/watcher"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.yaml")
	err := os.WriteFile(mapPath, []byte("name: test"), 0644)
	require.NoError(t, err, "failed to create map file")

	w, err := watcher.New(watcher.Config{
		MapPath:     mapPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into single notification
	for i := 0; i < 10; i++ {
		err := os.WriteFile(mapPath, []byte(fmt.Sprintf("name: test%d", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
		// Expected
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	// No second notification should come quickly
	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
		// Expected - no second notification
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.yaml")
	otherPath := filepath.Join(dir, "notes.txt")
	err := os.WriteFile(mapPath, []byte("name: test"), 0644)
	require.NoError(t, err, "failed to create map file")
	// Pre-create the other file so writes to it are just Write events
	err = os.WriteFile(otherPath, []byte("initial"), 0644)
	require.NoError(t, err, "failed to create other file")

	w, err := watcher.New(watcher.Config{
		MapPath:     mapPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	err = os.WriteFile(otherPath, []byte("other content"), 0644)
	require.NoError(t, err, "failed to write other file")

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(100 * time.Millisecond):
		// Expected - no notification for unrelated file
	}
}

func TestWatcher_SurvivesFileReplacement(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.yaml")
	err := os.WriteFile(mapPath, []byte("name: test"), 0644)
	require.NoError(t, err, "failed to create map file")

	w, err := watcher.New(watcher.Config{
		MapPath:     mapPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Editors often save by writing a temp file and renaming it over the
	// original; the directory watch has to catch the replacement.
	tmpPath := filepath.Join(dir, "map.yaml.tmp")
	err = os.WriteFile(tmpPath, []byte("name: replaced"), 0644)
	require.NoError(t, err, "failed to write temp file")
	err = os.Rename(tmpPath, mapPath)
	require.NoError(t, err, "failed to rename over map file")

	select {
	case <-onChange:
		// Expected - replacement triggers notification
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification for file replacement")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.yaml")
	err := os.WriteFile(mapPath, []byte("name: test"), 0644)
	require.NoError(t, err, "failed to create map file")

	w, err := watcher.New(watcher.Config{
		MapPath:     mapPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")

	_, err = w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Stop should not hang or panic
	done := make(chan struct{})
	go func() {
		err := w.Stop()
		assert.NoError(t, err, "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
		// Expected - stop completed successfully
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestDefaultConfig(t *testing.T) {
	mapPath := "/maps/city.yaml"
	cfg := watcher.DefaultConfig(mapPath)

	assert.Equal(t, mapPath, cfg.MapPath)
	assert.Equal(t, 1*time.Second, cfg.DebounceDur)
}
