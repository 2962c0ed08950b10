package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatchStartWithoutPath(t *testing.T) {
	w := NewConfigWatchService("", nil)
	started, err := w.Start()
	require.NoError(t, err)
	assert.False(t, started)
	assert.False(t, w.Wait())
	w.Stop()
}

func TestConfigWatchMatches(t *testing.T) {
	w := NewConfigWatchService("/home/u/.config/lazyhg/config.yaml", nil)

	assert.True(t, w.Matches(fsnotify.Event{Name: "/home/u/.config/lazyhg/config.yaml", Op: fsnotify.Write}))
	assert.True(t, w.Matches(fsnotify.Event{Name: "/home/u/.config/lazyhg/./config.yaml", Op: fsnotify.Create}))
	assert.False(t, w.Matches(fsnotify.Event{Name: "/home/u/.config/lazyhg/config.yaml", Op: fsnotify.Chmod}))
	assert.False(t, w.Matches(fsnotify.Event{Name: "/home/u/.config/lazyhg/other.yaml", Op: fsnotify.Write}))
}

func newQuietWatcher(debounce time.Duration) *ConfigWatchService {
	return &ConfigWatchService{
		Debounce: debounce,
		Events:   make(chan struct{}, 1),
		Done:     make(chan struct{}),
	}
}

func TestConfigWatchSignalCoalescesBurst(t *testing.T) {
	w := newQuietWatcher(30 * time.Millisecond)

	w.Signal()
	w.Signal()
	w.Signal()
	last := time.Now()

	select {
	case <-w.Events:
		assert.GreaterOrEqual(t, time.Since(last), w.Debounce)
	case <-time.After(2 * time.Second):
		t.Fatal("no signal after burst")
	}

	select {
	case <-w.Events:
		t.Fatal("burst signalled more than once")
	case <-time.After(3 * w.Debounce):
	}
}

func TestConfigWatchSignalWaitsForLastEvent(t *testing.T) {
	w := newQuietWatcher(50 * time.Millisecond)

	w.Signal()
	time.Sleep(20 * time.Millisecond)
	w.Signal()
	last := time.Now()

	select {
	case <-w.Events:
		assert.GreaterOrEqual(t, time.Since(last), w.Debounce)
	case <-time.After(2 * time.Second):
		t.Fatal("no signal")
	}
}

func TestConfigWatchSignalAfterStop(t *testing.T) {
	w := newQuietWatcher(10 * time.Millisecond)
	close(w.Done)
	w.Signal()
	time.Sleep(5 * w.Debounce)
	assert.Empty(t, w.Events)
}

func TestConfigWatchTruncateThenWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dracula\n"), 0o600))

	w := NewConfigWatchService(path, nil)
	started, err := w.Start()
	require.NoError(t, err)
	require.True(t, started)
	t.Cleanup(w.Stop)

	// Shell redirection truncates the file before writing the new content.
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	time.Sleep(w.Debounce / 5)
	assert.Empty(t, w.Events, "empty file must not be reported while writes continue")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\n"), 0o600))

	got := make(chan bool, 1)
	go func() { got <- w.Wait() }()

	select {
	case ok := <-got:
		require.True(t, ok)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "theme: nord\n", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config change")
	}
}

func TestConfigWatchSeesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\n"), 0o600))

	w := NewConfigWatchService(path, nil)
	started, err := w.Start()
	require.NoError(t, err)
	require.True(t, started)
	t.Cleanup(w.Stop)

	require.NoError(t, os.WriteFile(path, []byte("theme: dracula\n"), 0o600))

	got := make(chan bool, 1)
	go func() { got <- w.Wait() }()

	select {
	case ok := <-got:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config change")
	}
}

func TestConfigWatchWaitReturnsFalseAfterStop(t *testing.T) {
	w := NewConfigWatchService(filepath.Join(t.TempDir(), "config.yaml"), nil)
	_, err := w.Start()
	require.NoError(t, err)

	done := make(chan bool, 1)
	go func() { done <- w.Wait() }()
	w.Stop()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after Stop")
	}
}
