package log

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDebugLogger(t *testing.T) {
	t.Helper()

	globalDebugLogger.mu.Lock()
	prevFile := globalDebugLogger.file
	prevBuffer := append([]byte(nil), globalDebugLogger.buffer...)
	prevDiscard := globalDebugLogger.discard
	globalDebugLogger.file = nil
	globalDebugLogger.buffer = nil
	globalDebugLogger.discard = false
	globalDebugLogger.mu.Unlock()

	t.Cleanup(func() {
		globalDebugLogger.mu.Lock()
		if globalDebugLogger.file != nil {
			_ = globalDebugLogger.file.Close()
		}
		globalDebugLogger.file = prevFile
		globalDebugLogger.buffer = prevBuffer
		globalDebugLogger.discard = prevDiscard
		globalDebugLogger.mu.Unlock()
	})
}

func TestBufferedMessagesFlushOnSetFile(t *testing.T) {
	resetDebugLogger(t)

	Printf("fetched %s", "status")
	logPath := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(logPath))
	Println("after open")
	require.NoError(t, Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetched status")
	assert.Contains(t, string(data), "after open")
	assert.Contains(t, string(data), "lazyhg ")
}

func TestBufferKeepsNewestLines(t *testing.T) {
	resetDebugLogger(t)

	line := strings.Repeat("x", 100)
	for i := 0; i < 2*maxBuffered/len(line); i++ {
		Println("old", line)
	}
	Printf("run: hg log")

	globalDebugLogger.mu.Lock()
	buffered := string(globalDebugLogger.buffer)
	globalDebugLogger.mu.Unlock()

	assert.LessOrEqual(t, len(buffered), maxBuffered)
	assert.True(t, strings.HasPrefix(buffered, "lazyhg "), "buffer should start on a line boundary")
	assert.True(t, strings.HasSuffix(buffered, "run: hg log\n"))
}

func TestTrimBuffer(t *testing.T) {
	assert.Equal(t, "abc\n", string(trimBuffer([]byte("abc\n"), 10)))
	assert.Equal(t, "three\n", string(trimBuffer([]byte("one\ntwo\nthree\n"), 8)))
	assert.Equal(t, "ghij", string(trimBuffer([]byte("abcdefghij"), 4)))
}

func TestEmptyPathDiscards(t *testing.T) {
	resetDebugLogger(t)

	Printf("dropped")
	require.NoError(t, SetFile(""))
	Printf("also dropped")

	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	assert.True(t, globalDebugLogger.discard)
	assert.Empty(t, globalDebugLogger.buffer)
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	resetDebugLogger(t)

	Printf("buffered")
	logPath := filepath.Join(t.TempDir(), "missing", "debug.log")
	require.Error(t, SetFile(logPath))

	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	assert.True(t, globalDebugLogger.discard)
	assert.Empty(t, globalDebugLogger.buffer)
}

func TestCloseWithoutFile(t *testing.T) {
	resetDebugLogger(t)
	assert.NoError(t, Close())
}
