// Package log is the debug logger for lazyhg. The TUI owns the terminal, so
// messages go to a file named by the debug_log setting and never to stderr.
package log

import (
	"bytes"
	"log"
	"os"
	"sync"
)

// maxBuffered caps output held before a destination is set. The newest whole
// lines are kept.
const maxBuffered = 64 << 10

// DebugLogger collects debug output. Until a destination is chosen, output is
// buffered so that messages emitted during startup are not lost.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	globalDebugLogger = &DebugLogger{}
	stdLogger         = log.New(globalDebugLogger, "lazyhg ", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (l *DebugLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.discard:
		return len(p), nil
	case l.file != nil:
		n, err := l.file.Write(p)
		_ = l.file.Sync()
		return n, err
	default:
		l.buffer = trimBuffer(append(l.buffer, p...), maxBuffered)
		return len(p), nil
	}
}

// trimBuffer drops the oldest lines of buf until it fits in limit bytes.
func trimBuffer(buf []byte, limit int) []byte {
	if len(buf) <= limit {
		return buf
	}
	tail := buf[len(buf)-limit:]
	if i := bytes.IndexByte(tail, '\n'); i >= 0 && i < len(tail)-1 {
		tail = tail[i+1:]
	}
	return append([]byte(nil), tail...)
}

// SetFile directs output to path, creating it if needed and flushing anything
// buffered so far. An empty path drops the buffer and discards future output.
func SetFile(path string) error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file != nil {
		_ = globalDebugLogger.file.Close()
		globalDebugLogger.file = nil
	}

	if path == "" {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return err
	}

	globalDebugLogger.file = f
	globalDebugLogger.discard = false
	if len(globalDebugLogger.buffer) > 0 {
		_, _ = f.Write(globalDebugLogger.buffer)
		_ = f.Sync()
		globalDebugLogger.buffer = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the log file if one is open.
func Close() error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file == nil {
		return nil
	}
	err := globalDebugLogger.file.Close()
	globalDebugLogger.file = nil
	return err
}
