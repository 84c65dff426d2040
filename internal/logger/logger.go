package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultFilePath is the log file path, relative to the working directory.
const DefaultFilePath = "logs/shaderlab.txt"

// maxLines bounds the in-memory history drawn by the HUD.
const maxLines = 256

// Logger stores recent lines in memory (for the on-screen log) and appends every line to a file on disk.
// It also serves as the sink of a slog.Logger so packages can log with key/value attributes.
// Log may be called from raylib's trace callback, hence the mutex.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	level slog.LevelVar
	now   func() time.Time
}

// New returns a Logger appending to path (empty = memory only) and ensures the log directory exists.
func New(path string, level slog.Level) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	l := &Logger{lines: make([]string, 0, maxLines), path: path, now: time.Now}
	l.level.Set(level)
	return l
}

// SetLevel changes the minimum level of the slog view.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Log appends a line prefixed with [timestamp] and appends it to the log file.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	if len(l.lines) == maxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLines-1]
	}
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Write implements io.Writer; each non-empty line of p becomes one log line.
func (l *Logger) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte{'\n'}) {
		if s := strings.TrimSpace(string(line)); s != "" {
			l.Log(s)
		}
	}
	return len(p), nil
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns a copy of the last n stored lines.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Slog returns a structured logger writing into l. The time attribute is dropped since Log stamps every line.
func (l *Logger) Slog() *slog.Logger {
	h := slog.NewTextHandler(l, &slog.HandlerOptions{
		Level: &l.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h)
}

// ParseLevel parses "debug", "info", "warn" or "error". Unknown values return info and false.
func ParseLevel(s string) (slog.Level, bool) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}
