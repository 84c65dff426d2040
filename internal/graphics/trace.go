package graphics

import (
	"log/slog"
	"strings"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Trace routes raylib's trace log into slog. While a capture is open, lines are also collected so the
// compiler can report the GL compile log as the failure reason.
type Trace struct {
	log *slog.Logger

	mu        sync.Mutex
	capturing bool
	captured  []string
}

// NewTrace returns a router writing to log.
func NewTrace(log *slog.Logger) *Trace {
	return &Trace{log: log}
}

// Install makes t raylib's trace log sink. Call before InitWindow to see the startup lines.
func (t *Trace) Install() {
	rl.SetTraceLogCallback(t.handle)
}

func (t *Trace) handle(level int, text string) {
	text = strings.TrimSpace(text)
	t.mu.Lock()
	if t.capturing {
		t.captured = append(t.captured, text)
	}
	t.mu.Unlock()

	switch {
	case level >= int(rl.LogError):
		t.log.Error(text, "source", "raylib")
	case level == int(rl.LogWarning):
		t.log.Warn(text, "source", "raylib")
	case level == int(rl.LogInfo):
		t.log.Info(text, "source", "raylib")
	default:
		t.log.Debug(text, "source", "raylib")
	}
}

func (t *Trace) begin() {
	t.mu.Lock()
	t.capturing = true
	t.captured = t.captured[:0]
	t.mu.Unlock()
}

func (t *Trace) end() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.capturing = false
	out := make([]string, len(t.captured))
	copy(out, t.captured)
	return out
}
