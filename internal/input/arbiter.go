// Package input decides, once per frame, whether the keyboard drives the camera or the shader editor.
// The same physical key must never do both in one frame.
package input

import (
	"log/slog"

	"shaderlab/internal/camera"
	"shaderlab/internal/editor"
)

// KeyState is the backend's keyboard view for the current frame.
type KeyState interface {
	// Down reports whether k is held.
	Down(k Key) bool
	// Pressed reports whether k went down this frame (or auto-repeated).
	Pressed(k Key) bool
}

// Camera is the part of the camera controller the arbiter drives.
type Camera interface {
	SetMode(m camera.Mode)
	Apply(cmds camera.Command)
	Reset()
}

// Result reports what the arbiter did this frame.
type Result struct {
	// Commands were forwarded to the camera (zero while editing).
	Commands camera.Command
	// Typed counts characters inserted into the active buffer.
	Typed int
	// Compile is set when the compile shortcut (Ctrl+Enter) was pressed.
	Compile bool
	// Release is set when Escape asked the editor to drop focus.
	Release bool
}

// Arbiter routes keyboard input either to the camera or to the active editor buffer.
type Arbiter struct {
	keymap Keymap
	cam    Camera
	log    *slog.Logger
}

// NewArbiter returns an arbiter driving cam with km. log may be nil.
func NewArbiter(km Keymap, cam Camera, log *slog.Logger) *Arbiter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Arbiter{keymap: km, cam: cam, log: log}
}

// Frame processes one frame of input. While editing, the camera is suspended and chars plus editing keys go to buf;
// otherwise chars are dropped and held keys become camera commands.
func (a *Arbiter) Frame(editing bool, keys KeyState, chars []rune, buf *editor.Buffer) Result {
	var res Result
	ctrl := keys.Down(KeyLeftControl) || keys.Down(KeyRightControl) || keys.Down(KeyLeftSuper) || keys.Down(KeyRightSuper)
	enter := keys.Pressed(KeyEnter) || keys.Pressed(KeyKpEnter)
	if ctrl && enter {
		res.Compile = true
	}

	if !editing {
		a.cam.SetMode(camera.Navigating)
		if keys.Pressed(ResetKey) && !ctrl {
			a.cam.Reset()
		}
		res.Commands = a.keymap.Commands(keys)
		a.cam.Apply(res.Commands)
		return res
	}

	a.cam.SetMode(camera.Suspended)
	if buf == nil {
		return res
	}
	if keys.Pressed(KeyEscape) {
		res.Release = true
	}
	if !ctrl {
		for _, r := range chars {
			a.log.Debug("text input", "char", string(r))
			buf.InsertRune(r)
			res.Typed++
		}
	}
	if enter && !ctrl {
		buf.Newline()
	}
	if keys.Pressed(KeyTab) {
		buf.Tab()
	}
	if keys.Pressed(KeyBackspace) {
		buf.Backspace()
	}
	if keys.Pressed(KeyDelete) {
		buf.Delete()
	}
	if keys.Pressed(KeyLeft) {
		buf.Left()
	}
	if keys.Pressed(KeyRight) {
		buf.Right()
	}
	if keys.Pressed(KeyUp) {
		buf.Up()
	}
	if keys.Pressed(KeyDown) {
		buf.Down()
	}
	if keys.Pressed(KeyHome) {
		buf.Home()
	}
	if keys.Pressed(KeyEnd) {
		buf.End()
	}
	return res
}
