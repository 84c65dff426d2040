package input

import (
	"fmt"
	"sort"
	"strings"

	"shaderlab/internal/camera"
)

// Key is a keyboard key code. Values match raylib's KeyboardKey constants.
type Key int32

const (
	KeyNull         Key = 0
	KeySpace        Key = 32
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyKpEnter      Key = 335
	KeyLeftControl  Key = 341
	KeyLeftSuper    Key = 343
	KeyRightControl Key = 345
	KeyRightSuper   Key = 347
)

// Letter returns the key code of an ASCII letter (either case).
func Letter(r rune) Key {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return Key(r)
}

var namedKeys = map[string]Key{
	"space":  KeySpace,
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"home":   KeyHome,
	"end":    KeyEnd,
	"tab":    KeyTab,
	"enter":  KeyEnter,
	"escape": KeyEscape,
}

// ParseKey accepts a single letter or digit, or a name such as "space" or "left".
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		c := rune(n[0])
		switch {
		case c >= 'a' && c <= 'z':
			return Letter(c), nil
		case c >= '0' && c <= '9':
			return Key(c), nil
		}
	}
	return KeyNull, fmt.Errorf("unknown key %q", name)
}

// Actions maps binding names (as written in the config file) to camera commands.
var Actions = map[string]camera.Command{
	"forward":    camera.MoveForward,
	"back":       camera.MoveBack,
	"left":       camera.StrafeLeft,
	"right":      camera.StrafeRight,
	"up":         camera.Ascend,
	"down":       camera.Descend,
	"yaw_left":   camera.YawLeft,
	"yaw_right":  camera.YawRight,
	"pitch_up":   camera.PitchUp,
	"pitch_down": camera.PitchDown,
}

// Keymap binds held keys to camera commands.
type Keymap map[Key]camera.Command

// DefaultKeymap is WASD to move, Space/C to climb, arrows to look.
func DefaultKeymap() Keymap {
	return Keymap{
		Letter('w'): camera.MoveForward,
		Letter('s'): camera.MoveBack,
		Letter('a'): camera.StrafeLeft,
		Letter('d'): camera.StrafeRight,
		KeySpace:    camera.Ascend,
		Letter('c'): camera.Descend,
		KeyLeft:     camera.YawLeft,
		KeyRight:    camera.YawRight,
		KeyUp:       camera.PitchUp,
		KeyDown:     camera.PitchDown,
	}
}

// ResetKey returns the camera to its start pose. No action may be bound to it.
var ResetKey = Letter('r')

// Rebind returns a copy of km where each action in bindings (action name -> key name) is moved to its new key.
// A key already held by an action that is not itself moved is a conflict and fails the whole rebind.
func (km Keymap) Rebind(bindings map[string]string) (Keymap, error) {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	keys := make(map[string]Key, len(names))
	var moved camera.Command
	for _, name := range names {
		cmd, ok := Actions[name]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		key, err := ParseKey(bindings[name])
		if err != nil {
			return nil, fmt.Errorf("keymap: %s: %w", name, err)
		}
		if key == ResetKey {
			return nil, fmt.Errorf("keymap: %s: key %q is reserved for camera reset", name, bindings[name])
		}
		keys[name] = key
		moved |= cmd
	}

	out := make(Keymap, len(km))
	for k, c := range km {
		if c&moved == 0 {
			out[k] = c
		}
	}
	for _, name := range names {
		key := keys[name]
		if held, ok := out[key]; ok {
			return nil, fmt.Errorf("keymap: %s: key %q already bound to %s", name, bindings[name], actionName(held))
		}
		out[key] = Actions[name]
	}
	return out, nil
}

func actionName(cmd camera.Command) string {
	for name, c := range Actions {
		if c == cmd {
			return name
		}
	}
	return fmt.Sprintf("command %d", cmd)
}

// Commands polls every bound key and returns the union of commands whose key is held.
func (km Keymap) Commands(keys KeyState) camera.Command {
	var cmds camera.Command
	for k, c := range km {
		if keys.Down(k) {
			cmds |= c
		}
	}
	return cmds
}
