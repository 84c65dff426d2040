package input

import (
	"testing"

	"shaderlab/internal/camera"
	"shaderlab/internal/editor"
)

type fakeKeys struct {
	down    map[Key]bool
	pressed map[Key]bool
}

func keys(down []Key, pressed []Key) *fakeKeys {
	f := &fakeKeys{down: map[Key]bool{}, pressed: map[Key]bool{}}
	for _, k := range down {
		f.down[k] = true
	}
	for _, k := range pressed {
		f.pressed[k] = true
		f.down[k] = true
	}
	return f
}

func (f *fakeKeys) Down(k Key) bool    { return f.down[k] }
func (f *fakeKeys) Pressed(k Key) bool { return f.pressed[k] }

func TestNavigatingMovesCameraAndDropsText(t *testing.T) {
	cam := camera.New(camera.Transform{}, camera.DefaultSteps(), 0)
	a := NewArbiter(DefaultKeymap(), cam, nil)
	buf := editor.NewBuffer("")

	res := a.Frame(false, keys([]Key{Letter('d')}, nil), []rune{'d'}, buf)

	if !res.Commands.Has(camera.StrafeRight) {
		t.Errorf("Commands = %b, want StrafeRight", res.Commands)
	}
	if got := cam.Transform().Position; got[2] != 1 {
		t.Errorf("camera Position = %v, want z=1", got)
	}
	if buf.Text() != "" || res.Typed != 0 {
		t.Errorf("buffer received %q while navigating", buf.Text())
	}
	if cam.Mode() != camera.Navigating {
		t.Errorf("Mode() = %v, want navigating", cam.Mode())
	}
}

func TestEditingSuspendsCameraAndTypes(t *testing.T) {
	cam := camera.New(camera.Transform{}, camera.DefaultSteps(), 0)
	a := NewArbiter(DefaultKeymap(), cam, nil)
	buf := editor.NewBuffer("")

	res := a.Frame(true, keys([]Key{Letter('d'), Letter('w')}, nil), []rune{'d', 'w'}, buf)

	if res.Commands != 0 {
		t.Errorf("Commands = %b, want none", res.Commands)
	}
	if got := cam.Transform(); got != (camera.Transform{}) {
		t.Errorf("camera moved while editing: %+v", got)
	}
	if buf.Text() != "dw" || res.Typed != 2 {
		t.Errorf("Text() = %q Typed = %d", buf.Text(), res.Typed)
	}
	if cam.Mode() != camera.Suspended {
		t.Errorf("Mode() = %v, want suspended", cam.Mode())
	}
}

func TestEditingKeys(t *testing.T) {
	cam := camera.New(camera.Transform{}, camera.DefaultSteps(), 0)
	a := NewArbiter(DefaultKeymap(), cam, nil)
	buf := editor.NewBuffer("ab")
	buf.End()

	a.Frame(true, keys(nil, []Key{KeyBackspace}), nil, buf)
	a.Frame(true, keys(nil, []Key{KeyEnter}), nil, buf)
	a.Frame(true, keys(nil, []Key{KeyTab}), nil, buf)
	a.Frame(true, keys(nil, []Key{KeyHome}), nil, buf)
	a.Frame(true, keys(nil, []Key{KeyUp}), nil, buf)
	a.Frame(true, keys(nil, []Key{KeyDelete}), nil, buf)

	if want := "\n    "; buf.Text() != want {
		t.Errorf("Text() = %q, want %q", buf.Text(), want)
	}
}

func TestCtrlEnterRequestsCompileWithoutNewline(t *testing.T) {
	cam := camera.New(camera.Transform{}, camera.DefaultSteps(), 0)
	a := NewArbiter(DefaultKeymap(), cam, nil)
	buf := editor.NewBuffer("x")

	res := a.Frame(true, keys([]Key{KeyLeftControl}, []Key{KeyEnter}), nil, buf)
	if !res.Compile {
		t.Error("Compile = false, want true")
	}
	if buf.Text() != "x" {
		t.Errorf("Text() = %q, want unchanged", buf.Text())
	}

	res = a.Frame(false, keys([]Key{KeyRightSuper}, []Key{KeyKpEnter}), nil, buf)
	if !res.Compile {
		t.Error("Compile while navigating = false, want true")
	}
}

func TestEscapeReleasesFocus(t *testing.T) {
	a := NewArbiter(DefaultKeymap(), camera.New(camera.Transform{}, camera.DefaultSteps(), 0), nil)
	res := a.Frame(true, keys(nil, []Key{KeyEscape}), nil, editor.NewBuffer(""))
	if !res.Release {
		t.Error("Release = false, want true")
	}
}

func TestResetKey(t *testing.T) {
	cam := camera.New(camera.Transform{}, camera.DefaultSteps(), 0)
	a := NewArbiter(DefaultKeymap(), cam, nil)
	a.Frame(false, keys([]Key{Letter('w')}, nil), nil, nil)
	a.Frame(false, keys(nil, []Key{Letter('r')}), nil, nil)
	if got := cam.Transform(); got != (camera.Transform{}) {
		t.Errorf("Transform() after reset = %+v", got)
	}
}

func TestRebind(t *testing.T) {
	km, err := DefaultKeymap().Rebind(map[string]string{"up": "e", "down": "q"})
	if err != nil {
		t.Fatalf("Rebind() error = %v", err)
	}
	if km[Letter('e')] != camera.Ascend || km[Letter('q')] != camera.Descend {
		t.Errorf("new bindings missing: %v", km)
	}
	if _, ok := km[KeySpace]; ok {
		t.Error("old Ascend binding on space still present")
	}
	if _, ok := DefaultKeymap()[KeySpace]; !ok {
		t.Error("Rebind mutated the source keymap")
	}

	if _, err := DefaultKeymap().Rebind(map[string]string{"jump": "space"}); err == nil {
		t.Error("unknown action accepted")
	}
	if _, err := DefaultKeymap().Rebind(map[string]string{"up": "f13"}); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestRebindConflicts(t *testing.T) {
	if km, err := DefaultKeymap().Rebind(map[string]string{"forward": "d"}); err == nil {
		t.Errorf("forward onto strafe-right key accepted: %v", km)
	}
	if _, err := DefaultKeymap().Rebind(map[string]string{"up": "e", "down": "e"}); err == nil {
		t.Error("two actions on one key accepted")
	}
	if _, err := DefaultKeymap().Rebind(map[string]string{"forward": "r"}); err == nil {
		t.Error("binding onto the reset key accepted")
	}

	// Swapping two actions is fine because both move.
	km, err := DefaultKeymap().Rebind(map[string]string{"left": "d", "right": "a"})
	if err != nil {
		t.Fatalf("swap error = %v", err)
	}
	if km[Letter('d')] != camera.StrafeLeft || km[Letter('a')] != camera.StrafeRight {
		t.Errorf("swap = %v", km)
	}
	if len(km) != len(DefaultKeymap()) {
		t.Errorf("swap changed binding count: %d", len(km))
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"W", Letter('w')},
		{"space", KeySpace},
		{" Left ", KeyLeft},
		{"7", Key('7')},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
