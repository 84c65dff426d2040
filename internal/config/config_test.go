package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Window.Width != 800 || p.Camera.YawDeg != 90 || p.Batch.Scale != 2 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	data := `
window:
  width: 1024
camera:
  start: [1, 2, 3]
keys:
  forward: up
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Window.Width != 1024 {
		t.Errorf("width = %d, want 1024", p.Window.Width)
	}
	if p.Window.Height != 600 || p.Window.Title != "shaderlab" {
		t.Errorf("unset window fields lost defaults: %+v", p.Window)
	}
	if p.Camera.Start != [3]float32{1, 2, 3} || p.Camera.Fovy != 45 {
		t.Errorf("camera = %+v", p.Camera)
	}
	if p.Keys["forward"] != "up" {
		t.Errorf("keys = %v", p.Keys)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"syntax.yaml": "window: [",
		"range.yaml":  "camera:\n  fovy: 0\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		p, err := Load(path)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", name, err)
		}
		if p.Camera.Fovy != Default().Camera.Fovy {
			t.Errorf("%s: not reset to defaults: %+v", name, p.Camera)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	p := Default()
	p.Keys = map[string]string{"yaw_left": "q"}
	p.Startup = []string{"compile --slot custom"}
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Keys["yaw_left"] != "q" || len(got.Startup) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	p.Keys = map[string]string{"forward": "w"}
	p.Startup = []string{"compile"}
	c := p.Clone()
	c.Keys["forward"] = "up"
	c.Startup[0] = "quit"
	c.Window.Width = 1
	if p.Keys["forward"] != "w" || p.Startup[0] != "compile" || p.Window.Width != 800 {
		t.Errorf("Clone shares state with its source: %+v", p)
	}
}

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestWithEnv(t *testing.T) {
	p, err := WithEnv(Default(), lookupFrom(map[string]string{EnvLogLevel: "debug", EnvFPS: "30"}))
	if err != nil {
		t.Fatal(err)
	}
	if p.Log.Level != "debug" || p.Window.TargetFPS != 30 {
		t.Errorf("overrides not applied: %+v %+v", p.Log, p.Window)
	}
	if _, err := WithEnv(Default(), lookupFrom(map[string]string{EnvFPS: "fast"})); err == nil {
		t.Error("bad FPS accepted")
	}
}

func TestPathFromEnv(t *testing.T) {
	if got := PathFromEnv(lookupFrom(nil)); got != DefaultPath {
		t.Errorf("default path = %q", got)
	}
	if got := PathFromEnv(lookupFrom(map[string]string{EnvConfig: "x.yaml"})); got != "x.yaml" {
		t.Errorf("env path = %q", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# comment\n\nSHADERLAB_TEST_A=one\nexport SHADERLAB_TEST_B=\"two words\"\nSHADERLAB_TEST_C=file\nbroken\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHADERLAB_TEST_A", "")
	os.Unsetenv("SHADERLAB_TEST_A")
	t.Setenv("SHADERLAB_TEST_B", "")
	os.Unsetenv("SHADERLAB_TEST_B")
	t.Setenv("SHADERLAB_TEST_C", "env")
	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("SHADERLAB_TEST_A"); got != "one" {
		t.Errorf("A = %q", got)
	}
	if got := os.Getenv("SHADERLAB_TEST_B"); got != "two words" {
		t.Errorf("B = %q", got)
	}
	if got := os.Getenv("SHADERLAB_TEST_C"); got != "env" {
		t.Errorf("C = %q, existing variable overwritten", got)
	}
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("missing file: %v", err)
	}
}
