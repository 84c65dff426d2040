// Package app owns the process-wide state and runs one frame at a time: input, queued commands, then drawing.
package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"shaderlab/internal/batch"
	"shaderlab/internal/camera"
	"shaderlab/internal/capture"
	"shaderlab/internal/commands"
	"shaderlab/internal/config"
	"shaderlab/internal/editor"
	"shaderlab/internal/input"
	"shaderlab/internal/logger"
	"shaderlab/internal/mesh"
	"shaderlab/internal/render"
	"shaderlab/internal/shader"
	"shaderlab/internal/ui"
)

// State is the mutable process-wide state. Each field has one writer: the editor panel sets EditMode
// (Escape in the arbiter clears it on the panel's behalf), the quit command sets Quit, Draw advances Frame.
// The active slot lives in Editors.
type State struct {
	EditMode bool
	Quit     bool
	Frame    uint64
}

// Deps are the backend pieces the app cannot build itself.
type Deps struct {
	Prefs    config.Prefs
	Compiler shader.Compiler
	Device   render.Device
	Log      *logger.Logger
	// Screenshot returns the current frame; nil disables the capture command.
	Screenshot func() image.Image
}

// Input is one frame of backend input.
type Input struct {
	Keys    input.KeyState
	Chars   []rune
	Resized bool
	Width   int32
	Height  int32
	FPS     int32
}

// App wires every component together.
type App struct {
	State State

	Editors  *editor.Set
	Shaders  *shader.Registry
	Camera   *camera.Controller
	Meshes   *mesh.Store
	Composer *render.Composer
	Commands *commands.Registry
	Theme    *ui.Theme
	Log      *logger.Logger

	prefs      config.Prefs
	log        *slog.Logger
	arbiter    *input.Arbiter
	status     *ui.StatusPanel
	pending    []string
	shots      *capture.Writer
	screenshot func() image.Image
	shotScale  float64
	shotWanted bool
	fps        int32
}

// New builds the app and compiles both default shaders. A default that fails to compile is logged,
// not fatal: its slot draws with the device default shader until a compile succeeds.
func New(d Deps) (*App, error) {
	if d.Compiler == nil || d.Device == nil {
		return nil, errors.New("app: compiler and device are required")
	}
	lg := d.Log
	if lg == nil {
		lg = logger.New("", slog.LevelInfo)
	}
	p := d.Prefs
	log := lg.Slog()

	km, err := input.DefaultKeymap().Rebind(p.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	mod := batch.DefaultModifier()
	if p.Batch.Scale > 0 {
		mod.Scale = p.Batch.Scale
	}
	if p.Batch.Color != "" {
		c, ok := ui.ParseHexColor(p.Batch.Color)
		if !ok {
			return nil, fmt.Errorf("batch colour %q: want #rgb or #rrggbb", p.Batch.Color)
		}
		mod.Color = c
	}

	start := camera.Transform{
		Position: p.Camera.Start,
		Yaw:      camera.Radians(p.Camera.YawDeg),
		Pitch:    camera.Radians(p.Camera.PitchDeg),
	}
	steps := camera.Steps{Move: p.Camera.MoveStep, Climb: p.Camera.ClimbStep, Turn: camera.Radians(p.Camera.TurnDeg)}
	cam := camera.New(start, steps, p.Camera.Fovy)
	cam.Resize(p.Window.Width, p.Window.Height)

	a := &App{
		Editors:    editor.NewSet(),
		Shaders:    shader.NewRegistry(d.Compiler, log.With("component", "shader")),
		Camera:     cam,
		Meshes:     mesh.NewStore(),
		Commands:   commands.NewRegistry(),
		Theme:      ui.NewTheme(),
		Log:        lg,
		prefs:      p,
		log:        log,
		arbiter:    input.NewArbiter(km, cam, log.With("component", "input")),
		status:     ui.NewStatusPanel(),
		shots:      capture.NewWriter(p.Capture),
		screenshot: d.Screenshot,
	}
	a.Composer = render.NewComposer(d.Device, a.Shaders, cam, a.Meshes, log.With("component", "render"))
	a.Composer.Modifier = mod
	if p.Style != "" {
		if err := a.Theme.LoadCSS(p.Style); err != nil {
			log.Warn("stylesheet not loaded", "path", p.Style, "error", err)
		}
	}
	for _, s := range shader.Slots {
		a.Shaders.Attach(s, a.Editors.Buffer(s))
	}
	a.registerCommands()

	for _, s := range shader.Slots {
		if err := a.compile(s); err != nil {
			log.Error("default shader rejected", "slot", s.String(), "error", err)
		}
	}
	for _, line := range p.Startup {
		a.Request(line)
	}
	return a, nil
}

// Request queues a command line; queued commands run at the start of the next Update.
func (a *App) Request(line string) {
	a.pending = append(a.pending, line)
}

// SetEditMode is called by the editor panel when it gains or loses focus.
func (a *App) SetEditMode(on bool) {
	if a.State.EditMode != on {
		a.log.Debug("edit mode", "on", on)
	}
	a.State.EditMode = on
}

// Update runs input routing and queued commands for one frame. It returns false once quit was requested.
func (a *App) Update(in Input) bool {
	a.fps = in.FPS
	if in.Resized {
		a.Camera.Resize(in.Width, in.Height)
		a.log.Debug("resized", "width", in.Width, "height", in.Height)
	}
	if in.Keys != nil {
		res := a.arbiter.Frame(a.State.EditMode, in.Keys, in.Chars, a.Editors.ActiveBuffer())
		if res.Release {
			a.SetEditMode(false)
		}
		if res.Compile {
			a.Request("compile")
		}
	}
	a.runPending()
	return !a.State.Quit
}

func (a *App) runPending() {
	queue := a.pending
	a.pending = nil
	for _, line := range queue {
		if err := a.Commands.Run(line); err != nil && !errors.Is(err, shader.ErrCompile) {
			// compile failures were already logged by the registry
			a.log.Warn("command failed", "command", line, "error", err)
		}
	}
}

// Draw renders the frame and, when requested, captures it afterwards.
func (a *App) Draw(t float32) {
	_ = a.Composer.Draw(render.Frame{Index: a.State.Frame, Time: t})
	a.State.Frame++
	if a.shotWanted {
		a.shotWanted = false
		a.saveScreenshot()
	}
}

func (a *App) saveScreenshot() {
	if a.screenshot == nil {
		a.log.Warn("capture unavailable")
		return
	}
	path, err := a.shots.Save(a.screenshot(), a.shotScale)
	if err != nil {
		a.log.Error("capture failed", "error", err)
		return
	}
	a.log.Info("frame captured", "path", path)
}

// compile recompiles slot from its buffer and marks the buffer clean on success.
func (a *App) compile(slot shader.Slot) error {
	if _, err := a.Shaders.RecompileSource(slot); err != nil {
		return err
	}
	a.Editors.MarkCompiled(slot)
	return nil
}

// Readout collects what the status panel shows.
func (a *App) Readout() ui.Readout {
	var r ui.Readout
	for _, info := range a.Shaders.Snapshot() {
		r.Slots = append(r.Slots, ui.SlotLine{
			Name:     info.Slot.String(),
			Status:   info.Status.String(),
			Failed:   info.Status.Kind == shader.StatusFailed,
			Modified: a.Editors.Modified(info.Slot),
			Active:   info.Slot == a.Editors.Active(),
		})
	}
	tr := a.Camera.Transform()
	r.Editing = a.State.EditMode
	r.Position = tr.Position
	r.YawDeg = camera.Degrees(tr.Yaw)
	r.PitchDeg = camera.Degrees(tr.Pitch)
	r.FPS = a.fps
	r.ShowFPS = a.prefs.ShowFPS
	return r
}

// StatusNodes returns the status panel nodes for the current state.
func (a *App) StatusNodes(dst []*ui.Node) []*ui.Node {
	return a.status.AppendNodes(dst, true, a.Readout())
}

// Prefs returns the preferences the app was built with.
func (a *App) Prefs() config.Prefs {
	return a.prefs
}

// Close releases the compiled programs.
func (a *App) Close() {
	a.Shaders.Close()
}
