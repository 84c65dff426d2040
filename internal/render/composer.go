package render

import (
	"fmt"
	"image/color"
	"log/slog"

	"shaderlab/internal/batch"
	"shaderlab/internal/camera"
	"shaderlab/internal/mesh"
	"shaderlab/internal/shader"
)

// StatusText is drawn at StatusX, StatusY once the 3D pass is closed.
const (
	StatusText = "You can mix 3d and 2d drawing;"
	StatusX    = 10
	StatusY    = 210
	StatusSize = 20
)

// Background is the clear colour of the 3D pass (0.25 grey).
var Background = color.RGBA{R: 64, G: 64, B: 64, A: 255}

// ProgramSource yields the current program per slot; shader.Registry satisfies it.
type ProgramSource interface {
	Program(slot shader.Slot) shader.Program
}

// CameraSource yields the view and projection; camera.Controller satisfies it.
type CameraSource interface {
	View() camera.View
	Projection() camera.Projection
}

// Overlay draws on top of the frame during the 2D pass.
type Overlay interface {
	DrawOverlay(c *Composer) error
}

// OverlayFunc adapts a function to Overlay.
type OverlayFunc func(c *Composer) error

func (f OverlayFunc) DrawOverlay(c *Composer) error {
	return f(c)
}

// Frame identifies the frame being drawn.
type Frame struct {
	Index uint64
	Time  float32
}

// Composer issues the draw calls of one frame in a fixed order.
type Composer struct {
	dev      Device
	programs ProgramSource
	cam      CameraSource
	meshes   *mesh.Store
	log      *slog.Logger
	guard    passGuard
	overlays []Overlay
	count    int

	Modifier batch.Modifier
	Status   string
}

// NewComposer wires the composer to its sources. log may be nil.
func NewComposer(dev Device, programs ProgramSource, cam CameraSource, meshes *mesh.Store, log *slog.Logger) *Composer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Composer{
		dev:      dev,
		programs: programs,
		cam:      cam,
		meshes:   meshes,
		log:      log,
		count:    batch.DefaultCount,
		Modifier: batch.DefaultModifier(),
		Status:   StatusText,
	}
}

// AddOverlay appends o to the 2D pass. Overlays run in the order they were added.
func (c *Composer) AddOverlay(o Overlay) {
	c.overlays = append(c.overlays, o)
}

// Draw renders one frame. Pass-order errors are logged and returned; the device is always left with
// no open pass.
func (c *Composer) Draw(f Frame) error {
	if c.guard.open != passNone {
		err := fmt.Errorf("frame %d: draw while %s pass open: %w", f.Index, c.guard.open, ErrPassOrder)
		c.log.Error("render", "error", err)
		return err
	}
	c.guard.reset()
	err := c.compose(f)
	switch c.guard.open {
	case pass3D:
		c.dev.End3D()
	case pass2D:
		c.dev.End2D()
	}
	c.guard.open = passNone
	if err != nil {
		c.log.Error("render", "frame", f.Index, "error", err)
	}
	return err
}

func (c *Composer) compose(f Frame) error {
	proj := c.cam.Projection()
	u := Uniforms{Time: f.Time, Resolution: [2]float32{float32(proj.Width), float32(proj.Height)}}

	if err := c.guard.begin(pass3D); err != nil {
		return err
	}
	c.dev.Begin3D(c.cam.View(), proj)
	c.dev.Clear(Background)

	c.dev.BindShader(c.programs.Program(shader.CustomSlot), u)
	c.dev.DrawMesh(c.meshes.Cube(), Identity)

	c.dev.BindShader(c.programs.Program(shader.InstanceSlot), u)
	records := batch.Regenerate(f.Index, c.count)
	c.dev.DrawInstanced(c.meshes.Pyramid(), batch.Transforms(records, c.Modifier), batch.Colors(records, c.Modifier))

	if err := c.guard.end(pass3D); err != nil {
		return err
	}
	c.dev.End3D()

	if err := c.guard.begin(pass2D); err != nil {
		return err
	}
	c.dev.Begin2D()
	if c.Status != "" {
		c.dev.DrawText(c.Status, StatusX, StatusY, StatusSize, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	for _, o := range c.overlays {
		if err := o.DrawOverlay(c); err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
	}
	if err := c.guard.end(pass2D); err != nil {
		return err
	}
	c.dev.End2D()
	return nil
}

// DrawText draws text during the 2D pass. Outside it the call is rejected with ErrPassOrder.
func (c *Composer) DrawText(text string, x, y, size int32, col color.RGBA) error {
	if err := c.guard.require(pass2D); err != nil {
		return err
	}
	c.dev.DrawText(text, x, y, size, col)
	return nil
}
