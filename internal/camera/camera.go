// Package camera implements the first-person camera: a yaw/pitch transform moved by discrete
// per-frame commands, and the perspective projection state updated on window resize.
package camera

import "github.com/chewxy/math32"

const (
	// DefaultZNear and DefaultZFar are reapplied on every resize.
	DefaultZNear = float32(0.1)
	DefaultZFar  = float32(10000.0)
	// DefaultFovy is the vertical field of view in degrees.
	DefaultFovy = float32(45)

	// pitchLimit keeps the look direction away from the up vector.
	pitchLimit = 89 * math32.Pi / 180
)

// Mode is selected by the input arbiter; the controller never switches it itself.
type Mode int

const (
	Navigating Mode = iota
	Suspended
)

func (m Mode) String() string {
	if m == Suspended {
		return "suspended"
	}
	return "navigating"
}

// Command is a set of movement commands for one frame tick.
type Command uint16

const (
	MoveForward Command = 1 << iota
	MoveBack
	StrafeLeft
	StrafeRight
	Ascend
	Descend
	YawLeft
	YawRight
	PitchUp
	PitchDown
)

// Has reports whether all commands in x are set in c.
func (c Command) Has(x Command) bool {
	return c&x == x
}

// Transform is the camera position and orientation. Yaw and Pitch are radians.
type Transform struct {
	Position [3]float32
	Yaw      float32
	Pitch    float32
}

// Projection holds the perspective parameters. Width and Height are in pixels.
type Projection struct {
	Width  int32
	Height int32
	ZNear  float32
	ZFar   float32
	Fovy   float32
}

// Aspect returns Width/Height, or 1 before the first resize.
func (p Projection) Aspect() float32 {
	if p.Width <= 0 || p.Height <= 0 {
		return 1
	}
	return float32(p.Width) / float32(p.Height)
}

// Steps are the fixed per-tick increments: Move and Climb in world units, Turn in radians.
type Steps struct {
	Move  float32
	Climb float32
	Turn  float32
}

// DefaultSteps moves one unit and turns one degree per tick.
func DefaultSteps() Steps {
	return Steps{Move: 1, Climb: 1, Turn: Radians(1)}
}

// View is the look-at triple used to build the view matrix.
type View struct {
	Eye    [3]float32
	Target [3]float32
	Up     [3]float32
}

// Controller owns the camera transform and projection.
type Controller struct {
	transform  Transform
	home       Transform
	projection Projection
	steps      Steps
	mode       Mode
}

// New returns a navigating controller at start. fovy <= 0 uses DefaultFovy.
func New(start Transform, steps Steps, fovy float32) *Controller {
	if fovy <= 0 {
		fovy = DefaultFovy
	}
	return &Controller{
		transform:  start,
		home:       start,
		steps:      steps,
		projection: Projection{ZNear: DefaultZNear, ZFar: DefaultZFar, Fovy: fovy},
	}
}

// SetMode switches between navigating and suspended.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform {
	return c.transform
}

// Projection returns the current projection state.
func (c *Controller) Projection() Projection {
	return c.projection
}

// Forward returns the horizontal forward vector for yaw. Pitch never affects translation.
func Forward(yaw float32) [3]float32 {
	s, co := math32.Sincos(yaw)
	return normalize([3]float32{co, 0, s})
}

// Right returns the horizontal strafe vector for yaw.
func Right(yaw float32) [3]float32 {
	s, co := math32.Sincos(yaw)
	return normalize([3]float32{-s, 0, co})
}

// Apply runs one tick of movement. Translation uses the yaw from before this tick's rotation.
// Commands are ignored while suspended.
func (c *Controller) Apply(cmds Command) {
	if c.mode == Suspended || cmds == 0 {
		return
	}
	t := &c.transform
	fwd := Forward(t.Yaw)
	right := Right(t.Yaw)

	if cmds.Has(Ascend) {
		t.Position[1] += c.steps.Climb
	}
	if cmds.Has(Descend) {
		t.Position[1] -= c.steps.Climb
	}
	if cmds.Has(MoveForward) {
		t.Position = add(t.Position, fwd, c.steps.Move)
	}
	if cmds.Has(MoveBack) {
		t.Position = add(t.Position, fwd, -c.steps.Move)
	}
	if cmds.Has(StrafeRight) {
		t.Position = add(t.Position, right, c.steps.Move)
	}
	if cmds.Has(StrafeLeft) {
		t.Position = add(t.Position, right, -c.steps.Move)
	}
	if cmds.Has(YawRight) {
		t.Yaw += c.steps.Turn
	}
	if cmds.Has(YawLeft) {
		t.Yaw -= c.steps.Turn
	}
	if cmds.Has(PitchUp) {
		t.Pitch += c.steps.Turn
	}
	if cmds.Has(PitchDown) {
		t.Pitch -= c.steps.Turn
	}
	t.Pitch = clamp(t.Pitch, -pitchLimit, pitchLimit)
}

// Resize records the new viewport size and resets the clip planes.
func (c *Controller) Resize(width, height int32) {
	c.projection.Width = width
	c.projection.Height = height
	c.projection.ZNear = DefaultZNear
	c.projection.ZFar = DefaultZFar
}

// Reset moves the camera back to its start transform. Projection is kept.
func (c *Controller) Reset() {
	c.transform = c.home
}

// View returns eye, target and up for the current transform. Pitch tilts the look direction here only.
func (c *Controller) View() View {
	t := c.transform
	sy, cy := math32.Sincos(t.Yaw)
	sp, cp := math32.Sincos(t.Pitch)
	dir := [3]float32{cp * cy, sp, cp * sy}
	return View{
		Eye:    t.Position,
		Target: add(t.Position, dir, 1),
		Up:     [3]float32{0, 1, 0},
	}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

func add(a, b [3]float32, s float32) [3]float32 {
	return [3]float32{a[0] + b[0]*s, a[1] + b[1]*s, a[2] + b[2]*s}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
