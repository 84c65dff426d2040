package camera

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b [3]float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestForwardRightAtZeroYawIgnorePitch(t *testing.T) {
	for _, pitch := range []float32{0, Radians(30), Radians(-60)} {
		c := New(Transform{Pitch: pitch}, DefaultSteps(), 0)
		yaw := c.Transform().Yaw
		if got := Forward(yaw); !near(got, [3]float32{1, 0, 0}) {
			t.Errorf("pitch %v: Forward() = %v, want (1,0,0)", pitch, got)
		}
		if got := Right(yaw); !near(got, [3]float32{0, 0, 1}) {
			t.Errorf("pitch %v: Right() = %v, want (0,0,1)", pitch, got)
		}
	}
}

func TestMoveForwardIgnoresPitch(t *testing.T) {
	c := New(Transform{Pitch: Radians(45)}, DefaultSteps(), 0)
	c.Apply(MoveForward)
	if got := c.Transform().Position; !near(got, [3]float32{1, 0, 0}) {
		t.Errorf("Position = %v, want (1,0,0)", got)
	}
}

func TestApplyCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want [3]float32
	}{
		{"back", MoveBack, [3]float32{-1, 0, 0}},
		{"strafe right", StrafeRight, [3]float32{0, 0, 1}},
		{"strafe left", StrafeLeft, [3]float32{0, 0, -1}},
		{"ascend", Ascend, [3]float32{0, 1, 0}},
		{"descend", Descend, [3]float32{0, -1, 0}},
		{"forward and right", MoveForward | StrafeRight, [3]float32{1, 0, 1}},
		{"cancel", MoveForward | MoveBack, [3]float32{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Transform{}, DefaultSteps(), 0)
			c.Apply(tt.cmd)
			if got := c.Transform().Position; !near(got, tt.want) {
				t.Errorf("Position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotationStepsOneDegree(t *testing.T) {
	c := New(Transform{}, DefaultSteps(), 0)
	c.Apply(YawRight)
	c.Apply(YawRight)
	c.Apply(PitchUp)
	tr := c.Transform()
	if math32.Abs(tr.Yaw-Radians(2)) > eps {
		t.Errorf("Yaw = %v, want %v", tr.Yaw, Radians(2))
	}
	if math32.Abs(tr.Pitch-Radians(1)) > eps {
		t.Errorf("Pitch = %v, want %v", tr.Pitch, Radians(1))
	}
	c.Apply(YawLeft | PitchDown)
	tr = c.Transform()
	if math32.Abs(tr.Yaw-Radians(1)) > eps || math32.Abs(tr.Pitch) > eps {
		t.Errorf("after undo: yaw %v pitch %v", tr.Yaw, tr.Pitch)
	}
}

func TestTranslationUsesYawBeforeRotation(t *testing.T) {
	c := New(Transform{}, DefaultSteps(), 0)
	c.Apply(MoveForward | YawRight)
	if got := c.Transform().Position; !near(got, [3]float32{1, 0, 0}) {
		t.Errorf("Position = %v, want (1,0,0)", got)
	}
}

func TestPitchIsClamped(t *testing.T) {
	c := New(Transform{}, Steps{Turn: Radians(60)}, 0)
	c.Apply(PitchUp)
	c.Apply(PitchUp)
	if got := c.Transform().Pitch; got > pitchLimit+eps {
		t.Errorf("Pitch = %v, want <= %v", got, pitchLimit)
	}
}

func TestSuspendedIgnoresCommands(t *testing.T) {
	c := New(Transform{}, DefaultSteps(), 0)
	c.SetMode(Suspended)
	c.Apply(MoveForward | YawRight | Ascend)
	if got := c.Transform(); got != (Transform{}) {
		t.Errorf("Transform() = %+v, want zero", got)
	}
	c.SetMode(Navigating)
	c.Apply(Ascend)
	if got := c.Transform().Position[1]; got != 1 {
		t.Errorf("Position.y = %v, want 1", got)
	}
}

func TestResizeResetsClipPlanes(t *testing.T) {
	c := New(Transform{}, DefaultSteps(), 60)
	c.projection.ZNear = 5
	c.projection.ZFar = 12

	c.Resize(800, 600)
	p := c.Projection()
	if p.Width != 800 || p.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", p.Width, p.Height)
	}
	if p.ZNear != 0.1 || p.ZFar != 10000.0 {
		t.Errorf("clip = %v/%v, want 0.1/10000", p.ZNear, p.ZFar)
	}
	if p.Fovy != 60 {
		t.Errorf("Fovy = %v, want 60", p.Fovy)
	}
	if math32.Abs(p.Aspect()-800.0/600.0) > eps {
		t.Errorf("Aspect() = %v", p.Aspect())
	}

	c.Resize(800, 600)
	if c.Projection() != p {
		t.Errorf("second Resize changed projection: %+v vs %+v", c.Projection(), p)
	}
}

func TestAspectBeforeResize(t *testing.T) {
	if got := (Projection{}).Aspect(); got != 1 {
		t.Errorf("Aspect() = %v, want 1", got)
	}
}

func TestViewTargetFollowsYawAndPitch(t *testing.T) {
	c := New(Transform{Position: [3]float32{0, 2, 0}, Yaw: Radians(90)}, DefaultSteps(), 0)
	v := c.View()
	if !near(v.Target, [3]float32{0, 2, 1}) {
		t.Errorf("Target = %v, want (0,2,1)", v.Target)
	}
	if v.Up != [3]float32{0, 1, 0} {
		t.Errorf("Up = %v", v.Up)
	}

	c = New(Transform{Pitch: Radians(45)}, DefaultSteps(), 0)
	v = c.View()
	if v.Target[1] <= 0 {
		t.Errorf("pitched Target.y = %v, want > 0", v.Target[1])
	}
}

func TestReset(t *testing.T) {
	start := Transform{Position: [3]float32{1, 2, 3}, Yaw: 0.5}
	c := New(start, DefaultSteps(), 0)
	c.Apply(MoveForward | PitchUp)
	c.Reset()
	if got := c.Transform(); got != start {
		t.Errorf("Transform() = %+v, want %+v", got, start)
	}
}
