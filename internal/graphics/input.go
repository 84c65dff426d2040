package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shaderlab/internal/input"
)

// Keys reads the raylib keyboard state. Pressed includes auto-repeat so held editing keys repeat.
type Keys struct{}

func (Keys) Down(k input.Key) bool {
	return rl.IsKeyDown(int32(k))
}

func (Keys) Pressed(k input.Key) bool {
	return rl.IsKeyPressed(int32(k)) || rl.IsKeyPressedRepeat(int32(k))
}

// Chars drains the characters typed since the previous frame.
func Chars() []rune {
	var out []rune
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		out = append(out, rune(c))
	}
	return out
}

// Mouse returns the cursor position and whether the left button went down this frame.
func Mouse() (x, y float32, clicked bool) {
	p := rl.GetMousePosition()
	return p.X, p.Y, rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}
