// Package graphics is the raylib backend: the window and frame loop, keyboard polling, the GPU shader
// compiler and the render device. Nothing outside this package and the drawing panels calls raylib.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window configures the window opened by Run.
type Window struct {
	Width     int32
	Height    int32
	Title     string
	TargetFPS int32
}

// Loop holds the per-frame callbacks of Run.
type Loop struct {
	// Init runs once after the GL context exists, before the first frame.
	Init func() error
	// Update runs before drawing; returning false ends the loop.
	Update func() bool
	// Draw runs between BeginDrawing and EndDrawing.
	Draw func()
	// Close runs before the window is destroyed.
	Close func()
}

// Run opens a resizable window and runs the loop until Update returns false or the window is closed.
// Escape is left to the application (it releases editor focus), so raylib's exit key is disabled.
func Run(w Window, loop Loop) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)

	if loop.Close != nil {
		defer loop.Close()
	}
	if loop.Init != nil {
		if err := loop.Init(); err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() {
		if loop.Update != nil && !loop.Update() {
			break
		}

		rl.BeginDrawing()
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	return nil
}

// ScreenSize returns the current render size in pixels.
func ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Resized reports whether the window size changed since the previous frame.
func Resized() bool {
	return rl.IsWindowResized()
}

// Time returns the seconds elapsed since the window opened.
func Time() float32 {
	return float32(rl.GetTime())
}

// FPS returns raylib's frame rate estimate.
func FPS() int32 {
	return rl.GetFPS()
}
