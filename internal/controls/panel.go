package controls

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shaderlab/internal/app"
	"shaderlab/internal/render"
	"shaderlab/internal/shader"
	"shaderlab/internal/ui"
)

const (
	rowHeight = 24
	rowGap    = 6
)

// ControlPanel holds the slot toggle and the action buttons. Every button queues a command line,
// so the panel and the keyboard shortcuts share one code path.
type ControlPanel struct {
	app  *app.App
	node *ui.Node
}

// NewControlPanel returns a panel styled by .controls and applies the theme to raygui.
func NewControlPanel(a *app.App) *ControlPanel {
	p := &ControlPanel{app: a, node: ui.NewNode("panel", "controls", "", "")}
	st := a.Theme.Style("controls", "")
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(st.Background))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 50, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(60, 60, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(70, 80, 90, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 200, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(st.Border))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
	return p
}

func (p *ControlPanel) DrawOverlay(c *render.Composer) error {
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	st := p.app.Theme.Layout(p.node, sw, sh)
	b := p.node.Bounds
	if st.Background.A > 0 {
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height), st.Background)
	}
	if st.HasBorder {
		rl.DrawRectangleLines(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height), st.Border)
	}

	pad := float32(st.Padding)
	w := b.Width - 2*pad
	half := (w - rowGap) / 2
	y := b.Y + pad
	row := func(x, width float32) rl.Rectangle {
		return rl.Rectangle{X: x, Y: y, Width: width, Height: rowHeight}
	}
	next := func() { y += rowHeight + rowGap }

	custom := p.app.Editors.Active() == shader.CustomSlot
	label := "Editing: instance"
	if custom {
		label = "Editing: custom"
	}
	if gui.Toggle(row(b.X+pad, w), label, custom) != custom {
		p.app.Request("toggle")
	}
	next()

	if gui.Button(row(b.X+pad, half), "Compile") {
		p.app.Request("compile")
	}
	if gui.Button(row(b.X+pad+half+rowGap, half), "Reset") {
		p.app.Request("reset")
	}
	next()

	if gui.Button(row(b.X+pad, half), "Capture") {
		p.app.Request("capture")
	}
	if gui.Button(row(b.X+pad+half+rowGap, half), "Camera") {
		p.app.Request("camera")
	}
	next()

	mod := &p.app.Composer.Modifier
	mod.Scale = gui.Slider(row(b.X+pad+40, w-80), "Scale", fmt.Sprintf("%.1f", mod.Scale), mod.Scale, 0.5, 4)
	next()

	if gui.Button(row(b.X+pad, w), "Quit") {
		p.app.Request("quit")
	}
	return nil
}

var _ render.Overlay = (*ControlPanel)(nil)
