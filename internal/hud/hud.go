// Package hud draws the status panel (slots, camera, FPS) and the tail of the log.
package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shaderlab/internal/app"
	"shaderlab/internal/render"
	"shaderlab/internal/ui"
)

// updateInterval: the log tail is only re-read every N frames to limit allocations.
const updateInterval = 30

// HUD is drawn last so it stays on top of the panels.
type HUD struct {
	app     *app.App
	ShowLog bool

	nodes      []*ui.Node
	logNode    *ui.Node
	logLines   []string
	frameCount uint32
}

// New returns a HUD with the log tail visible.
func New(a *app.App) *HUD {
	return &HUD{app: a, ShowLog: true, logNode: ui.NewNode("panel", "log", "", "")}
}

func (h *HUD) DrawOverlay(c *render.Composer) error {
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	th := h.app.Theme

	h.nodes = h.app.StatusNodes(h.nodes[:0])
	var (
		x, y, pad int32
		lineH     int32
	)
	for _, n := range h.nodes {
		if n.Type == "panel" {
			st := th.Layout(n, sw, sh)
			x, y, pad = int32(n.Bounds.X), int32(n.Bounds.Y), st.Padding
			lineH = st.FontSize + 4
			if st.Background.A > 0 {
				rl.DrawRectangle(x, y, int32(n.Bounds.Width), int32(n.Bounds.Height), st.Background)
			}
			y += pad
			continue
		}
		st := th.Style(n.Class, n.ID)
		if err := c.DrawText(n.Text, x+pad, y, st.FontSize, st.Color); err != nil {
			return err
		}
		y += lineH
	}

	if !h.ShowLog {
		return nil
	}
	h.frameCount++
	if h.frameCount%updateInterval == 1 || h.logLines == nil {
		h.logLines = h.app.Log.Tail(5)
	}
	st := th.Layout(h.logNode, sw, sh)
	b := h.logNode.Bounds
	if st.Background.A > 0 {
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height), st.Background)
	}
	ly := int32(b.Y) + st.Padding
	for _, line := range h.logLines {
		if err := c.DrawText(line, int32(b.X)+st.Padding, ly, st.FontSize, st.Color); err != nil {
			return err
		}
		ly += st.FontSize + 4
	}
	return nil
}

var _ render.Overlay = (*HUD)(nil)
