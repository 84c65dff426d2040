// Package controls draws the interactive panels: the shader editor and the control panel.
// Both run as overlays of the 2D pass and talk to the app only through its request queue and focus setter.
package controls

import (
	"fmt"
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shaderlab/internal/app"
	"shaderlab/internal/editor"
	"shaderlab/internal/render"
	"shaderlab/internal/ui"
)

const gutterDigits = 3

// EditorPanel shows the active slot's buffer with line numbers and a cursor. A click inside the panel
// focuses it (edit mode); a click anywhere else releases focus.
type EditorPanel struct {
	app    *app.App
	node   *ui.Node
	gutter *ui.Node
	cursor *ui.Node
	// first visible line; follows the cursor
	scroll int
	blink  int
	font   rl.Font
}

// NewEditorPanel returns a panel styled by .editor, .editor-focused, .editor-gutter and .editor-cursor.
func NewEditorPanel(a *app.App) *EditorPanel {
	return &EditorPanel{
		app:    a,
		node:   ui.NewNode("panel", "editor", "", ""),
		gutter: ui.NewNode("label", "editor-gutter", "", ""),
		cursor: ui.NewNode("label", "editor-cursor", "", ""),
	}
}

// SetFont sets the face used for the buffer text. A zero texture ID means raylib's default font.
func (p *EditorPanel) SetFont(f rl.Font) {
	if p.font.Texture.ID != 0 && p.font.Texture.ID != f.Texture.ID {
		rl.UnloadFont(p.font)
	}
	p.font = f
}

// Focused reports whether the editor has keyboard focus.
func (p *EditorPanel) Focused() bool {
	return p.app.State.EditMode
}

// Bounds returns the panel rectangle from the last frame.
func (p *EditorPanel) Bounds() ui.Rect {
	return p.node.Bounds
}

func (p *EditorPanel) DrawOverlay(c *render.Composer) error {
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	st := p.app.Theme.Layout(p.node, sw, sh)
	b := p.node.Bounds

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		p.app.SetEditMode(b.Contains(m.X, m.Y))
	}

	x, y, w, h := int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height)
	if st.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, st.Background)
	}
	border := st.Border
	if p.Focused() {
		border = p.app.Theme.Style("editor-focused", "").Border
	}
	if st.HasBorder {
		rl.DrawRectangleLines(x, y, w, h, border)
	}

	buf := p.app.Editors.ActiveBuffer()
	slot := p.app.Editors.Active()
	title := fmt.Sprintf("%s shader", slot)
	if p.app.Editors.Modified(slot) {
		title += " *"
	}
	if !p.Focused() {
		title += "  (click to edit)"
	} else {
		title += "  (Ctrl+Enter compiles)"
	}
	fs := st.FontSize
	lineH := fs + 2
	pad := st.Padding
	if err := c.DrawText(title, x+pad, y+pad, fs, st.Color); err != nil {
		return err
	}

	top := y + pad + lineH + 4
	visible := int((h - (top - y) - pad) / lineH)
	if visible < 1 {
		return nil
	}
	line, col := buf.Cursor()
	p.follow(line, visible)

	gst := p.app.Theme.Style(p.gutter.Class, "")
	gutterW := p.measure(strings.Repeat("0", gutterDigits), fs) + pad
	lines := buf.Lines()
	for i := p.scroll; i < len(lines) && i < p.scroll+visible; i++ {
		ly := top + int32(i-p.scroll)*lineH
		p.text(fmt.Sprintf("%*d", gutterDigits, i+1), x+pad, ly, fs, gst.Color)
		p.text(expandTabs(lines[i]), x+pad+gutterW, ly, fs, st.Color)
	}

	if p.Focused() {
		p.blink++
		if p.blink/30%2 == 0 && line >= p.scroll && line < p.scroll+visible {
			prefix := ""
			if line < len(lines) {
				if r := []rune(lines[line]); col <= len(r) {
					prefix = expandTabs(string(r[:col]))
				}
			}
			cx := x + pad + gutterW + p.measure(prefix, fs)
			cy := top + int32(line-p.scroll)*lineH
			cst := p.app.Theme.Style(p.cursor.Class, "")
			rl.DrawRectangle(cx, cy, 2, fs, opaque(cst.Background))
		}
	} else {
		p.blink = 0
	}
	return nil
}

func (p *EditorPanel) text(s string, x, y, size int32, c color.RGBA) {
	if p.font.Texture.ID != 0 {
		rl.DrawTextEx(p.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(s, x, y, size, c)
}

func (p *EditorPanel) measure(s string, size int32) int32 {
	if p.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(p.font, s, float32(size), 1).X)
	}
	return rl.MeasureText(s, size)
}

// follow scrolls so the cursor line stays visible.
func (p *EditorPanel) follow(line, visible int) {
	if line < p.scroll {
		p.scroll = line
	}
	if line >= p.scroll+visible {
		p.scroll = line - visible + 1
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}

// expandTabs widens tabs pasted into a buffer; typed tabs are already spaces.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", editor.TabWidth))
}

func opaque(c color.RGBA) color.RGBA {
	if c.A == 0 {
		c.A = 255
	}
	return c
}

var _ render.Overlay = (*EditorPanel)(nil)
