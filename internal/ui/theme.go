// Package ui resolves panel styles from a small CSS subset and lays panels out on the screen.
// Drawing happens in the packages that own a window; this package only computes colours and rectangles.
package ui

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed default.css
var defaultCSS string

// Theme holds the stylesheet and caches resolved styles per class/id pair.
type Theme struct {
	sheet *Stylesheet
	cache map[string]ComputedStyle
}

// NewTheme returns a theme built from the embedded default stylesheet.
func NewTheme() *Theme {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: default stylesheet: %v", err))
	}
	return &Theme{sheet: sheet, cache: make(map[string]ComputedStyle)}
}

// LoadCSS parses the file at path and layers its rules over the current ones.
func (t *Theme) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.SetStylesheet(t.sheet.Merge(sheet))
	return nil
}

// SetStylesheet replaces the stylesheet and drops cached styles.
func (t *Theme) SetStylesheet(sheet *Stylesheet) {
	t.sheet = sheet
	t.cache = make(map[string]ComputedStyle)
}

// Stylesheet returns the current stylesheet.
func (t *Theme) Stylesheet() *Stylesheet {
	return t.sheet
}

// Style resolves the style of a node with the given class and id (class rules and id rules matched; last wins).
func (t *Theme) Style(class, id string) ComputedStyle {
	key := class + "#" + id
	if s, ok := t.cache[key]; ok {
		return s
	}
	merged := make(map[string]string)
	if t.sheet != nil {
		for _, rule := range t.sheet.Rules {
			sel := rule.Selector
			matches := (sel[0] == '.' && class != "" && sel[1:] == class) ||
				(sel[0] == '#' && id != "" && sel[1:] == id)
			if !matches {
				continue
			}
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	s := ResolveProps(merged)
	t.cache[key] = s
	return s
}

// Layout sets n.Bounds from its style for a screen of the given size and returns the style.
// Percent sizes are fractions of the screen; percent positions place the node within the free space,
// so 100% keeps it flush with the right or bottom edge.
func (t *Theme) Layout(n *Node, screenW, screenH int32) ComputedStyle {
	st := t.Style(n.Class, n.ID)
	w, h := st.Width, st.Height
	if st.WidthPct >= 0 {
		w = screenW * st.WidthPct / 100
	}
	if st.HeightPct >= 0 {
		h = screenH * st.HeightPct / 100
	}
	x, y := st.Left, st.Top
	if st.LeftPct >= 0 {
		x = (screenW - w) * st.LeftPct / 100
	}
	if st.TopPct >= 0 {
		y = (screenH - h) * st.TopPct / 100
	}
	if w > 0 {
		n.Bounds.Width = float32(w)
	}
	if h > 0 {
		n.Bounds.Height = float32(h)
	}
	n.Bounds.X = float32(x)
	n.Bounds.Y = float32(y)
	return st
}
