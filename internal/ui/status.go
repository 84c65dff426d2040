package ui

import "fmt"

// SlotLine is one shader slot as shown in the status panel.
type SlotLine struct {
	Name     string
	Status   string
	Failed   bool
	Modified bool
	Active   bool
}

// Readout is the data shown by the status panel. Pass it from the app layer; ui does not depend on
// the shader or camera packages.
type Readout struct {
	Slots    []SlotLine
	Editing  bool
	Position [3]float32
	YawDeg   float32
	PitchDeg float32
	FPS      int32
	ShowFPS  bool
}

// StatusPanel owns the labels of the status panel and rewrites their text on every AppendNodes call.
type StatusPanel struct {
	panel  *Node
	mode   *Node
	slots  []*Node
	camera *Node
	fps    *Node
}

// NewStatusPanel creates a panel styled by .hud, .hud-ok and .hud-failed.
func NewStatusPanel() *StatusPanel {
	return &StatusPanel{
		panel:  NewNode("panel", "hud", "", ""),
		mode:   NewNode("label", "hud", "hud-mode", ""),
		camera: NewNode("label", "hud", "hud-camera", ""),
		fps:    NewNode("label", "hud", "hud-fps", ""),
	}
}

// AppendNodes appends the panel nodes to dst when visible is true, after updating labels from r.
func (s *StatusPanel) AppendNodes(dst []*Node, visible bool, r Readout) []*Node {
	if !visible {
		return dst
	}
	if r.Editing {
		s.mode.Text = "Mode: editing (Esc to release)"
	} else {
		s.mode.Text = "Mode: camera"
	}
	for len(s.slots) < len(r.Slots) {
		s.slots = append(s.slots, NewNode("label", "hud-ok", "", ""))
	}
	s.slots = s.slots[:len(r.Slots)]
	for i, sl := range r.Slots {
		n := s.slots[i]
		marker := "  "
		if sl.Active {
			marker = "> "
		}
		text := fmt.Sprintf("%s%s: %s", marker, sl.Name, sl.Status)
		if sl.Modified {
			text += " (modified)"
		}
		n.Text = text
		n.Class = "hud-ok"
		if sl.Failed {
			n.Class = "hud-failed"
		}
	}
	s.camera.Text = fmt.Sprintf("Camera: %.1f, %.1f, %.1f  yaw %.0f pitch %.0f",
		r.Position[0], r.Position[1], r.Position[2], r.YawDeg, r.PitchDeg)

	dst = append(dst, s.panel, s.mode)
	dst = append(dst, s.slots...)
	dst = append(dst, s.camera)
	if r.ShowFPS {
		s.fps.Text = fmt.Sprintf("FPS: %d", r.FPS)
		dst = append(dst, s.fps)
	}
	return dst
}
