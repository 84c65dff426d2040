package editor

import (
	"testing"

	"shaderlab/internal/shader"
)

func TestToggleKeepsOtherSlotText(t *testing.T) {
	s := NewSet()
	if s.Active() != shader.InstanceSlot {
		t.Fatalf("Active() = %v, want instance", s.Active())
	}
	s.ActiveBuffer().Insert("// unsaved edit\n")
	instanceText := s.Buffer(shader.InstanceSlot).Text()

	if got := s.Toggle(); got != shader.CustomSlot {
		t.Fatalf("Toggle() = %v, want custom", got)
	}
	s.ActiveBuffer().Insert("broken(")
	s.Toggle()

	if got := s.Buffer(shader.InstanceSlot).Text(); got != instanceText {
		t.Errorf("instance text changed across toggles:\n%q\nwant\n%q", got, instanceText)
	}
	if got := s.Buffer(shader.CustomSlot).Text(); got != "broken("+shader.Default(shader.CustomSlot) {
		t.Errorf("custom text = %q", got)
	}
}

func TestModifiedTracksCompiledRevision(t *testing.T) {
	s := NewSet()
	if s.Modified(shader.CustomSlot) {
		t.Error("fresh buffer reported modified")
	}
	s.Buffer(shader.CustomSlot).Insert("x")
	if !s.Modified(shader.CustomSlot) {
		t.Error("edited buffer not reported modified")
	}
	s.MarkCompiled(shader.CustomSlot)
	if s.Modified(shader.CustomSlot) {
		t.Error("buffer still modified after MarkCompiled")
	}
	if s.Modified(shader.InstanceSlot) {
		t.Error("other slot reported modified")
	}
}

func TestReset(t *testing.T) {
	s := NewSet()
	s.Buffer(shader.CustomSlot).SetText("nothing")
	s.Reset(shader.CustomSlot)
	if got := s.Buffer(shader.CustomSlot).Text(); got != shader.Default(shader.CustomSlot) {
		t.Errorf("Reset left %q", got)
	}
}
