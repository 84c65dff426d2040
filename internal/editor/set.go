package editor

import "shaderlab/internal/shader"

// Set holds one buffer per shader slot and the slot being edited.
// Switching the active slot never touches the other buffer.
type Set struct {
	buffers [len(shader.Slots)]*Buffer
	active  shader.Slot
	// compiled is the buffer revision at the last successful compile, per slot.
	compiled [len(shader.Slots)]uint64
}

// NewSet fills each buffer with the slot's default source. The instance slot starts active.
func NewSet() *Set {
	s := &Set{active: shader.InstanceSlot}
	for _, slot := range shader.Slots {
		s.buffers[slot] = NewBuffer(shader.Default(slot))
	}
	return s
}

// Buffer returns the buffer of slot.
func (s *Set) Buffer(slot shader.Slot) *Buffer {
	return s.buffers[slot]
}

// Active returns the slot being edited.
func (s *Set) Active() shader.Slot {
	return s.active
}

// ActiveBuffer returns the buffer of the active slot.
func (s *Set) ActiveBuffer() *Buffer {
	return s.buffers[s.active]
}

// SetActive selects the slot being edited.
func (s *Set) SetActive(slot shader.Slot) {
	s.active = slot
}

// Toggle switches to the other slot and returns it.
func (s *Set) Toggle() shader.Slot {
	s.active = s.active.Other()
	return s.active
}

// Reset restores the default source of slot.
func (s *Set) Reset(slot shader.Slot) {
	s.buffers[slot].SetText(shader.Default(slot))
}

// MarkCompiled records that slot's current text compiled successfully.
func (s *Set) MarkCompiled(slot shader.Slot) {
	s.compiled[slot] = s.buffers[slot].Revision()
}

// Modified reports whether slot was edited after its last successful compile.
func (s *Set) Modified(slot shader.Slot) bool {
	return s.buffers[slot].Revision() != s.compiled[slot]
}
