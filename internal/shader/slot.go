// Package shader owns the two live-editable shader programs. Each slot pairs an editable source
// with the last program that compiled successfully and the outcome of the latest compile.
package shader

import "fmt"

// Slot selects which program an operation addresses.
type Slot int

const (
	InstanceSlot Slot = iota
	CustomSlot

	// NoSlot marks errors raised before a source is tied to a slot.
	NoSlot Slot = -1
)

// Slots lists every slot in a stable order.
var Slots = [...]Slot{InstanceSlot, CustomSlot}

func (s Slot) String() string {
	switch s {
	case InstanceSlot:
		return "instance"
	case CustomSlot:
		return "custom"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// Other returns the slot that is not s.
func (s Slot) Other() Slot {
	if s == InstanceSlot {
		return CustomSlot
	}
	return InstanceSlot
}

func (s Slot) valid() bool {
	return s == InstanceSlot || s == CustomSlot
}

// ParseSlot parses "instance" or "custom".
func ParseSlot(name string) (Slot, error) {
	switch name {
	case "instance":
		return InstanceSlot, nil
	case "custom":
		return CustomSlot, nil
	}
	return 0, fmt.Errorf("unknown shader slot %q (use instance or custom)", name)
}

// StatusKind is the outcome of the latest compile of a slot.
type StatusKind int

const (
	StatusPending StatusKind = iota // never compiled
	StatusOK
	StatusFailed
)

// Status is the compile status shown to the user. Reason is set when Kind is StatusFailed.
type Status struct {
	Kind   StatusKind
	Reason string
}

func (s Status) String() string {
	switch s.Kind {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed: " + s.Reason
	default:
		return "pending"
	}
}
