package shader

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrCompile matches every CompileError with errors.Is.
var ErrCompile = errors.New("shader compile failed")

// CompileError describes why a source was rejected. Stage and Line are optional; Slot is NoSlot until the registry
// knows which slot the source belongs to.
type CompileError struct {
	Slot   Slot
	Stage  string
	Line   int
	Reason string
}

func (e *CompileError) Error() string {
	var b strings.Builder
	if e.Slot.valid() {
		b.WriteString(e.Slot.String() + " ")
	}
	b.WriteString("shader")
	if e.Stage != "" {
		b.WriteString(" (" + e.Stage)
		if e.Line > 0 {
			fmt.Fprintf(&b, " line %d", e.Line)
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// Program is an opaque compiled GPU program. The zero Program means "none"; Native holds the backend value.
type Program struct {
	ID     uint32
	Native any
}

// Valid reports whether p refers to a compiled program.
func (p Program) Valid() bool {
	return p.ID != 0
}

// Compiler turns stage sources into a GPU program. Compile returns an error instead of a fallback program.
type Compiler interface {
	Compile(slot Slot, st Stages) (Program, error)
	Release(p Program)
}

// Source is the shared editable text of a slot; the editor writes it, the registry only reads it.
type Source interface {
	Text() string
}

// SlotInfo is a read-only copy of one slot's state for display.
type SlotInfo struct {
	Slot      Slot
	Status    Status
	ProgramID uint32
	Compiles  int
	Failures  int
}

type slotState struct {
	source   Source
	program  Program
	status   Status
	compiles int
	failures int
}

// Registry owns both slots. Only Recompile writes a slot's program, and only when compilation succeeds.
type Registry struct {
	compiler Compiler
	log      *slog.Logger
	slots    [len(Slots)]slotState
}

// NewRegistry returns a registry with no compiled programs. log may be nil.
func NewRegistry(c Compiler, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Registry{compiler: c, log: log}
}

// Attach sets the shared source handle read by RecompileSource.
func (r *Registry) Attach(slot Slot, src Source) {
	r.slots[slot].source = src
}

// Source returns the attached source handle, or nil.
func (r *Registry) Source(slot Slot) Source {
	return r.slots[slot].source
}

// Program returns the last successfully compiled program of slot (zero if none ever compiled).
func (r *Registry) Program(slot Slot) Program {
	return r.slots[slot].program
}

// Status returns the outcome of the latest compile of slot.
func (r *Registry) Status(slot Slot) Status {
	return r.slots[slot].status
}

// Snapshot copies the state of every slot.
func (r *Registry) Snapshot() []SlotInfo {
	out := make([]SlotInfo, 0, len(Slots))
	for _, s := range Slots {
		st := r.slots[s]
		out = append(out, SlotInfo{
			Slot:      s,
			Status:    st.status,
			ProgramID: st.program.ID,
			Compiles:  st.compiles,
			Failures:  st.failures,
		})
	}
	return out
}

// RecompileSource recompiles slot from its attached source.
func (r *Registry) RecompileSource(slot Slot) (Program, error) {
	if !slot.valid() {
		return Program{}, fmt.Errorf("recompile: unknown slot %d", int(slot))
	}
	src := r.slots[slot].source
	if src == nil {
		return Program{}, fmt.Errorf("recompile %s: no source attached", slot)
	}
	return r.Recompile(slot, src.Text())
}

// Recompile compiles source for slot. On success the new program replaces the old one, which is
// released. On failure the old program stays bound, the status records the reason, and the error
// is a *CompileError. A panicking compiler is reported as a failure.
func (r *Registry) Recompile(slot Slot, source string) (prog Program, err error) {
	if !slot.valid() {
		return Program{}, fmt.Errorf("recompile: unknown slot %d", int(slot))
	}
	st := &r.slots[slot]
	st.compiles++

	defer func() {
		if p := recover(); p != nil {
			err = &CompileError{Slot: slot, Reason: fmt.Sprintf("compiler panic: %v", p)}
			prog = Program{}
		}
		if err != nil {
			st.failures++
			st.status = Status{Kind: StatusFailed, Reason: reasonOf(err)}
			r.log.Warn("shader compile failed", "slot", slot.String(), "error", err)
		}
	}()

	stages, err := SplitStages(source)
	if err != nil {
		return Program{}, withSlot(err, slot)
	}
	prog, err = r.compiler.Compile(slot, stages)
	if err != nil {
		return Program{}, withSlot(err, slot)
	}
	if !prog.Valid() {
		return Program{}, &CompileError{Slot: slot, Reason: "compiler returned no program"}
	}

	old := st.program
	st.program = prog
	st.status = Status{Kind: StatusOK}
	if old.Valid() && old.ID != prog.ID {
		r.compiler.Release(old)
	}
	r.log.Info("shader compiled", "slot", slot.String(), "program", prog.ID)
	return prog, nil
}

// Close releases every compiled program.
func (r *Registry) Close() {
	for i := range r.slots {
		if r.slots[i].program.Valid() {
			r.compiler.Release(r.slots[i].program)
			r.slots[i].program = Program{}
		}
	}
}

func withSlot(err error, slot Slot) error {
	var ce *CompileError
	if errors.As(err, &ce) {
		ce.Slot = slot
		return ce
	}
	return &CompileError{Slot: slot, Reason: err.Error()}
}

func reasonOf(err error) string {
	var ce *CompileError
	if errors.As(err, &ce) {
		if ce.Stage != "" {
			if ce.Line > 0 {
				return fmt.Sprintf("%s line %d: %s", ce.Stage, ce.Line, ce.Reason)
			}
			return ce.Stage + ": " + ce.Reason
		}
		return ce.Reason
	}
	return err.Error()
}
