package graphics

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shaderlab/internal/shader"
)

// Compiled is the backend value stored in shader.Program.Native.
type Compiled struct {
	Shader rl.Shader
	// uniform and attribute locations, -1 when the program does not declare them
	locTime       int32
	locResolution int32
	locColors     int32
	locInstance   int32
}

// Instanced reports whether the program reads per-instance transforms.
func (c *Compiled) Instanced() bool {
	return c.locInstance >= 0
}

// Compiler builds GPU programs with raylib. A failed build is detected by raylib falling back to its
// default shader; the GL compile log captured from the trace callback becomes the error reason.
type Compiler struct {
	trace     *Trace
	defaultID uint32
}

// NewCompiler returns a compiler reading compile logs through trace.
func NewCompiler(trace *Trace) *Compiler {
	return &Compiler{trace: trace}
}

func (c *Compiler) Compile(slot shader.Slot, st shader.Stages) (shader.Program, error) {
	c.trace.begin()
	s := rl.LoadShaderFromMemory(st.Vertex, st.Fragment)
	lines := c.trace.end()

	if s.ID == 0 || s.ID == c.defaultShaderID() || !rl.IsShaderValid(s) {
		stage, reason := failureReason(lines)
		return shader.Program{}, &shader.CompileError{Slot: slot, Stage: stage, Reason: reason}
	}

	comp := &Compiled{
		Shader:        s,
		locTime:       rl.GetShaderLocation(s, shader.UniformTime),
		locResolution: rl.GetShaderLocation(s, shader.UniformResolution),
		locColors:     rl.GetShaderLocation(s, shader.UniformInstanceColors),
		locInstance:   rl.GetShaderLocationAttrib(s, shader.AttribInstanceTransform),
	}
	if comp.locInstance >= 0 {
		s.UpdateLocation(rl.ShaderLocMatrixModel, comp.locInstance)
	}
	return shader.Program{ID: s.ID, Native: comp}, nil
}

func (c *Compiler) Release(p shader.Program) {
	comp, ok := p.Native.(*Compiled)
	if !ok || comp.Shader.ID == c.defaultShaderID() {
		return
	}
	rl.UnloadShader(comp.Shader)
}

// defaultShaderID is the program raylib substitutes when a build fails. It is read from a default material
// the first time it is needed.
func (c *Compiler) defaultShaderID() uint32 {
	if c.defaultID == 0 {
		m := rl.LoadMaterialDefault()
		c.defaultID = m.Shader.ID
		rl.UnloadMaterial(m)
	}
	return c.defaultID
}

// failureReason picks the stage and the compiler message out of raylib's shader trace lines.
func failureReason(lines []string) (stage, reason string) {
	var msgs []string
	for _, l := range lines {
		lower := strings.ToLower(l)
		switch {
		case strings.Contains(lower, "failed to compile vertex"):
			stage = "vertex"
		case strings.Contains(lower, "failed to compile fragment"):
			stage = "fragment"
		case strings.Contains(lower, "failed to link"):
			stage = "link"
		}
		if strings.Contains(lower, "error") || strings.Contains(lower, "failed") {
			msgs = append(msgs, l)
		}
	}
	if len(msgs) == 0 {
		return stage, "GPU rejected the program"
	}
	return stage, strings.Join(msgs, "; ")
}
