// Package render composes each frame: a 3D pass with the custom cube and the instanced pyramids,
// then a 2D pass with text and panels on top.
package render

import (
	"errors"
	"image/color"

	"shaderlab/internal/batch"
	"shaderlab/internal/camera"
	"shaderlab/internal/mesh"
	"shaderlab/internal/shader"
)

// ErrPassOrder is returned when a draw call is issued outside the pass it belongs to.
var ErrPassOrder = errors.New("render pass order violated")

// Uniforms are the per-frame values handed to every bound program.
type Uniforms struct {
	Time       float32
	Resolution [2]float32
}

// Device is the drawing backend. Calls arrive in the order Begin3D, Clear, BindShader/Draw*, End3D,
// Begin2D, DrawText, End2D. A zero Program passed to BindShader selects the device default shader.
type Device interface {
	Begin3D(view camera.View, proj camera.Projection)
	Clear(c color.RGBA)
	BindShader(p shader.Program, u Uniforms)
	DrawMesh(s mesh.Shape, model batch.Mat4)
	DrawInstanced(s mesh.Shape, transforms []batch.Mat4, colors [][4]float32)
	End3D()
	Begin2D()
	DrawText(text string, x, y, size int32, c color.RGBA)
	End2D()
}

// Identity is the model matrix of the cube.
var Identity = batch.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

type pass int

const (
	passNone pass = iota
	pass3D
	pass2D
)

func (p pass) String() string {
	switch p {
	case pass3D:
		return "3d"
	case pass2D:
		return "2d"
	default:
		return "none"
	}
}

// passGuard tracks which pass is open; every transition is checked before it reaches the device.
type passGuard struct {
	open pass
	done bool
}

func (g *passGuard) begin(p pass) error {
	if g.open != passNone {
		return ErrPassOrder
	}
	if p == pass3D && g.done {
		// the 3D pass must precede the 2D pass within a frame
		return ErrPassOrder
	}
	g.open = p
	return nil
}

func (g *passGuard) end(p pass) error {
	if g.open != p {
		return ErrPassOrder
	}
	g.open = passNone
	if p == pass3D {
		g.done = true
	}
	return nil
}

func (g *passGuard) require(p pass) error {
	if g.open != p {
		return ErrPassOrder
	}
	return nil
}

func (g *passGuard) reset() {
	*g = passGuard{}
}
