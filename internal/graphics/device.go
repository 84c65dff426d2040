package graphics

import (
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shaderlab/internal/batch"
	"shaderlab/internal/camera"
	"shaderlab/internal/mesh"
	"shaderlab/internal/render"
	"shaderlab/internal/shader"
)

// Device draws render calls with raylib. Meshes and the material are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Device struct {
	meshes        map[mesh.Kind]rl.Mesh
	mtl           rl.Material
	defaultShader rl.Shader
	ready         bool
	bound         *Compiled
	colorBuf      []float32
	matBuf        []rl.Matrix
}

// NewDevice returns a device with no GPU resources yet.
func NewDevice() *Device {
	return &Device{meshes: make(map[mesh.Kind]rl.Mesh)}
}

func (d *Device) ensureMaterial() {
	if d.ready {
		return
	}
	d.mtl = rl.LoadMaterialDefault()
	d.defaultShader = d.mtl.Shader
	d.ready = true
}

// ensureMesh uploads s the first time it is drawn. The pyramid is a four-sided cone.
func (d *Device) ensureMesh(s mesh.Shape) rl.Mesh {
	if m, ok := d.meshes[s.Kind]; ok {
		return m
	}
	var m rl.Mesh
	switch s.Kind {
	case mesh.Pyramid:
		m = rl.GenMeshCone(s.BaseRadius(), s.Height, 4)
	default:
		m = rl.GenMeshCube(s.Size[0], s.Size[1], s.Size[2])
	}
	d.meshes[s.Kind] = m
	return m
}

// Begin3D opens the 3D pass like rl.BeginMode3D but with the projection's own clip planes.
func (d *Device) Begin3D(view camera.View, proj camera.Projection) {
	d.ensureMaterial()
	rl.DrawRenderBatchActive()

	rl.MatrixMode(rl.Projection)
	rl.PushMatrix()
	rl.LoadIdentity()
	top := float64(proj.ZNear) * float64(math32.Tan(camera.Radians(proj.Fovy)*0.5))
	right := top * float64(proj.Aspect())
	rl.Frustum(-right, right, -top, top, float64(proj.ZNear), float64(proj.ZFar))

	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	look := rl.MatrixLookAt(vec3(view.Eye), vec3(view.Target), vec3(view.Up))
	m := rl.MatrixToFloat(look)
	rl.MultMatrixf(m[:])

	rl.EnableDepthTest()
}

func (d *Device) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

// BindShader selects the program for the following draws; a zero program selects raylib's default shader.
func (d *Device) BindShader(p shader.Program, u render.Uniforms) {
	d.ensureMaterial()
	comp, ok := p.Native.(*Compiled)
	if !ok || !p.Valid() {
		d.bound = nil
		d.mtl.Shader = d.defaultShader
		return
	}
	d.bound = comp
	d.mtl.Shader = comp.Shader
	if comp.locTime >= 0 {
		rl.SetShaderValue(comp.Shader, comp.locTime, []float32{u.Time}, rl.ShaderUniformFloat)
	}
	if comp.locResolution >= 0 {
		rl.SetShaderValue(comp.Shader, comp.locResolution, u.Resolution[:], rl.ShaderUniformVec2)
	}
}

// DrawMesh draws s once. Backface culling is off so the cube stays visible from inside.
func (d *Device) DrawMesh(s mesh.Shape, model batch.Mat4) {
	m := d.ensureMesh(s)
	d.setAlbedo(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rl.DisableBackfaceCulling()
	rl.DrawMesh(m, d.mtl, matrix(model))
	rl.EnableBackfaceCulling()
}

// DrawInstanced issues one instanced draw when the bound program reads instance transforms; otherwise each
// instance is drawn on its own with its colour as the material tint.
func (d *Device) DrawInstanced(s mesh.Shape, transforms []batch.Mat4, colors [][4]float32) {
	if len(transforms) == 0 {
		return
	}
	m := d.ensureMesh(s)
	if d.bound == nil || !d.bound.Instanced() {
		for i, t := range transforms {
			if i < len(colors) {
				d.setAlbedo(toRGBA(colors[i]))
			}
			rl.DrawMesh(m, d.mtl, matrix(t))
		}
		d.setAlbedo(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return
	}

	n := min(len(transforms), shader.MaxInstances)
	if d.bound.locColors >= 0 {
		d.colorBuf = d.colorBuf[:0]
		for _, c := range colors[:min(n, len(colors))] {
			d.colorBuf = append(d.colorBuf, c[:]...)
		}
		rl.SetShaderValueV(d.bound.Shader, d.bound.locColors, d.colorBuf, rl.ShaderUniformVec4, int32(len(d.colorBuf)/4))
	}
	d.matBuf = d.matBuf[:0]
	for _, t := range transforms[:n] {
		d.matBuf = append(d.matBuf, matrix(t))
	}
	d.setAlbedo(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	rl.DrawMeshInstanced(m, d.mtl, d.matBuf, n)
}

func (d *Device) End3D() {
	rl.EndMode3D()
}

func (d *Device) Begin2D() {}

func (d *Device) DrawText(text string, x, y, size int32, c color.RGBA) {
	rl.DrawText(text, x, y, size, c)
}

func (d *Device) End2D() {
	rl.DrawRenderBatchActive()
}

// Close frees the meshes. Programs are owned by the shader registry.
func (d *Device) Close() {
	for k, m := range d.meshes {
		rl.UnloadMesh(&m)
		delete(d.meshes, k)
	}
}

func (d *Device) setAlbedo(c color.RGBA) {
	if albedo := d.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func matrix(m batch.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toRGBA(c [4]float32) color.RGBA {
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: uint8(c[3] * 255),
	}
}
