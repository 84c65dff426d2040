// Package batch builds the per-frame instance data for the instanced draw:
// one Record per copy of the mesh plus a single Modifier applied to the whole batch.
package batch

import "image/color"

const (
	// DefaultCount is the number of instances drawn each frame.
	DefaultCount = 100
	// Spacing is the distance between neighbouring instances along X.
	Spacing = float32(2)
)

// Record is the per-instance draw input.
type Record struct {
	Position [3]float32
	Color    color.RGBA
}

// Modifier is applied uniformly on top of every record at draw time.
type Modifier struct {
	Scale float32
	Color color.RGBA
}

// DefaultModifier doubles the size of every instance and keeps its colour.
func DefaultModifier() Modifier {
	return Modifier{Scale: 2, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
}

// Placement is the final position and uniform scale of one instance after the modifier.
type Placement struct {
	Position [3]float32
	Scale    float32
}

// Regenerate returns count records placed at (i*Spacing, 0, 0), all white.
// The result depends only on count; frame is part of the per-frame contract and does not alter placement.
func Regenerate(frame uint64, count int) []Record {
	if count <= 0 {
		return nil
	}
	out := make([]Record, count)
	for i := range out {
		out[i] = Record{
			Position: [3]float32{float32(i) * Spacing, 0, 0},
			Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		}
	}
	return out
}

// Placements applies the modifier to each record: the instance translation first, then the global scale
// about the origin, so a record at p ends at p*Scale with size Scale.
func Placements(records []Record, mod Modifier) []Placement {
	s := mod.Scale
	if s == 0 {
		s = 1
	}
	out := make([]Placement, len(records))
	for i, r := range records {
		out[i] = Placement{
			Position: [3]float32{r.Position[0] * s, r.Position[1] * s, r.Position[2] * s},
			Scale:    s,
		}
	}
	return out
}

// Colors returns each record's colour multiplied by the modifier colour, as normalized RGBA floats.
func Colors(records []Record, mod Modifier) [][4]float32 {
	g := toFloat(mod.Color)
	out := make([][4]float32, len(records))
	for i, r := range records {
		c := toFloat(r.Color)
		out[i] = [4]float32{c[0] * g[0], c[1] * g[1], c[2] * g[2], c[3] * g[3]}
	}
	return out
}

func toFloat(c color.RGBA) [4]float32 {
	const inv = 1.0 / 255.0
	return [4]float32{
		float32(c.R) * inv,
		float32(c.G) * inv,
		float32(c.B) * inv,
		float32(c.A) * inv,
	}
}

// Mat4 is a column-major 4x4 matrix, the layout GPU instance attributes expect.
type Mat4 [16]float32

// Transforms returns the model matrix of every instance: the instance translation followed by the global scale.
func Transforms(records []Record, mod Modifier) []Mat4 {
	ps := Placements(records, mod)
	out := make([]Mat4, len(ps))
	for i, p := range ps {
		out[i] = Mat4{
			p.Scale, 0, 0, 0,
			0, p.Scale, 0, 0,
			0, 0, p.Scale, 0,
			p.Position[0], p.Position[1], p.Position[2], 1,
		}
	}
	return out
}
