// Package mesh describes the two built-in meshes. Shapes are built once and never change;
// the graphics backend turns them into GPU meshes on first use.
package mesh

import "github.com/chewxy/math32"

// Kind identifies a built-in mesh.
type Kind int

const (
	Cube Kind = iota
	Pyramid
)

func (k Kind) String() string {
	if k == Pyramid {
		return "pyramid"
	}
	return "cube"
}

// Shape is an immutable mesh description. Size is the cube extent; Base and Height describe the square pyramid,
// whose base sits on Y=0 centred on the origin.
type Shape struct {
	Kind   Kind
	Size   [3]float32
	Base   float32
	Height float32
}

// BaseRadius is the distance from the pyramid axis to a base corner.
func (s Shape) BaseRadius() float32 {
	return s.Base * math32.Sqrt2 / 2
}

// Triangles returns the triangle count of the generated mesh.
func (s Shape) Triangles() int {
	if s.Kind == Pyramid {
		// four sides plus a two-triangle base
		return 6
	}
	return 12
}

// Store holds the cube and the pyramid for the process lifetime.
type Store struct {
	cube    Shape
	pyramid Shape
}

// NewStore builds both shapes: a unit cube and a pyramid with a 1x1 base and height 2.
func NewStore() *Store {
	return &Store{
		cube:    Shape{Kind: Cube, Size: [3]float32{1, 1, 1}},
		pyramid: Shape{Kind: Pyramid, Base: 1, Height: 2},
	}
}

// Cube returns the unique mesh drawn with the custom shader.
func (s *Store) Cube() Shape {
	return s.cube
}

// Pyramid returns the mesh drawn by the instance batch.
func (s *Store) Pyramid() Shape {
	return s.pyramid
}

// Shapes returns both shapes.
func (s *Store) Shapes() []Shape {
	return []Shape{s.cube, s.pyramid}
}
