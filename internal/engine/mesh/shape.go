// Package mesh describes the primitive shapes actors are built from and
// generates their triangle meshes.
package mesh

import "fmt"

// Kind identifies a primitive shape.
type Kind uint8

// Primitive kinds.
const (
	KindBox Kind = iota + 1
	KindPyramid
	KindSphere
	KindCylinder
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindPyramid:
		return "pyramid"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Shape is a comparable primitive descriptor. Renderers use it as the key
// of their GPU buffer cache, so equal shapes share one upload.
type Shape struct {
	Kind Kind
	// Iterations is the subdivision count of a sphere or the segment count
	// of a cylinder.
	Iterations int
	// Height of a cylinder, in (0, 1].
	Height float32
}

// Box returns the unit cube.
func Box() Shape { return Shape{Kind: KindBox} }

// Pyramid returns a square-based pyramid.
func Pyramid() Shape { return Shape{Kind: KindPyramid} }

// Sphere returns an icosphere subdivided the given number of times.
func Sphere(iterations int) Shape {
	return Shape{Kind: KindSphere, Iterations: iterations}
}

// Cylinder returns a capped cylinder with the given number of segments.
func Cylinder(segments int, height float32) Shape {
	return Shape{Kind: KindCylinder, Iterations: segments, Height: height}
}

func (s Shape) String() string {
	switch s.Kind {
	case KindSphere:
		return fmt.Sprintf("sphere(%d)", s.Iterations)
	case KindCylinder:
		return fmt.Sprintf("cylinder(%d, %g)", s.Iterations, s.Height)
	default:
		return s.Kind.String()
	}
}

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Translucent reports whether the color needs blending.
func (c Color) Translucent() bool {
	return c.A < 1
}

// Vec4 returns the color as an array, ready for glUniform4fv.
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
