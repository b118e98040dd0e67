package scene

import (
	"github.com/Faultbox/skirmish/pkg/math"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// unitCorners are the corners of the cube every primitive is modelled in.
var unitCorners = [8]math.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
}

// UnitCorners returns the eight corners of the unit cube centred on the origin.
func UnitCorners() [8]math.Vec3 {
	return unitCorners
}

// BoxOf transforms each unit-cube corner by m and returns their envelope.
func BoxOf(m math.Mat4) AABB {
	first := m.TransformVec3(unitCorners[0])
	box := AABB{Min: first, Max: first}
	for _, c := range unitCorners[1:] {
		p := m.TransformVec3(c)
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// Union returns the smallest box enclosing b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Contains reports whether p is strictly inside b. Points on a face are outside.
func (b AABB) Contains(p math.Vec3) bool {
	return b.Min.X < p.X && p.X < b.Max.X &&
		b.Min.Y < p.Y && p.Y < b.Max.Y &&
		b.Min.Z < p.Z && p.Z < b.Max.Z
}

// Encloses reports whether other lies within b, faces included.
func (b AABB) Encloses(other AABB) bool {
	return b.Min.X <= other.Min.X && b.Min.Y <= other.Min.Y && b.Min.Z <= other.Min.Z &&
		other.Max.X <= b.Max.X && other.Max.Y <= b.Max.Y && other.Max.Z <= b.Max.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
