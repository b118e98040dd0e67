package mesh

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/skirmish/pkg/math"
)

// MaxSphereIterations bounds icosphere subdivision. Six iterations already
// produce 40962 vertices.
const MaxSphereIterations = 6

// Generation errors.
var (
	ErrUnknownKind = errors.New("mesh: unknown shape kind")
	ErrBadShape    = errors.New("mesh: invalid shape parameters")
)

// Vertex is an interleaved position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Generate builds the triangle mesh of a shape. Every primitive fits in
// the cube [-0.5, 0.5] on all axes.
func Generate(s Shape) (Mesh, error) {
	switch s.Kind {
	case KindBox:
		return box(), nil
	case KindPyramid:
		return pyramid(), nil
	case KindSphere:
		if s.Iterations < 0 || s.Iterations > MaxSphereIterations {
			return Mesh{}, fmt.Errorf("%w: %s iterations must be in [0, %d]", ErrBadShape, s, MaxSphereIterations)
		}
		return icosphere(s.Iterations), nil
	case KindCylinder:
		if s.Iterations < 3 {
			return Mesh{}, fmt.Errorf("%w: %s needs at least 3 segments", ErrBadShape, s)
		}
		if s.Height <= 0 || s.Height > 1 {
			return Mesh{}, fmt.Errorf("%w: %s height must be in (0, 1]", ErrBadShape, s)
		}
		return cylinder(s.Iterations, s.Height), nil
	default:
		return Mesh{}, fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind)
	}
}

// appendTriangle adds a flat-shaded triangle with sequential indices.
func (m *Mesh) appendTriangle(a, b, c math.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	for _, p := range [3]math.Vec3{a, b, c} {
		m.Indices = append(m.Indices, uint32(len(m.Vertices)))
		m.Vertices = append(m.Vertices, Vertex{Position: p.Array(), Normal: n.Array()})
	}
}

func (m *Mesh) appendQuad(a, b, c, d math.Vec3) {
	m.appendTriangle(a, b, c)
	m.appendTriangle(a, c, d)
}

func box() Mesh {
	const h = 0.5
	var m Mesh
	// Corners are named by sign: n = -0.5, p = +0.5, in x y z order.
	nnn := math.Vec3{X: -h, Y: -h, Z: -h}
	nnp := math.Vec3{X: -h, Y: -h, Z: h}
	npn := math.Vec3{X: -h, Y: h, Z: -h}
	npp := math.Vec3{X: -h, Y: h, Z: h}
	pnn := math.Vec3{X: h, Y: -h, Z: -h}
	pnp := math.Vec3{X: h, Y: -h, Z: h}
	ppn := math.Vec3{X: h, Y: h, Z: -h}
	ppp := math.Vec3{X: h, Y: h, Z: h}

	m.appendQuad(nnp, pnp, ppp, npp) // +Z
	m.appendQuad(pnn, nnn, npn, ppn) // -Z
	m.appendQuad(pnp, pnn, ppn, ppp) // +X
	m.appendQuad(nnn, nnp, npp, npn) // -X
	m.appendQuad(npp, ppp, ppn, npn) // +Y
	m.appendQuad(nnn, pnn, pnp, nnp) // -Y
	return m
}

func pyramid() Mesh {
	const h = 0.5
	var m Mesh
	apex := math.Vec3{Y: h}
	a := math.Vec3{X: -h, Y: -h, Z: h}
	b := math.Vec3{X: h, Y: -h, Z: h}
	c := math.Vec3{X: h, Y: -h, Z: -h}
	d := math.Vec3{X: -h, Y: -h, Z: -h}

	m.appendTriangle(a, b, apex)
	m.appendTriangle(b, c, apex)
	m.appendTriangle(c, d, apex)
	m.appendTriangle(d, a, apex)
	m.appendQuad(d, c, b, a)
	return m
}

// icosphere subdivides an icosahedron and pushes every vertex onto the
// sphere of radius 0.5. Normals are the unit directions.
func icosphere(iterations int) Mesh {
	t := float32((1 + gomath.Sqrt(5)) / 2)
	dirs := []math.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	for i := range dirs {
		dirs[i] = dirs[i].Normalize()
	}
	faces := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for range iterations {
		midpoints := make(map[[2]uint32]uint32)
		midpoint := func(a, b uint32) uint32 {
			key := [2]uint32{min(a, b), max(a, b)}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			dirs = append(dirs, dirs[a].Add(dirs[b]).Normalize())
			idx := uint32(len(dirs) - 1)
			midpoints[key] = idx
			return idx
		}

		next := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = next
	}

	m := Mesh{
		Vertices: make([]Vertex, len(dirs)),
		Indices:  make([]uint32, 0, len(faces)*3),
	}
	for i, d := range dirs {
		m.Vertices[i] = Vertex{Position: d.Scale(0.5).Array(), Normal: d.Array()}
	}
	for _, f := range faces {
		m.Indices = append(m.Indices, f[0], f[1], f[2])
	}
	return m
}

// cylinder builds a capped cylinder around the Y axis. Side vertices carry
// radial normals; caps have their own ring so they stay flat shaded.
func cylinder(segments int, height float32) Mesh {
	const radius = 0.5
	top, bottom := height/2, -height/2
	m := Mesh{
		Vertices: make([]Vertex, 0, 4*segments+2),
		Indices:  make([]uint32, 0, 12*segments),
	}

	ring := make([]math.Vec3, segments)
	for i := range ring {
		a := 2 * gomath.Pi * float64(i) / float64(segments)
		ring[i] = math.Vec3{X: float32(gomath.Cos(a)), Z: float32(-gomath.Sin(a))}
	}

	// Side: bottom vertex at 2i, top vertex at 2i+1.
	for _, dir := range ring {
		p := dir.Scale(radius)
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{p.X, bottom, p.Z}, Normal: dir.Array()},
			Vertex{Position: [3]float32{p.X, top, p.Z}, Normal: dir.Array()},
		)
	}
	for i := range segments {
		j := (i + 1) % segments
		b0, t0 := uint32(2*i), uint32(2*i+1)
		b1, t1 := uint32(2*j), uint32(2*j+1)
		m.Indices = append(m.Indices, b0, b1, t1, b0, t1, t0)
	}

	addCap := func(y, ny float32) {
		center := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, y, 0}, Normal: [3]float32{0, ny, 0}})
		for _, dir := range ring {
			p := dir.Scale(radius)
			m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{p.X, y, p.Z}, Normal: [3]float32{0, ny, 0}})
		}
		for i := range segments {
			a := center + 1 + uint32(i)
			b := center + 1 + uint32((i+1)%segments)
			if ny > 0 {
				m.Indices = append(m.Indices, center, a, b)
			} else {
				m.Indices = append(m.Indices, center, b, a)
			}
		}
	}
	addCap(top, 1)
	addCap(bottom, -1)
	return m
}
