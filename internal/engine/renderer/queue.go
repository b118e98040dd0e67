package renderer

import (
	"cmp"
	"slices"

	"github.com/Faultbox/skirmish/internal/engine/lighting"
	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/pkg/math"
)

// vertexStride is the size of mesh.Vertex: position and normal.
const vertexStride = 6 * 4

// lightDirection is the way the light travels: down from above and behind
// the camera, slightly to its right.
var lightDirection = lighting.Sun{Longitude: 30, Latitude: 60}.Rays()

// drawCall is a deferred translucent mesh.
type drawCall struct {
	world math.Mat4
	shape mesh.Shape
	color mesh.Color
	// Distance from the camera along its view direction.
	depth float32
}

type lineBatch struct {
	vertices []float32
	color    mesh.Color
}

// sortBackToFront orders draw calls farthest first. Calls at equal depth
// keep their submission order.
func sortBackToFront(calls []drawCall) {
	slices.SortStableFunc(calls, func(a, b drawCall) int {
		return cmp.Compare(b.depth, a.depth)
	})
}
