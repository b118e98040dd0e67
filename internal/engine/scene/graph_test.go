package scene

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/Faultbox/skirmish/pkg/math"
)

func approxVec(a, b math.Vec3, eps float32) bool {
	return a.Sub(b).Length() <= eps
}

func TestWorldTransformComposition(t *testing.T) {
	g := NewGraph()

	rootLocal := math.Chain(math.Translate(1, 2, 3), math.RotateY(0.7))
	midLocal := math.Chain(math.Scale(2, 0.5, 3), math.RotateZ(-0.4))
	leafLocal := math.Chain(math.RotateX(1.1), math.Translate(0, 4, -1), math.Scale(1, 3, 0.25))

	root := g.Add(rootLocal)
	mid := g.Add(midLocal)
	leaf := g.Add(leafLocal)
	g.AddChild(root, mid)
	g.AddChild(mid, leaf)

	want := rootLocal.Mul(midLocal).Mul(leafLocal)
	if got := g.WorldTransform(leaf); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("leaf world = %v, want %v", got, want)
	}

	// Order matters: the reversed product must differ.
	reversed := leafLocal.Mul(midLocal).Mul(rootLocal)
	if g.WorldTransform(leaf).ApproxEqual(reversed, 1e-3) {
		t.Error("world transform should not commute")
	}

	if got := g.WorldTransform(root); got != rootLocal {
		t.Errorf("root world = %v, want its local transform", got)
	}
}

func TestSetTransformIsObservedImmediately(t *testing.T) {
	g := NewGraph()
	root := g.Add(math.Identity())
	child := g.Add(math.Translate(1, 0, 0))
	g.AddChild(root, child)

	g.SetTransform(root, math.Translate(0, 5, 0))

	if got := g.OwnBoundingBox(child).Center(); !approxVec(got, math.Vec3{X: 1, Y: 5}, 1e-6) {
		t.Errorf("child box center = %v, want (1, 5, 0)", got)
	}
}

func TestOwnBoundingBoxIsConservative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGraph()
	id := g.Add(math.Identity())

	for i := 0; i < 200; i++ {
		m := math.Chain(
			math.Translate(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10),
			math.RotateX(rng.Float32()*2*gomath.Pi),
			math.RotateY(rng.Float32()*2*gomath.Pi),
			math.RotateZ(rng.Float32()*2*gomath.Pi),
			math.ShearY(rng.Float32()*2-1, rng.Float32()*2-1),
			math.ShearZ(rng.Float32()*2-1, rng.Float32()*2-1),
			math.Scale(rng.Float32()*4+0.1, rng.Float32()*4+0.1, rng.Float32()*4+0.1),
		)
		g.SetTransform(id, m)
		box := g.OwnBoundingBox(id)

		for axis := 0; axis < 3; axis++ {
			if box.Min.At(axis) > box.Max.At(axis) {
				t.Fatalf("min > max on axis %d: %+v", axis, box)
			}
		}
		for _, c := range UnitCorners() {
			p := m.TransformVec3(c)
			for axis := 0; axis < 3; axis++ {
				if p.At(axis) < box.Min.At(axis) || p.At(axis) > box.Max.At(axis) {
					t.Fatalf("corner %v -> %v outside box %+v", c, p, box)
				}
			}
		}
	}
}

func TestAllBoundingBoxesPreOrder(t *testing.T) {
	g := NewGraph()
	root := g.Add(math.Identity())
	a := g.Add(math.Translate(10, 0, 0))
	a1 := g.Add(math.Translate(0, 10, 0))
	b := g.Add(math.Translate(-10, 0, 0))
	g.AddChild(root, a)
	g.AddChild(a, a1)
	g.AddChild(root, b)

	boxes := g.AllBoundingBoxes(root)
	wantCenters := []math.Vec3{{}, {X: 10}, {X: 10, Y: 10}, {X: -10}}
	if len(boxes) != len(wantCenters) {
		t.Fatalf("got %d boxes, want %d", len(boxes), len(wantCenters))
	}
	for i, want := range wantCenters {
		if got := boxes[i].Center(); !approxVec(got, want, 1e-6) {
			t.Errorf("box %d center = %v, want %v", i, got, want)
		}
	}
}

func TestEnclosingBoxContainsDescendants(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := NewGraph()
	ids := []NodeID{g.Add(math.RotateZ(0.3))}
	for i := 0; i < 12; i++ {
		id := g.Add(math.Chain(
			math.Translate(rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32()*4-2),
			math.RotateY(rng.Float32()*3),
			math.Scale(rng.Float32()+0.2, rng.Float32()+0.2, rng.Float32()+0.2),
		))
		g.AddChild(ids[rng.Intn(len(ids))], id)
		ids = append(ids, id)
	}

	for _, id := range ids {
		enclosing := g.EnclosingBoundingBox(id)
		for _, box := range g.AllBoundingBoxes(id) {
			if !enclosing.Encloses(box) {
				t.Fatalf("node %d: enclosing %+v does not enclose %+v", id, enclosing, box)
			}
		}
	}
}

func TestContainsExclusiveBoundaries(t *testing.T) {
	g := NewGraph()
	root := g.Add(math.Scale(2, 2, 2))
	box := g.OwnBoundingBox(root)

	tests := []struct {
		name string
		p    math.Vec3
		want bool
	}{
		{"center", math.Vec3{}, true},
		{"just inside", math.Vec3{X: 0.999, Y: -0.999, Z: 0.5}, true},
		{"on min x face", math.Vec3{X: box.Min.X}, false},
		{"on max y face", math.Vec3{Y: box.Max.Y}, false},
		{"on max z face", math.Vec3{Z: box.Max.Z}, false},
		{"outside", math.Vec3{X: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Contains(root, tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContainsRequiresAnIndividualBox(t *testing.T) {
	g := NewGraph()
	root := g.Add(math.Identity())
	far := g.Add(math.Translate(2, 2, 0))
	g.AddChild(root, far)

	// Inside the enclosing box but in the gap between the two node boxes.
	p := math.Vec3{X: 1, Y: 1}
	if !g.EnclosingBoundingBox(root).Contains(p) {
		t.Fatal("test point should be inside the enclosing box")
	}
	if g.Contains(root, p) {
		t.Error("point in the gap between children should not be contained")
	}
	if !g.Contains(root, math.Vec3{X: 2.2, Y: 1.8}) {
		t.Error("point inside the child box should be contained")
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(g *Graph, a, b NodeID)
	}{
		{"reparent", func(g *Graph, a, b NodeID) {
			c := g.Add(math.Identity())
			g.AddChild(a, b)
			g.AddChild(c, b)
		}},
		{"cycle", func(g *Graph, a, b NodeID) {
			g.AddChild(a, b)
			g.AddChild(b, a)
		}},
		{"self", func(g *Graph, a, _ NodeID) {
			g.AddChild(a, a)
		}},
		{"nil node", func(g *Graph, a, _ NodeID) {
			g.AddChild(a, Nil)
		}},
		{"out of range", func(g *Graph, a, _ NodeID) {
			g.AddChild(a, NodeID(99))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			g := NewGraph()
			tt.fn(g, g.Add(math.Identity()), g.Add(math.Identity()))
		})
	}
}

func TestWalkVisitsSubtreeWithWorldTransforms(t *testing.T) {
	g := NewGraph()
	root := g.Add(math.Translate(1, 0, 0))
	child := g.Add(math.Translate(0, 1, 0))
	grandchild := g.Add(math.Translate(0, 0, 1))
	g.AddChild(root, child)
	g.AddChild(child, grandchild)

	var visited []NodeID
	g.Walk(child, func(id NodeID, world math.Mat4) {
		visited = append(visited, id)
		if want := g.WorldTransform(id); world != want {
			t.Errorf("node %d world = %v, want %v", id, world, want)
		}
	})
	if len(visited) != 2 || visited[0] != child || visited[1] != grandchild {
		t.Errorf("visited %v, want [%d %d]", visited, child, grandchild)
	}
	if g.Parent(child) != root || g.Parent(root) != Nil {
		t.Error("unexpected parent links")
	}
}
