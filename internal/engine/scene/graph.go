// Package scene implements the transform hierarchy shared by every actor.
//
// Nodes are stored in a Graph and addressed by NodeID. A node owns a local
// transform, knows its parent and lists its children; the graph owns the
// storage. World transforms and bounding boxes are derived on every query.
package scene

import (
	"fmt"

	"github.com/Faultbox/skirmish/pkg/math"
)

// NodeID identifies a node in a Graph.
type NodeID int

// Nil represents an invalid NodeID. Roots have Nil as parent.
const Nil NodeID = 0

type node struct {
	local    math.Mat4
	parent   NodeID
	children []NodeID
}

// Graph is an arena of transform nodes.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add inserts a new root node with the given local transform.
func (g *Graph) Add(local math.Mat4) NodeID {
	g.nodes = append(g.nodes, node{local: local, parent: Nil})
	return NodeID(len(g.nodes))
}

// AddChild attaches child under parent. A node is attached at most once
// and never under one of its own descendants; violations panic.
func (g *Graph) AddChild(parent, child NodeID) {
	p := g.at(parent)
	c := g.at(child)
	if c.parent != Nil {
		panic(fmt.Sprintf("scene: node %d already has parent %d", child, c.parent))
	}
	for n := parent; n != Nil; n = g.nodes[n-1].parent {
		if n == child {
			panic(fmt.Sprintf("scene: attaching node %d under %d would create a cycle", child, parent))
		}
	}
	c.parent = parent
	p.children = append(p.children, child)
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// SetTransform replaces the local transform of a node.
func (g *Graph) SetTransform(id NodeID, local math.Mat4) {
	g.at(id).local = local
}

// Local returns the local transform of a node.
func (g *Graph) Local(id NodeID) math.Mat4 {
	return g.at(id).local
}

// Parent returns the parent of a node, or Nil for a root.
func (g *Graph) Parent(id NodeID) NodeID {
	return g.at(id).parent
}

// Children returns the children of a node in attachment order.
// The returned slice must not be modified.
func (g *Graph) Children(id NodeID) []NodeID {
	return g.at(id).children
}

// WorldTransform returns parent.WorldTransform() * local.
func (g *Graph) WorldTransform(id NodeID) math.Mat4 {
	n := g.at(id)
	if n.parent == Nil {
		return n.local
	}
	return g.WorldTransform(n.parent).Mul(n.local)
}

// Walk calls fn for id and every descendant in pre-order, passing each
// node's world transform.
func (g *Graph) Walk(id NodeID, fn func(id NodeID, world math.Mat4)) {
	g.walk(id, g.parentWorld(id), fn)
}

func (g *Graph) walk(id NodeID, parentWorld math.Mat4, fn func(NodeID, math.Mat4)) {
	n := g.at(id)
	world := parentWorld.Mul(n.local)
	fn(id, world)
	for _, c := range n.children {
		g.walk(c, world, fn)
	}
}

func (g *Graph) parentWorld(id NodeID) math.Mat4 {
	if p := g.at(id).parent; p != Nil {
		return g.WorldTransform(p)
	}
	return math.Identity()
}

// OwnBoundingBox returns the axis-aligned box of the unit cube placed by
// the node's world transform.
func (g *Graph) OwnBoundingBox(id NodeID) AABB {
	return BoxOf(g.WorldTransform(id))
}

// AllBoundingBoxes returns the box of id followed by the boxes of each
// child subtree, in pre-order.
func (g *Graph) AllBoundingBoxes(id NodeID) []AABB {
	var boxes []AABB
	g.Walk(id, func(_ NodeID, world math.Mat4) {
		boxes = append(boxes, BoxOf(world))
	})
	return boxes
}

// EnclosingBoundingBox returns the union of the node's own box and the
// enclosing boxes of all its children.
func (g *Graph) EnclosingBoundingBox(id NodeID) AABB {
	box := g.OwnBoundingBox(id)
	for _, c := range g.at(id).children {
		box = box.Union(g.EnclosingBoundingBox(c))
	}
	return box
}

// Contains reports whether p lies strictly inside the enclosing box of id
// and strictly inside at least one box of its subtree.
func (g *Graph) Contains(id NodeID, p math.Vec3) bool {
	if !g.EnclosingBoundingBox(id).Contains(p) {
		return false
	}
	for _, box := range g.AllBoundingBoxes(id) {
		if box.Contains(p) {
			return true
		}
	}
	return false
}

func (g *Graph) at(id NodeID) *node {
	if id <= Nil || int(id) > len(g.nodes) {
		panic(fmt.Sprintf("scene: invalid node %d (graph has %d nodes)", id, len(g.nodes)))
	}
	return &g.nodes[id-1]
}
