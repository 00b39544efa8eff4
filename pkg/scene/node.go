// Package scene implements a retained scene graph over the 2D geometry
// core: nodes carry a local transform, an optional shape and a paint
// style, and form a tree whose world transforms are cached and
// invalidated on mutation. Bounds aggregation and point hit-testing walk
// the same tree the renderer draws.
package scene

import (
	"github.com/google/uuid"

	"github.com/taigrr/easel/pkg/geom"
	"github.com/taigrr/easel/pkg/math2d"
)

// Node is one element of the scene tree. Children draw after (on top of)
// their parent, in slice order.
type Node struct {
	ID      string
	Name    string
	Visible bool
	Opacity float64

	Shape Shape
	Style Style

	local      math2d.Mat3
	world      math2d.Mat3
	worldValid bool

	parent   *Node
	children []*Node
}

// NewNode returns a visible, fully opaque node with an identity
// transform and a fresh uuid.
func NewNode(name string) *Node {
	return &Node{
		ID:      uuid.NewString(),
		Name:    name,
		Visible: true,
		Opacity: 1,
		Style:   DefaultStyle(),
		local:   math2d.Identity(),
		world:   math2d.Identity(),
	}
}

// NewShapeNode returns a node carrying the given shape.
func NewShapeNode(name string, s Shape) *Node {
	n := NewNode(name)
	n.Shape = s
	return n
}

// Local returns the node's local transform.
func (n *Node) Local() math2d.Mat3 {
	return n.local
}

// SetLocal replaces the local transform and invalidates the cached world
// transforms of the whole subtree.
func (n *Node) SetLocal(m math2d.Mat3) {
	n.local = m
	n.invalidate()
}

// Translate appends a translation to the local transform, in the node's
// own frame.
func (n *Node) Translate(d math2d.Vec2) *Node {
	n.SetLocal(n.local.Translate(d.X, d.Y))
	return n
}

// Rotate appends a rotation to the local transform, in the node's own
// frame.
func (n *Node) Rotate(angle float64) *Node {
	n.SetLocal(n.local.Rotate(angle))
	return n
}

// Scale appends a scale to the local transform, in the node's own frame.
func (n *Node) Scale(sx, sy float64) *Node {
	n.SetLocal(n.local.Scale(sx, sy))
	return n
}

// World returns the node's world transform, parent world times local,
// computing and caching it on demand.
func (n *Node) World() math2d.Mat3 {
	if !n.worldValid {
		if n.parent != nil {
			n.world = n.parent.World().Mul(n.local)
		} else {
			n.world = n.local
		}
		n.worldValid = true
	}
	return n.world
}

func (n *Node) invalidate() {
	n.worldValid = false
	for _, c := range n.children {
		c.invalidate()
	}
}

// Parent returns the node's parent, nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in draw order. The returned slice
// is the node's own; treat it as read-only.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends c to the node's children, detaching it from any
// previous parent first. Returns c so tree construction can chain.
func (n *Node) AddChild(c *Node) *Node {
	if c == nil || c == n {
		return c
	}
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
	c.invalidate()
	return c
}

// RemoveChild detaches c from the node. Reports whether c was a child.
func (n *Node) RemoveChild(c *Node) bool {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			c.invalidate()
			return true
		}
	}
	return false
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Visit walks the subtree depth-first in draw order. Returning false
// from fn skips the node's children.
func (n *Node) Visit(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Visit(fn)
	}
}

// FindByID returns the node in the subtree with the given id, or nil.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Visit(func(node *Node) bool {
		if found == nil && node.ID == id {
			found = node
		}
		return found == nil
	})
	return found
}

// FindByName returns the first node in the subtree with the given name,
// in visit order, or nil.
func (n *Node) FindByName(name string) *Node {
	var found *Node
	n.Visit(func(node *Node) bool {
		if found == nil && node.Name == name {
			found = node
		}
		return found == nil
	})
	return found
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	count := 0
	n.Visit(func(*Node) bool {
		count++
		return true
	})
	return count
}

// EffectiveOpacity returns the node's opacity multiplied through its
// ancestors.
func (n *Node) EffectiveOpacity() float64 {
	o := n.Opacity
	for p := n.parent; p != nil; p = p.parent {
		o *= p.Opacity
	}
	return o
}

// WorldBounds returns the world-space bounds of the subtree's visible
// shapes. Invisible nodes contribute nothing; a subtree with no shapes
// yields the empty box.
func (n *Node) WorldBounds() geom.Box {
	bounds := geom.EmptyBox()
	if !n.Visible {
		return bounds
	}
	if n.Shape != nil {
		bounds = n.Shape.Bounds().Transform(n.World())
	}
	for _, c := range n.children {
		bounds = bounds.Union(c.WorldBounds())
	}
	return bounds
}

// HitTest returns the topmost visible node whose shape contains the
// world-space point, searching children before their parent and later
// siblings first. Nodes whose world transform cannot be inverted are
// skipped. Returns nil when nothing is hit.
func (n *Node) HitTest(p math2d.Vec2) *Node {
	if !n.Visible {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	if n.Shape != nil {
		if inv, ok := n.World().Invert(); ok {
			if n.Shape.ContainsPoint(inv.TransformPoint(p)) {
				return n
			}
		}
	}
	return nil
}
