// Package scene is a small retained scene graph standing in for a document:
// nodes carry a tag, an id, classes, a layout box and inline style slots, and
// can be selected with CSS-like selector lists.
package scene

import (
	"log"
	"slices"

	"github.com/iburimskiy/cursor-light/internal/proximity"
)

// GradientTextClass marks nodes whose text is drawn with a gradient fill.
const GradientTextClass = "gradient-text"

// Style holds the inline style slots written by the proximity engine. A nil
// slot is unset.
type Style struct {
	BoxShadow  *proximity.Shadow
	Translate  *proximity.Vec
	TextShadow *proximity.Shadow
}

// Node is one element of the scene.
type Node struct {
	Tag      string
	ID       string
	Classes  []string
	Text     string
	Rect     proximity.Rect
	Children []*Node

	parent *Node
	style  Style
}

// NewNode creates a detached node.
func NewNode(tag string, rect proximity.Rect, classes ...string) *Node {
	return &Node{Tag: tag, Rect: rect, Classes: classes}
}

func (n *Node) Parent() *Node { return n.parent }

// Style returns the node's current inline style.
func (n *Node) Style() Style { return n.style }

// HasClass reports whether the node carries cls.
func (n *Node) HasClass(cls string) bool {
	return slices.Contains(n.Classes, cls)
}

// Offset returns the translation currently applied to the node.
func (n *Node) Offset() proximity.Vec {
	if n.style.Translate == nil {
		return proximity.Vec{}
	}
	return *n.style.Translate
}

// VisualRect is the layout box moved by the node's translation.
func (n *Node) VisualRect() proximity.Rect {
	off := n.Offset()
	r := n.Rect
	r.X += off.X
	r.Y += off.Y
	return r
}

// Bounds implements proximity.Element. Translation is not part of the layout
// box, so the magnetic pull does not feed back into the next sample.
func (n *Node) Bounds() proximity.Rect { return n.Rect }

// HasGradientText implements proximity.Element.
func (n *Node) HasGradientText() bool {
	if n.HasClass(GradientTextClass) {
		return true
	}
	for _, c := range n.Children {
		if c.HasGradientText() {
			return true
		}
	}
	return false
}

func (n *Node) SetBoxShadow(s proximity.Shadow) { n.style.BoxShadow = &s }
func (n *Node) ClearBoxShadow() { n.style.BoxShadow = nil }
func (n *Node) SetTranslate(v proximity.Vec) { n.style.Translate = &v }
func (n *Node) ClearTranslate() { n.style.Translate = nil }
func (n *Node) SetTextShadow(s proximity.Shadow) { n.style.TextShadow = &s }
func (n *Node) ClearTextShadow() { n.style.TextShadow = nil }

// Scene is an ordered forest of nodes.
type Scene struct {
	Width, Height float64

	roots     []*Node
	selectors map[string]selectorEntry
}

type selectorEntry struct {
	sel Selector
	err error
}

// New returns an empty scene for a viewport of the given size.
func New(width, height float64) *Scene {
	return &Scene{
		Width:     width,
		Height:    height,
		selectors: make(map[string]selectorEntry),
	}
}

// Roots returns the top-level nodes in document order.
func (s *Scene) Roots() []*Node { return s.roots }

// Add appends n to parent's children, or to the top level when parent is nil.
// A node that is already attached is moved.
func (s *Scene) Add(parent, n *Node) {
	s.Remove(n)
	n.parent = parent
	if parent == nil {
		s.roots = append(s.roots, n)
		return
	}
	parent.Children = append(parent.Children, n)
}

// Remove detaches n and its subtree. It reports whether n was found.
func (s *Scene) Remove(n *Node) bool {
	siblings := &s.roots
	if n.parent != nil {
		siblings = &n.parent.Children
	}
	i := slices.Index(*siblings, n)
	if i < 0 {
		return false
	}
	*siblings = slices.Delete(*siblings, i, i+1)
	n.parent = nil
	return true
}

// Walk visits every node depth-first in document order.
func (s *Scene) Walk(fn func(n *Node, depth int)) {
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			visit(n.Children, depth+1)
		}
	}
	visit(s.roots, 0)
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	count := 0
	s.Walk(func(*Node, int) { count++ })
	return count
}

func (s *Scene) selector(src string) (Selector, error) {
	if e, ok := s.selectors[src]; ok {
		return e.sel, e.err
	}
	sel, err := ParseSelector(src)
	if err != nil {
		log.Printf("scene: %v", err)
	}
	if s.selectors == nil {
		s.selectors = make(map[string]selectorEntry)
	}
	s.selectors[src] = selectorEntry{sel: sel, err: err}
	return sel, err
}

// QueryNodes returns the nodes matching selector in document order. An
// invalid selector matches nothing.
func (s *Scene) QueryNodes(selector string) []*Node {
	sel, err := s.selector(selector)
	if err != nil {
		return nil
	}
	var out []*Node
	s.Walk(func(n *Node, _ int) {
		if sel.Matches(n) {
			out = append(out, n)
		}
	})
	return out
}

// Query implements proximity.Scene. The match is recomputed on every call so
// nodes added or removed since the last tick are picked up.
func (s *Scene) Query(selector string) []proximity.Element {
	nodes := s.QueryNodes(selector)
	out := make([]proximity.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// FindByID returns the first node with the given id.
func (s *Scene) FindByID(id string) *Node {
	var found *Node
	s.Walk(func(n *Node, _ int) {
		if found == nil && n.ID == id {
			found = n
		}
	})
	return found
}

// HitTest returns the topmost node matching selector whose visual box
// contains p, or nil.
func (s *Scene) HitTest(p proximity.Vec, selector string) *Node {
	var hit *Node
	for _, n := range s.QueryNodes(selector) {
		if n.VisualRect().Contains(p) {
			hit = n
		}
	}
	return hit
}
