package legend

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Size is a width/height pair measured in terminal cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool { return s.Width == 0 || s.Height == 0 }

// Symbol is an opaque rendered preview attached to a legend node.
// The core never inspects a symbol beyond carrying it on the node.
type Symbol interface {
	// View returns the rendered symbol block.
	View() string
	// Bounds returns the symbol's cell dimensions.
	Bounds() Size
}

// Node is one entry in a legend tree: a header, a section, or a leaf.
// Children are kept in insertion order; that order is the node's visible
// top-to-bottom order and is never re-sorted.
type Node struct {
	ID       uuid.UUID
	Label    string
	Font     lipgloss.Style
	Brush    lipgloss.TerminalColor
	Indent   int
	Padding  Size
	Expanded bool
	Excluded bool
	Symbol   Symbol
	Children []*Node
}

// NewNode creates a node with the given label, expanded by default.
func NewNode(label string) *Node {
	return &Node{
		ID:       uuid.New(),
		Label:    label,
		Expanded: true,
	}
}

// AddChild appends a child, preserving insertion order.
func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Walk visits the node and its descendants depth-first in child order,
// passing each node's depth relative to n. Returning false from fn stops
// descent into that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

// Flatten returns the visible nodes in display order: every node is included,
// but children of a collapsed node are skipped. Used by the viewer for cursor
// navigation.
func (n *Node) Flatten() []*Node {
	var out []*Node
	n.Walk(func(node *Node, _ int) bool {
		out = append(out, node)
		return node.Expanded
	})
	return out
}

// Count returns the total number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, int) bool {
		total++
		return true
	})
	return total
}
