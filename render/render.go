// Package render is the mount primitive of the board: a tree of named nodes
// that views attach to at one of four insertion points.
package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNotFound reports a container lookup that matched nothing
	ErrNotFound = errors.New("container not found")
	// ErrAlreadyMounted reports a node that already has a parent
	ErrAlreadyMounted = errors.New("node already mounted")
	// ErrDetached reports a sibling insertion next to a container with no parent
	ErrDetached = errors.New("container has no parent")
)

// Position selects where a node is inserted relative to a container
type Position int

const (
	BeforeBegin Position = iota
	AfterBegin
	BeforeEnd
	AfterEnd
)

// String returns the string representation of the position
func (p Position) String() string {
	switch p {
	case BeforeBegin:
		return "beforebegin"
	case AfterBegin:
		return "afterbegin"
	case BeforeEnd:
		return "beforeend"
	case AfterEnd:
		return "afterend"
	default:
		return "unknown"
	}
}

// Frame is what a view knows about the space it renders into
type Frame struct {
	Width   int
	Focused bool
}

// View renders a node: its own chrome around the already rendered children.
type View interface {
	Render(f Frame, children []string) string
}

// Activator is implemented by views that can take focus and react to enter.
type Activator interface {
	Activate()
}

// Node is one element of the tree
type Node struct {
	name     string
	view     View
	parent   *Node
	children []*Node
}

// NewNode creates a detached node. A nil view renders its children stacked.
func NewNode(name string, view View) *Node {
	return &Node{name: name, view: view}
}

func (n *Node) Name() string      { return n.name }
func (n *Node) View() View        { return n.view }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) Mounted() bool     { return n.parent != nil }

// Append attaches child as the last child of n. Views use it to build their
// own fixed inner structure.
func (n *Node) Append(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Mount attaches node at pos relative to container.
func Mount(container, node *Node, pos Position) error {
	if container == nil {
		return fmt.Errorf("mount %q: %w", node.name, ErrNotFound)
	}
	if node.parent != nil {
		return fmt.Errorf("mount %q into %q: %w", node.name, container.name, ErrAlreadyMounted)
	}

	switch pos {
	case AfterBegin:
		container.children = slices.Insert(container.children, 0, node)
		node.parent = container
	case BeforeEnd:
		container.children = append(container.children, node)
		node.parent = container
	case BeforeBegin, AfterEnd:
		parent := container.parent
		if parent == nil {
			return fmt.Errorf("mount %q %s %q: %w", node.name, pos, container.name, ErrDetached)
		}
		i := slices.Index(parent.children, container)
		if pos == AfterEnd {
			i++
		}
		parent.children = slices.Insert(parent.children, i, node)
		node.parent = parent
	default:
		return fmt.Errorf("mount %q: unknown position %d", node.name, int(pos))
	}
	return nil
}

// Unmount detaches node from its parent. It reports false when the node was
// not mounted.
func Unmount(node *Node) bool {
	if node == nil || node.parent == nil {
		return false
	}
	parent := node.parent
	if i := slices.Index(parent.children, node); i >= 0 {
		parent.children = slices.Delete(parent.children, i, i+1)
	}
	node.parent = nil
	return true
}

// Find returns the first node named name under root (root included), in
// depth-first document order.
func Find(root *Node, name string) *Node {
	if root == nil {
		return nil
	}
	if root.name == name {
		return root
	}
	for _, c := range root.children {
		if found := Find(c, name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node named name under root in document order.
func FindAll(root *Node, name string) []*Node {
	var out []*Node
	Walk(root, func(n *Node) {
		if n.name == name {
			out = append(out, n)
		}
	})
	return out
}

// MustFind is Find that reports a miss as an ErrNotFound error.
func MustFind(root *Node, name string) (*Node, error) {
	if n := Find(root, name); n != nil {
		return n, nil
	}
	scope := "<nil>"
	if root != nil {
		scope = root.name
	}
	return nil, fmt.Errorf("%q in %q: %w", name, scope, ErrNotFound)
}

// Walk visits root and its descendants in document order.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	fn(root)
	for _, c := range root.children {
		Walk(c, fn)
	}
}

// Render renders the subtree at root. focused may be nil.
func Render(root *Node, width int, focused *Node) string {
	if root == nil {
		return ""
	}
	children := make([]string, 0, len(root.children))
	for _, c := range root.children {
		if out := Render(c, width, focused); out != "" {
			children = append(children, out)
		}
	}
	if root.view == nil {
		return strings.Join(children, "\n")
	}
	return root.view.Render(Frame{Width: width, Focused: root == focused}, children)
}
