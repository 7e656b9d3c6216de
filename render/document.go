package render

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Root container names
const (
	HeaderRoot = "header"
	MainRoot   = "main"
	BodyRoot   = "body"
)

// KeyListener reacts to a key press. It reports whether the key was handled.
type KeyListener func(msg tea.KeyMsg) bool

// ListenerID identifies a registered KeyListener
type ListenerID int

type listener struct {
	id ListenerID
	fn KeyListener
}

// Document is the whole page: header and main hold the board, body holds
// overlays drawn on top of it. It also owns the page-wide key listeners.
type Document struct {
	header *Node
	main   *Node
	body   *Node

	listeners []listener
	nextID    ListenerID
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		header: NewNode(HeaderRoot, nil),
		main:   NewNode(MainRoot, nil),
		body:   NewNode(BodyRoot, nil),
	}
}

func (d *Document) Header() *Node { return d.header }
func (d *Document) Main() *Node   { return d.main }
func (d *Document) Body() *Node   { return d.body }

// Find searches header, main and body in that order
func (d *Document) Find(name string) *Node {
	for _, root := range []*Node{d.header, d.main, d.body} {
		if n := Find(root, name); n != nil {
			return n
		}
	}
	return nil
}

// HasOverlay reports whether anything is mounted in the body
func (d *Document) HasOverlay() bool {
	return len(d.body.children) > 0
}

// Activators returns the focusable nodes in document order. While an overlay
// is mounted only the body is considered.
func (d *Document) Activators() []*Node {
	roots := []*Node{d.header, d.main}
	if d.HasOverlay() {
		roots = []*Node{d.body}
	}
	var out []*Node
	for _, root := range roots {
		Walk(root, func(n *Node) {
			if _, ok := n.view.(Activator); ok {
				out = append(out, n)
			}
		})
	}
	return out
}

// RenderPage renders header and main stacked
func (d *Document) RenderPage(width int, focused *Node) string {
	header := Render(d.header, width, focused)
	main := Render(d.main, width, focused)
	if header == "" {
		return main
	}
	if main == "" {
		return header
	}
	return header + "\n" + main
}

// RenderOverlay renders the body, or "" when nothing is mounted there
func (d *Document) RenderOverlay(width int, focused *Node) string {
	return Render(d.body, width, focused)
}

// AddKeyListener registers fn for every key press until removed
func (d *Document) AddKeyListener(fn KeyListener) ListenerID {
	d.nextID++
	d.listeners = append(d.listeners, listener{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveKeyListener unregisters a listener. It reports false for unknown ids.
func (d *Document) RemoveKeyListener(id ListenerID) bool {
	i := slices.IndexFunc(d.listeners, func(l listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	d.listeners = slices.Delete(d.listeners, i, i+1)
	return true
}

// ListenerCount returns the number of registered key listeners
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// DispatchKey delivers msg to every listener registered at the time of the
// call. Listeners may remove themselves while handling it.
func (d *Document) DispatchKey(msg tea.KeyMsg) bool {
	handled := false
	for _, l := range slices.Clone(d.listeners) {
		if l.fn(msg) {
			handled = true
		}
	}
	return handled
}
