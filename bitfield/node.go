package bitfield

// Node is any element of a field tree: a primitive (UInt, Buf), or a
// composite (Group, Alt, Sequence, Array). Decode reads from the cursor;
// Encode appends to the writer. Both respect Transparent: a transparent
// node consumes and produces zero bits.
type Node interface {
	Name() string
	Decode(c *Cursor) error
	Encode(w *Writer) error
	Transparent() bool
}

// Group is an ordered, named collection of child nodes, encoded and
// decoded left to right. It is the tree's only way of exposing siblings to
// computed-field callbacks: callbacks close over sibling Node pointers
// directly (idiomatic Go), or look them up by name via Sibling when the
// set of fields is data-driven (as in the IE catalogue).
type Group struct {
	name     string
	children []Node
	byName   map[string]Node
}

// NewGroup builds a Group from already-constructed children. Names must be
// unique among siblings.
func NewGroup(name string, children ...Node) *Group {
	g := &Group{name: name, byName: make(map[string]Node, len(children))}
	g.children = children
	for _, ch := range children {
		g.byName[ch.Name()] = ch
	}
	return g
}

// Name returns the group's own name.
func (g *Group) Name() string { return g.name }

// Transparent groups are never transparent themselves; transparency is a
// per-child property.
func (g *Group) Transparent() bool { return false }

// Sibling looks up a child by name. It returns nil if absent, letting a
// computed-field callback treat a missing sibling as "not yet decoded" or
// "not part of this variant".
func (g *Group) Sibling(name string) Node {
	return g.byName[name]
}

// Children returns the group's children in encode/decode order.
func (g *Group) Children() []Node {
	return g.children
}

// Decode decodes each non-transparent child in order.
func (g *Group) Decode(c *Cursor) error {
	for _, ch := range g.children {
		if ch.Transparent() {
			continue
		}
		if err := ch.Decode(c); err != nil {
			return err
		}
	}
	return nil
}

// Encode encodes each non-transparent child in order.
func (g *Group) Encode(w *Writer) error {
	for _, ch := range g.children {
		if ch.Transparent() {
			continue
		}
		if err := ch.Encode(w); err != nil {
			return err
		}
	}
	return nil
}
