// Package node implements the element tree that tessera controls render
// into. Controls build a tree of nodes between frames; the collection
// primitive discovers registered items by scanning this tree in traversal
// order, which is the sole authority for item ordering.
package node

// Node is a single element in the tree. A node has an element name,
// namespaced attributes, and an ordered list of children. Nodes are not
// safe for concurrent mutation; the tea update loop owns the tree.
type Node struct {
	name     string
	attrs    map[string]string
	parent   *Node
	children []*Node
}

// New creates a detached node with the given element name.
func New(name string) *Node {
	return &Node{name: name}
}

// Name returns the element name the node was created with.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the node's parent, or nil for a detached or root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's child list in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// SetAttr sets an attribute. An empty value is a valid presence-only
// attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns an attribute's value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// HasAttr reports whether the attribute is present, regardless of value.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.attrs[key]
	return ok
}

// DelAttr removes an attribute if present.
func (n *Node) DelAttr(key string) {
	delete(n.attrs, key)
}

// AppendChild detaches c from its current parent and appends it as the
// last child of n. Appending a node to itself or to one of its own
// descendants is a no-op.
func (n *Node) AppendChild(c *Node) {
	if c == nil || c == n || c.Contains(n) {
		return
	}
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// InsertBefore detaches c and inserts it immediately before ref among
// n's children. A nil or unknown ref appends instead. Inserting a node
// before itself leaves it where it is.
func (n *Node) InsertBefore(c, ref *Node) {
	if c == nil || c == n || c == ref || c.Contains(n) {
		return
	}
	c.Detach()
	idx := -1
	for i, child := range n.children {
		if child == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.parent = n
		n.children = append(n.children, c)
		return
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = c
}

// RemoveChild detaches c from n if c is currently a child of n.
func (n *Node) RemoveChild(c *Node) {
	if c == nil || c.parent != n {
		return
	}
	c.Detach()
}

// Detach removes the node from its parent, leaving its own subtree
// intact. Detaching an already-detached node is a no-op.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, child := range p.children {
		if child == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Contains reports whether d is n itself or a descendant of n.
func (n *Node) Contains(d *Node) bool {
	for cur := d; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Walk visits n and every descendant in depth-first pre-order. The walk
// stops early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// FindAll returns every node in n's subtree (n included) carrying the
// attribute, in traversal order.
func (n *Node) FindAll(attr string) []*Node {
	var out []*Node
	n.Walk(func(cur *Node) bool {
		if cur.HasAttr(attr) {
			out = append(out, cur)
		}
		return true
	})
	return out
}
