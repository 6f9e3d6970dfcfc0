// Package collection provides the ordered item collection primitive used
// by composite controls (menus, tab lists, radio groups) to discover
// their registered items at read time.
//
// Items register into an unordered side-table as their backing nodes
// mount; registration order across siblings is not guaranteed to match
// visual order. Items() therefore never trusts insertion order: it scans
// the collection root's subtree for the reserved marker attribute and
// sorts the registered items by where their nodes appear in that scan.
package collection

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"tessera/compose"
	"tessera/node"
	"tessera/slot"
)

// Handle is the stable identity of one registered item. Create one per
// item instance and reuse it for the item's whole mounted lifetime so
// that re-binding updates the existing entry instead of duplicating it.
type Handle struct {
	id string
}

// NewHandle creates a fresh item handle.
func NewHandle() *Handle {
	return &Handle{id: uuid.NewString()}
}

// ID returns the handle's unique id, usable as an external key (for
// example a bubblezone zone id).
func (h *Handle) ID() string {
	return h.id
}

func (h *Handle) String() string {
	if h == nil {
		return "handle(<nil>)"
	}
	return fmt.Sprintf("handle(%s)", h.id)
}

// Item is one registered item: its handle, the caller-defined metadata,
// and the backing node used for ordering.
type Item[M any] struct {
	Handle *Handle
	Meta   M
	Node   *node.Node

	// gen identifies the bind that produced this entry, so a stale
	// unbind never removes a newer registration of the same handle.
	gen uint64
}

// Collection is a factory instantiation for one kind of collection. It
// owns the reserved marker attribute for that kind and a default scope
// that backs fail-open use outside any provider.
type Collection[M any] struct {
	name         string
	marker       string
	defaultScope *Scope[M]
}

// New creates a collection kind. The name namespaces the marker
// attribute so distinct kinds never collide on one node.
func New[M any](name string) *Collection[M] {
	c := &Collection[M]{
		name:   name,
		marker: "tessera:" + name + ":item",
	}
	c.defaultScope = c.NewScope()
	return c
}

// Name returns the collection kind's name.
func (c *Collection[M]) Name() string {
	return c.name
}

// Marker returns the reserved attribute used to locate registered items
// during the traversal scan. Callers must not set it themselves.
func (c *Collection[M]) Marker() string {
	return c.marker
}

// Scope is one live collection instance: a root handle cell plus the
// item registry, shared by every binder and query in one control
// subtree. Sibling scopes share nothing.
type Scope[M any] struct {
	c        *Collection[M]
	rootRef  compose.Ref
	mu       sync.RWMutex
	registry map[*Handle]Item[M]
	binds    uint64
}

// NewScope creates a fresh scope with an empty registry and an empty
// root cell. Providers call this once per mounted subtree.
func (c *Collection[M]) NewScope() *Scope[M] {
	return &Scope[M]{
		c:        c,
		registry: make(map[*Handle]Item[M]),
	}
}

// scope resolves a caller-supplied scope, falling back to the
// collection's default scope. The default scope starts with an empty
// root cell, so queries against it return nothing until a nil-scope
// BindRoot populates it; binding with a nil scope is never an error.
func (c *Collection[M]) scope(s *Scope[M]) *Scope[M] {
	if s == nil {
		return c.defaultScope
	}
	return s
}

// BindRoot composes the scope's root cell with any extra ownership
// claims and attaches them all to n. Every owner observes the same node;
// the returned release detaches them all (each observes nil). No wrapper
// node is introduced.
//
// A nil scope binds against the collection's default scope, which keeps
// the call safe but non-functional.
func (c *Collection[M]) BindRoot(s *Scope[M], n *node.Node, refs ...compose.RefFunc) (release func()) {
	s = c.scope(s)
	set := compose.Refs(append([]compose.RefFunc{s.rootRef.Setter()}, refs...)...)
	slot.Apply(n, slot.WithRef(set))
	return func() {
		set(nil)
	}
}

// BindItem tags n with the collection's marker attribute, registers the
// item under h, and attaches any extra ownership claims to n. Binding
// the same handle again replaces the stored metadata and node without
// changing the item count. The returned unbind removes the registry
// entry, strips the marker, and detaches the claims; it is safe to call
// more than once.
//
// The marker is applied synchronously with registration so the very next
// Items() call can already order this item.
func (c *Collection[M]) BindItem(s *Scope[M], h *Handle, meta M, n *node.Node, refs ...compose.RefFunc) (unbind func()) {
	if h == nil || n == nil {
		return func() {}
	}
	s = c.scope(s)
	set := compose.Refs(refs...)
	slot.Apply(n, slot.WithMarker(c.marker), slot.WithRef(set))

	s.mu.Lock()
	s.binds++
	gen := s.binds
	s.registry[h] = Item[M]{Handle: h, Meta: meta, Node: n, gen: gen}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		cur, ok := s.registry[h]
		mine := ok && cur.gen == gen
		if mine {
			delete(s.registry, h)
		}
		s.mu.Unlock()
		if mine {
			n.DelAttr(c.marker)
		}
		set(nil)
	}
}

// Items returns the scope's registered items ordered by the traversal
// position of their backing nodes under the scope's root. An empty root
// cell (provider unmounted or never mounted) yields nil; this is the
// defined fallback, not an error. The registry is read, never mutated,
// so repeated calls are independent.
//
// An item whose node is absent from the scan sorts before all found
// items; the relative order among such items is unspecified.
func (c *Collection[M]) Items(s *Scope[M]) []Item[M] {
	s = c.scope(s)
	root := s.rootRef.Get()
	if root == nil {
		return nil
	}

	ordered := root.FindAll(c.marker)
	position := make(map[*node.Node]int, len(ordered))
	for i, n := range ordered {
		position[n] = i
	}

	s.mu.RLock()
	items := make([]Item[M], 0, len(s.registry))
	for _, it := range s.registry {
		items = append(items, it)
	}
	s.mu.RUnlock()

	at := func(it Item[M]) int {
		if i, ok := position[it.Node]; ok {
			return i
		}
		return -1
	}
	slices.SortStableFunc(items, func(a, b Item[M]) int {
		return cmp.Compare(at(a), at(b))
	})
	return items
}

// Len returns the number of registered items in the scope, independent
// of whether their nodes are currently reachable from the root.
func (s *Scope[M]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

// Items is shorthand for querying through the scope's own collection.
func (s *Scope[M]) Items() []Item[M] {
	return s.c.Items(s)
}

// Root returns the node currently held by the scope's root cell, or nil.
func (s *Scope[M]) Root() *node.Node {
	return s.rootRef.Get()
}
