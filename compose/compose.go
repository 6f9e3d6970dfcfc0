// Package compose provides handle composition for nodes with multiple
// owners. Several independent owners can claim one underlying node: each
// registers a setter, every setter observes the same node on attach and
// nil on detach.
package compose

import (
	"sync"

	"tessera/node"
)

// RefFunc receives the current node on attach, or nil on detach.
type RefFunc func(*node.Node)

// Ref is a single-slot cell holding a node handle. The zero value is an
// empty, usable Ref.
type Ref struct {
	mu sync.RWMutex
	n  *node.Node
}

// Set stores the node. Setting nil empties the cell.
func (r *Ref) Set(n *node.Node) {
	r.mu.Lock()
	r.n = n
	r.mu.Unlock()
}

// Get returns the current node, or nil if the cell is empty.
func (r *Ref) Get() *node.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.n
}

// Clear empties the cell.
func (r *Ref) Clear() {
	r.Set(nil)
}

// Setter returns a RefFunc bound to this cell, for composing the cell
// with other owners via Refs.
func (r *Ref) Setter() RefFunc {
	return r.Set
}

// Refs composes multiple setters into one. The returned RefFunc invokes
// every non-nil setter with the same node, in order. Composing zero or
// only nil setters yields a harmless no-op.
func Refs(fns ...RefFunc) RefFunc {
	return func(n *node.Node) {
		for _, fn := range fns {
			if fn != nil {
				fn(n)
			}
		}
	}
}
