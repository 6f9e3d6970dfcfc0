// Package slot decorates a caller-supplied node with extra attributes
// and ownership claims without introducing a wrapper node. The caller's
// node is always the node that ends up in the tree; slot only merges
// additional state onto it.
package slot

import (
	"tessera/compose"
	"tessera/node"
)

// Option mutates the target node during Apply.
type Option func(*node.Node)

// WithAttr sets a valued attribute on the target.
func WithAttr(key, value string) Option {
	return func(n *node.Node) {
		n.SetAttr(key, value)
	}
}

// WithMarker sets a presence-only attribute on the target.
func WithMarker(key string) Option {
	return func(n *node.Node) {
		n.SetAttr(key, "")
	}
}

// WithRef attaches an ownership claim: fn is invoked with the target
// node at Apply time. Detach is the caller's responsibility (invoke the
// same RefFunc with nil).
func WithRef(fn compose.RefFunc) Option {
	return func(n *node.Node) {
		if fn != nil {
			fn(n)
		}
	}
}

// Apply merges the options onto n and returns n. A nil node is returned
// unchanged so callers can chain without guarding.
func Apply(n *node.Node, opts ...Option) *node.Node {
	if n == nil {
		return nil
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}
