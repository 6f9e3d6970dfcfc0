package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/node"
)

func TestRef_ZeroValue(t *testing.T) {
	var r Ref
	assert.Nil(t, r.Get(), "expected zero-value ref to be empty")
}

func TestRef_SetGetClear(t *testing.T) {
	var r Ref
	n := node.New("root")

	r.Set(n)
	assert.Equal(t, n, r.Get(), "expected stored node back")

	r.Clear()
	assert.Nil(t, r.Get(), "expected cleared ref to be empty")
}

func TestRef_Setter(t *testing.T) {
	var r Ref
	n := node.New("root")

	set := r.Setter()
	set(n)
	assert.Equal(t, n, r.Get(), "expected setter to write through to the cell")

	set(nil)
	assert.Nil(t, r.Get(), "expected nil to empty the cell")
}

func TestRefs_AllOwnersObserveSameNode(t *testing.T) {
	var a, b Ref
	var calls []*node.Node
	record := func(n *node.Node) { calls = append(calls, n) }

	composed := Refs(a.Setter(), b.Setter(), record)

	n := node.New("root")
	composed(n)

	assert.Equal(t, n, a.Get(), "expected first owner to observe the node")
	assert.Equal(t, n, b.Get(), "expected second owner to observe the node")
	require.Len(t, calls, 1, "expected callback invoked once")
	assert.Equal(t, n, calls[0], "expected callback to see the same node")

	composed(nil)
	assert.Nil(t, a.Get(), "expected detach to empty first owner")
	assert.Nil(t, b.Get(), "expected detach to empty second owner")
	require.Len(t, calls, 2, "expected callback invoked on detach")
	assert.Nil(t, calls[1], "expected callback to see nil on detach")
}

func TestRefs_SkipsNilSetters(t *testing.T) {
	var r Ref
	composed := Refs(nil, r.Setter(), nil)

	n := node.New("root")
	composed(n)
	assert.Equal(t, n, r.Get(), "expected nil setters to be skipped")
}

func TestRefs_Empty(t *testing.T) {
	composed := Refs()
	assert.NotPanics(t, func() { composed(node.New("root")) },
		"expected empty composition to be a no-op")
}
