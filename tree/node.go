package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/hierarchy/maybe"
)

// Node is a single record of a tree: an id, a reference to a parent id and
// an optional value. Nodes are immutable once constructed. A node without
// a parent reference (Nothing) is a root candidate.
type Node[K comparable, V any] struct {
	id     K
	parent maybe.Maybe[K]
	value  maybe.Maybe[V]
}

// NewNode creates a node. No validation is performed.
func NewNode[K comparable, V any](id K, parent maybe.Maybe[K], value maybe.Maybe[V]) *Node[K, V] {
	if parent == nil {
		parent = maybe.Nothing[K]()
	}
	if value == nil {
		value = maybe.Nothing[V]()
	}
	return &Node[K, V]{id: id, parent: parent, value: value}
}

// ID returns the identifier of a node.
func (node *Node[K, V]) ID() K {
	return node.id
}

// Parent returns the parent id of a node, or Nothing for a root.
func (node *Node[K, V]) Parent() maybe.Maybe[K] {
	return node.parent
}

// IsRoot is true if node does not reference a parent.
func (node *Node[K, V]) IsRoot() bool {
	return node.parent.IsNothing()
}

// Value returns the payload of a node. An absent payload is returned as
// Nothing, not as an error.
func (node *Node[K, V]) Value() maybe.Maybe[V] {
	return node.value
}

// ValueOrErr returns the payload of a node, failing with an error of
// kind NoValue if the node does not carry one.
func (node *Node[K, V]) ValueOrErr() (V, error) {
	v, ok := node.value.Get()
	if !ok {
		return v, newError(NoValue, node.id)
	}
	return v, nil
}

// hasParent is true if the node references parent id p.
func (node *Node[K, V]) hasParent(p K) bool {
	id, ok := node.parent.Get()
	return ok && id == p
}

func (node *Node[K, V]) String() string {
	if p, ok := node.parent.Get(); ok {
		return fmt.Sprintf("(Node %v ^%v %v)", node.id, p, node.value)
	}
	return fmt.Sprintf("(Node %v ^- %v)", node.id, node.value)
}
