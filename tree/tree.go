package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"os"
	"sync"

	"github.com/npillmayer/hierarchy/maybe"
)

// Confirmation is written to a tree's output after data has been set.
const Confirmation = "Data has been set."

// Tree is an implicit tree over a flat sequence of nodes, each of which
// references its parent by id. A tree is initialized exactly once with
// SetData and is read-only afterwards, which makes it safe to share
// between goroutines.
//
// The zero value is an empty tree writing its confirmation to os.Stdout.
type Tree[K comparable, V any] struct {
	mx          sync.RWMutex
	nodes       []*Node[K, V] // insertion order of the input
	initialized bool
	out         io.Writer
}

// Option configures a Tree.
type Option func(*options)

type options struct {
	out io.Writer
}

// WithOutput sets the writer the confirmation of SetData goes to.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// New creates an empty tree.
func New[K comparable, V any](opts ...Option) *Tree[K, V] {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{out: o.out}
}

// SetData initializes a tree from a sequence of records. incoming may be a
// []Record[K,V], or a slice or array of key/value maps
// (map[string]any or map[any]any) with entries for "id", "parent" and
// "value". A nil parent marks a root, a nil value an absent payload.
//
// SetData fails with
//
//	NoDataReceived          if incoming is nil,
//	DataAlreadyInitialized  if the tree has been initialized before,
//	WrongFormat             if incoming is not a sequence or a record is malformed,
//
// checked in that order. On failure the tree is left unchanged. On success
// the line "Data has been set." is written to the tree's output. A failure
// to write the confirmation is traced, but does not fail SetData, as the
// data has been committed by then.
func (t *Tree[K, V]) SetData(incoming any) error {
	if isAbsent(incoming) {
		tracer().Errorf("tree: no data received")
		return newError(NoDataReceived, nil)
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	if t.initialized {
		tracer().Errorf("tree: data has already been initialized")
		return newError(DataAlreadyInitialized, nil)
	}
	nodes, err := buildNodes[K, V](incoming)
	if err != nil {
		tracer().Errorf("tree: %v", err)
		return err
	}
	t.nodes = nodes
	t.initialized = true
	tracer().Infof("tree: initialized with %d nodes", len(nodes))
	out := t.out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, Confirmation); err != nil {
		tracer().Errorf("tree: cannot write confirmation: %v", err)
	}
	return nil
}

// Len returns the number of nodes.
func (t *Tree[K, V]) Len() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.nodes)
}

// Nodes returns all nodes in insertion order. The returned slice is a copy.
func (t *Tree[K, V]) Nodes() []*Node[K, V] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	nodes := make([]*Node[K, V], len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// GetRoot returns the first node without a parent. If there are no such
// nodes, GetRoot fails with an error of kind ObjectNotFound.
func (t *Tree[K, V]) GetRoot() (*Node[K, V], error) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	for _, node := range t.nodes {
		if node.IsRoot() {
			return node, nil
		}
	}
	tracer().Debugf("tree: no root among %d nodes", len(t.nodes))
	return nil, newError(ObjectNotFound, "Root")
}

// Roots returns all nodes without a parent, in insertion order.
func (t *Tree[K, V]) Roots() []*Node[K, V] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	var roots []*Node[K, V]
	for _, node := range t.nodes {
		if node.IsRoot() {
			roots = append(roots, node)
		}
	}
	return roots
}

// GetNode returns the first node with the given id, or fails with an error
// of kind NodeNotFound.
func (t *Tree[K, V]) GetNode(id K) (*Node[K, V], error) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.findNode(id)
}

func (t *Tree[K, V]) findNode(id K) (*Node[K, V], error) {
	for _, node := range t.nodes {
		if node.id == id {
			return node, nil
		}
	}
	tracer().Debugf("tree: node %v not found", id)
	return nil, newError(NodeNotFound, id)
}

// GetParent returns the parent node of the node with id childID.
// If the child does not exist, GetParent fails with kind NodeNotFound.
// If the child exists but its parent does not (or the child is a root),
// it fails with kind ParentNotFound.
func (t *Tree[K, V]) GetParent(childID K) (*Node[K, V], error) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	child, err := t.findNode(childID)
	if err != nil {
		return nil, err
	}
	pid, ok := child.parent.Get()
	if !ok {
		return nil, newError(ParentNotFound, childID)
	}
	parent, err := t.findNode(pid)
	if err != nil {
		return nil, newError(ParentNotFound, pid)
	}
	return parent, nil
}

// GetChildren returns all nodes referencing parentID as their parent, in
// insertion order. A parent without children yields an empty slice.
// If no node with id parentID exists, GetChildren fails with kind
// NodeNotFound.
func (t *Tree[K, V]) GetChildren(parentID K) ([]*Node[K, V], error) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	if _, err := t.findNode(parentID); err != nil {
		return nil, err
	}
	children := []*Node[K, V]{}
	for _, node := range t.nodes {
		if node.hasParent(parentID) {
			children = append(children, node)
		}
	}
	return children, nil
}

// GetNodeValue returns the value of the node with id nodeID, which may be
// Nothing. If the node does not exist, GetNodeValue fails with kind
// NodeNotFound.
func (t *Tree[K, V]) GetNodeValue(nodeID K) (maybe.Maybe[V], error) {
	node, err := t.GetNode(nodeID)
	if err != nil {
		return nil, err
	}
	return node.Value(), nil
}
