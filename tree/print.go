package tree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders the implicit hierarchy of a tree. Root candidates are
// printed first, in insertion order, each with its descendants. Nodes
// which are not reachable from a root (their parent is missing, or they
// are part of a cycle) are collected under a "(detached)" branch.
func (t *Tree[K, V]) String() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	header := fmt.Sprintf("Tree(len=%d)\n", len(t.nodes))
	children := make(map[K][]*Node[K, V])
	ids := make(map[K]*Node[K, V])
	for _, node := range t.nodes {
		if p, ok := node.parent.Get(); ok {
			children[p] = append(children[p], node)
		}
		if _, dup := ids[node.id]; !dup {
			ids[node.id] = node
		}
	}
	printer := tp.New()
	visited := make(map[*Node[K, V]]bool)
	for _, node := range t.nodes {
		if node.IsRoot() {
			printSubtree(printer, node, children, visited)
		}
	}
	var detached tp.Tree
	for _, node := range t.nodes {
		if visited[node] {
			continue
		}
		if detached == nil {
			detached = printer.AddBranch("(detached)")
		}
		top := topmostUnvisited(node, ids, visited)
		printSubtree(detached, top, children, visited)
	}
	return header + printer.String()
}

// topmostUnvisited climbs from node to the highest unvisited ancestor,
// stopping at missing parents and at cycles.
func topmostUnvisited[K comparable, V any](node *Node[K, V], ids map[K]*Node[K, V],
	visited map[*Node[K, V]]bool) *Node[K, V] {
	//
	seen := map[*Node[K, V]]bool{node: true}
	for {
		p, ok := node.parent.Get()
		if !ok {
			return node
		}
		parent, exists := ids[p]
		if !exists || visited[parent] || seen[parent] {
			return node
		}
		seen[parent] = true
		node = parent
	}
}

func printSubtree[K comparable, V any](printer tp.Tree, node *Node[K, V],
	children map[K][]*Node[K, V], visited map[*Node[K, V]]bool) {
	//
	visited[node] = true
	label := nodeLabel(node)
	var chs []*Node[K, V]
	for _, ch := range children[node.id] {
		if !visited[ch] {
			chs = append(chs, ch)
		}
	}
	if len(chs) == 0 {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range chs {
		if !visited[ch] { // may have been reached through a sibling meanwhile
			printSubtree(branch, ch, children, visited)
		}
	}
}

func nodeLabel[K comparable, V any](node *Node[K, V]) string {
	if v, ok := node.value.Get(); ok {
		return fmt.Sprintf("%v: %v", node.id, v)
	}
	return fmt.Sprintf("%v", node.id)
}
