/*
Package tree models a flat collection of parent-referencing records as an
implicit tree.

Records are loaded once into a Tree with SetData. Every structural
query (root, parent, children, node and value lookup) is answered by a
linear scan over the records in insertion order, so the first match
always wins: if several nodes carry the same id, GetNode returns the
earliest one; if several nodes have no parent, GetRoot returns the
earliest one.

	t := tree.New[int, string]()
	err := t.SetData([]map[string]any{
		{"id": 2, "parent": 1, "value": "child1"},
		{"id": 1, "parent": nil, "value": "root"},
	})
	root, err := t.GetRoot()          // node 1
	children, err := t.GetChildren(1) // [node 2]

Failures are reported as *Error values tagged with a Kind. Clients
branch on the kind, either with errors.Is against the ErrXxx values or
with KindOf.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hierarchy.tree'.
func tracer() tracing.Trace {
	return tracing.Select("hierarchy.tree")
}
