/*
Package records reads sequences of parent-referencing records from YAML
or JSON documents.

A record document is a sequence of mappings with keys "id", "parent" and
"value":

	- { id: 1, parent: null, value: root }
	- { id: 2, parent: 1,    value: child1 }

As JSON is a subset of YAML, the equivalent JSON array is accepted as
well. Decoded documents are returned in loosely typed form (slices of
maps), ready to be handed to tree.Tree.SetData, which performs all
format validation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package records

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hierarchy.records'.
func tracer() tracing.Trace {
	return tracing.Select("hierarchy.records")
}
