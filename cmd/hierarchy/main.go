/*
Command hierarchy loads a file of parent-referencing records and answers a
single structural query about it.

	hierarchy --data records.yaml root
	hierarchy --data records.json children 1
	hierarchy -d records.yaml print

Records are given as a YAML or JSON sequence of mappings with keys "id",
"parent" and "value". Ids on the command line are read as integers where
possible, as strings otherwise.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hierarchy.cli'.
func tracer() tracing.Trace {
	return tracing.Select("hierarchy.cli")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
