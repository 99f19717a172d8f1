// Package pkg provides the libraries behind the dancelinks command.
//
// # Overview
//
// Dancelinks builds a circular doubly linked list and walks it depth-first,
// detaching one node per level and putting it back on the way out. The pkg
// directory is organized into these areas:
//
//  1. [ring] - The circular list and its detach/restore primitives
//  2. [dance] - The recursive traversal, its visitors and run lifecycle
//  3. [io] - JSON import and export of recorded traversals
//  4. [observability] - Hooks for run and teardown events
//  5. [errors] - Error codes and input validation
//  6. [buildinfo] - Version information set at link time
//
// # Architecture
//
// The typical data flow:
//
//	node count
//	     ↓
//	[ring] package (allocate and link N nodes)
//	     ↓
//	[dance] package (detach, recurse, restore; one snapshot per step)
//	     ↓
//	stdout lines, [io] JSON trace, or Graphviz output
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/dancelinks/pkg/dance"
//	    "github.com/matzehuels/dancelinks/pkg/ring"
//	)
//
//	r := ring.FromValues(0, 1, 2)
//	p := &dance.Printer[int]{W: os.Stdout}
//	dance.Descend(r.Head(), dance.WithVisitor(p.Visit))
//	r.TeardownAll()
//
// [ring]: https://pkg.go.dev/github.com/matzehuels/dancelinks/pkg/ring
// [dance]: https://pkg.go.dev/github.com/matzehuels/dancelinks/pkg/dance
// [io]: https://pkg.go.dev/github.com/matzehuels/dancelinks/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/dancelinks/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/dancelinks/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dancelinks/pkg/buildinfo
package pkg
