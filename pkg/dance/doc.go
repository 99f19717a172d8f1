// Package dance runs the dancing-links traversal over a [ring.Ring].
//
// # How It Works
//
// [Descend] is a depth-first walk over a shrinking ring. At every level it
//
//  1. stops if the node is the last one left in the ring,
//  2. reports a removal [Step] with the ring as seen from the node,
//  3. detaches the node (O(1), the node keeps its own links),
//  4. descends into the node's successor,
//  5. restores the node from the links it kept, and
//  6. reports a restoration [Step], identical in content to step 2.
//
// Restoration runs in a deferred guard, so every exit from a level puts its
// node back. Each level writes only its own node's two neighbour fields, so
// the call stack is the whole undo log.
//
// A ring of N nodes is walked in N-1 levels and produces 2×(N-1) steps:
//
//	r := ring.FromValues(0, 1, 2)
//	p := &dance.Printer[int]{W: os.Stdout}
//	dance.Descend(r.Head(), dance.WithVisitor(p.Visit))
//	// ≬ 0 ≬ 1 ≬ 2 ≬
//	// ≬ 1 ≬ 2 ≬
//	// ≬ 1 ≬ 2 ≬
//	// ≬ 0 ≬ 1 ≬ 2 ≬
//
// # Observability
//
// [Run] wraps Descend for a whole ring and reports start and completion
// through the hooks registered with the observability package.
//
// The traversal never allocates or frees ring nodes.
package dance
