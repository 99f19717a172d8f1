// Package ring provides a circular doubly linked list whose nodes can be
// logically removed and restored in O(1), the "dancing links" primitive.
//
// # Overview
//
// Every node carries a prev and a next link. The links are non-owning: they
// reference other nodes of the same ring and never imply responsibility for
// freeing them. A ring of one node links to itself in both directions.
//
// A [Ring] is the handle that designates the entry point. The handle is an
// explicit value passed to every operation; an empty ring has no entry point.
//
// # Basic Usage
//
// Build a ring with [Ring.Append]. Values are inserted before the entry
// point, so a forward walk from the entry yields them in insertion order:
//
//	r := ring.New[int]()
//	for i := range 3 {
//	    r.Append(i)
//	}
//	fmt.Println(r.Snapshot()) // ≬ 0 ≬ 1 ≬ 2 ≬
//
// [Ring.Delete] unlinks and releases the first node holding a value, and
// [Ring.TeardownAll] empties the ring one entry point at a time.
//
// # Dancing Links
//
// [Node.Detach] splices a node out of the ring by pointing its neighbours at
// each other:
//
//	n.next.prev = n.prev
//	n.prev.next = n.next
//
// The detached node keeps its own links untouched, so it still remembers
// exactly where it sat. [Node.Restore] is the exact inverse:
//
//	n.next.prev = n
//	n.prev.next = n
//
// Detach and Restore only ever write the two neighbour fields. As long as
// restorations happen in the reverse order of detachments, any number of
// nested removals can be undone without bookkeeping. The [dance] package
// builds its backtracking traversal on this property.
//
// # Invariants
//
// For every node X currently in the ring, X.next.prev == X and
// X.prev.next == X, and walking next from X returns to X after exactly as
// many steps as there are nodes in the ring. [Validate] checks both.
//
// # Concurrency
//
// Rings are not safe for concurrent use. The handle and its nodes are owned
// by a single call chain.
//
// [dance]: github.com/matzehuels/dancelinks/pkg/dance
package ring
