package ring

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMarker is the glyph printed around and between snapshot values to
// show that the last value links back to the first.
const DefaultMarker = "≬"

// Node is one element of a ring.
//
// The zero value is not usable; nodes are created by [Ring.Append].
type Node[T comparable] struct {
	Value T

	prev, next *Node[T]
}

// Next returns the node's successor. For a detached node it is the
// successor the node had when it was detached.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node's predecessor. For a detached node it is the
// predecessor the node had when it was detached.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Alone reports whether n is the only node left in its ring.
func (n *Node[T]) Alone() bool { return n.next == n }

// Detach removes n from its ring without releasing it. Only the two
// neighbour link fields are written; n keeps its own prev and next.
func (n *Node[T]) Detach() {
	n.next.prev = n.prev
	n.prev.next = n.next
}

// Restore links a detached node back between the neighbours it remembers.
// It must be called in the reverse order of the corresponding Detach calls.
func (n *Node[T]) Restore() {
	n.next.prev = n
	n.prev.next = n
}

// Ring is the handle of a circular doubly linked list.
//
// The zero value is an empty ring ready for use.
type Ring[T comparable] struct {
	head *Node[T]
}

// New returns an empty ring.
func New[T comparable]() *Ring[T] {
	return &Ring[T]{}
}

// FromValues returns a ring holding vs in order.
func FromValues[T comparable](vs ...T) *Ring[T] {
	r := New[T]()
	for _, v := range vs {
		r.Append(v)
	}
	return r
}

// Head returns the entry point, or nil if the ring is empty.
func (r *Ring[T]) Head() *Node[T] { return r.head }

// Empty reports whether the ring has no entry point.
func (r *Ring[T]) Empty() bool { return r.head == nil }

// Append inserts v as the last element, immediately before the entry
// point, and returns its node. The first value appended to an empty ring
// becomes a self-linked entry point.
func (r *Ring[T]) Append(v T) *Node[T] {
	n := &Node[T]{Value: v}
	if r.head == nil {
		n.prev, n.next = n, n
		r.head = n
		return n
	}

	last := r.head.prev
	n.next = r.head
	r.head.prev = n
	n.prev = last
	last.next = n
	return n
}

// Find returns the first node holding v in a forward scan from the entry
// point, or nil if there is none.
func (r *Ring[T]) Find(v T) *Node[T] {
	if r.head == nil {
		return nil
	}
	curr := r.head
	for {
		if curr.Value == v {
			return curr
		}
		curr = curr.next
		if curr == r.head {
			return nil
		}
	}
}

// Delete unlinks and releases the first node holding v. It reports whether
// a node was found; deleting an absent value is a no-op.
//
// Delete is meant for teardown. During a traversal use [Node.Detach],
// which keeps the node restorable.
func (r *Ring[T]) Delete(v T) bool {
	n := r.Find(v)
	if n == nil {
		return false
	}

	switch {
	case n.next == n:
		r.head = nil
	case n == r.head:
		r.head = n.next
		n.prev.next = r.head
		r.head.prev = n.prev
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	return true
}

// TeardownAll deletes the entry point's value until the ring is empty and
// returns the number of nodes deleted.
func (r *Ring[T]) TeardownAll() int {
	deleted := 0
	for r.head != nil {
		if !r.Delete(r.head.Value) {
			break
		}
		deleted++
	}
	return deleted
}

// Len returns the number of nodes reachable from the entry point.
func (r *Ring[T]) Len() int {
	count := 0
	r.Walk(func(*Node[T]) bool {
		count++
		return true
	})
	return count
}

// Walk calls fn for every node in a forward walk from the entry point,
// stopping early if fn returns false.
func (r *Ring[T]) Walk(fn func(*Node[T]) bool) {
	walkFrom(r.head, fn)
}

// Values returns the ring's values in a forward walk from the entry point.
func (r *Ring[T]) Values() []T {
	return ValuesFrom(r.head)
}

// ValuesFrom returns the values in a forward walk rooted at n. A nil node
// yields nil.
func ValuesFrom[T comparable](n *Node[T]) []T {
	var out []T
	walkFrom(n, func(curr *Node[T]) bool {
		out = append(out, curr.Value)
		return true
	})
	return out
}

func walkFrom[T comparable](start *Node[T], fn func(*Node[T]) bool) {
	if start == nil {
		return
	}
	curr := start
	for {
		if !fn(curr) {
			return
		}
		curr = curr.next
		if curr == start {
			return
		}
	}
}

// Snapshot renders the ring from the entry point with [DefaultMarker].
func (r *Ring[T]) Snapshot() string {
	return Format(r.head, DefaultMarker)
}

// Fprint writes the entry-rooted snapshot followed by a newline.
func (r *Ring[T]) Fprint(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Snapshot())
	return err
}

// Format renders the ring rooted at n as a single line, with marker before
// the first value, after the last, and between every pair:
//
//	≬ 0 ≬ 1 ≬ 2 ≬
//
// A nil node renders as the empty string.
func Format[T comparable](n *Node[T], marker string) string {
	return FormatValues(ValuesFrom(n), marker)
}

// FormatValues renders values the way [Format] renders a ring walk.
func FormatValues[T any](values []T, marker string) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(marker)
	for _, v := range values {
		fmt.Fprintf(&b, " %v %s", v, marker)
	}
	return b.String()
}
