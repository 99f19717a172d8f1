package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNode is returned by [Validate] when given a nil node.
	ErrNilNode = errors.New("ring: nil node")

	// ErrBroken is returned by [Validate] when a node's neighbours do not
	// point back at it, or when the forward walk does not close on the
	// starting node.
	ErrBroken = errors.New("ring: broken links")
)

// Validate checks the ring containing start. Every node reached by a
// forward walk must satisfy next.prev == node and prev.next == node, the
// walk must return to start without revisiting any other node, and a
// backward walk must cover the same number of nodes.
//
// It returns the ring size on success.
func Validate[T comparable](start *Node[T]) (int, error) {
	if start == nil {
		return 0, ErrNilNode
	}

	seen := make(map[*Node[T]]struct{})
	curr := start
	for pos := 0; ; pos++ {
		if curr.next == nil || curr.prev == nil {
			return 0, fmt.Errorf("%w: node %v at position %d is unlinked", ErrBroken, curr.Value, pos)
		}
		if curr.next.prev != curr {
			return 0, fmt.Errorf("%w: next.prev of %v at position %d", ErrBroken, curr.Value, pos)
		}
		if curr.prev.next != curr {
			return 0, fmt.Errorf("%w: prev.next of %v at position %d", ErrBroken, curr.Value, pos)
		}
		seen[curr] = struct{}{}

		curr = curr.next
		if curr == start {
			break
		}
		if _, ok := seen[curr]; ok {
			return 0, fmt.Errorf("%w: walk from %v never returns", ErrBroken, start.Value)
		}
	}

	size := len(seen)
	back := 0
	curr = start
	for {
		back++
		curr = curr.prev
		if curr == start || back > size {
			break
		}
	}
	if back != size {
		return 0, fmt.Errorf("%w: forward size %d, backward size %d", ErrBroken, size, back)
	}
	return size, nil
}
