package dance

import (
	"fmt"

	"github.com/matzehuels/dancelinks/pkg/ring"
)

// Phase tells whether a [Step] was taken before a node's removal or after
// its restoration.
type Phase int

const (
	// Removal steps are reported just before a node is detached. The
	// snapshot still contains the node.
	Removal Phase = iota
	// Restoration steps are reported just after a node is restored.
	Restoration
)

// String returns "remove" or "restore".
func (p Phase) String() string {
	switch p {
	case Removal:
		return "remove"
	case Restoration:
		return "restore"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ParsePhase is the inverse of [Phase.String].
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "remove":
		return Removal, nil
	case "restore":
		return Restoration, nil
	default:
		return 0, fmt.Errorf("unknown phase %q", s)
	}
}

// Step is one snapshot of the traversal.
type Step[T comparable] struct {
	Depth  int   // recursion level, 0 for the starting node
	Phase  Phase // before removal or after restoration
	Value  T     // value of the node removed or restored at this level
	Values []T   // ring contents in a forward walk from that node
}

// Line renders the step's snapshot the way [ring.Format] renders a ring.
// An empty marker means [ring.DefaultMarker].
func (s Step[T]) Line(marker string) string {
	if marker == "" {
		marker = ring.DefaultMarker
	}
	return ring.FormatValues(s.Values, marker)
}

// Result summarizes a traversal.
type Result struct {
	// ID identifies the run. It is set by [Run] and empty for [Descend].
	ID string

	// Levels is the number of levels that removed a node (N-1 for a ring
	// of N nodes with no depth limit).
	Levels int

	// Snapshots counts reported steps, removals and restorations combined.
	Snapshots int

	Removals     int
	Restorations int

	// Err holds the first invariant violation found when checking is
	// enabled with [WithCheck].
	Err error
}

// Balanced reports whether every removal was matched by a restoration.
func (r Result) Balanced() bool { return r.Removals == r.Restorations }

// Descend runs the dancing-links traversal starting at n, which must be a
// node currently in its ring. A nil node is a no-op.
//
// When Descend returns, the ring holds exactly the nodes it held before, in
// the same order, with n in its original position.
func Descend[T comparable](n *ring.Node[T], opts ...Option) Result {
	s := newSettings(opts)
	var res Result
	if n == nil {
		return res
	}
	t := &traversal[T]{settings: s, visitors: visitorsFor[T](s), res: &res}
	t.descend(n, 0)
	return res
}

type traversal[T comparable] struct {
	settings settings
	visitors []func(Step[T])
	res      *Result
}

func (t *traversal[T]) descend(n *ring.Node[T], depth int) {
	if n.Alone() || t.atLimit(depth) {
		return
	}

	t.emit(n, depth, Removal)
	n.Detach()
	t.res.Removals++
	if depth+1 > t.res.Levels {
		t.res.Levels = depth + 1
	}

	defer func() {
		n.Restore()
		t.res.Restorations++
		if t.settings.check && t.res.Err == nil {
			if _, err := ring.Validate(n); err != nil {
				t.res.Err = fmt.Errorf("depth %d: %w", depth, err)
			}
		}
		t.emit(n, depth, Restoration)
	}()

	t.descend(n.Next(), depth+1)
}

func (t *traversal[T]) atLimit(depth int) bool {
	return t.settings.maxDepth >= 0 && depth >= t.settings.maxDepth
}

func (t *traversal[T]) emit(n *ring.Node[T], depth int, phase Phase) {
	t.res.Snapshots++
	if len(t.visitors) == 0 {
		return
	}
	step := Step[T]{
		Depth:  depth,
		Phase:  phase,
		Value:  n.Value,
		Values: ring.ValuesFrom(n),
	}
	for _, visit := range t.visitors {
		visit(step)
	}
}
