package dance

// Option configures a traversal.
type Option func(*settings)

type settings struct {
	visitors []any // each a func(Step[T]) for the traversal's T
	maxDepth int
	check    bool
}

func newSettings(opts []Option) settings {
	s := settings{maxDepth: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithVisitor registers fn to receive every [Step]. Visitors run in
// registration order. A visitor whose type parameter does not match the
// ring being traversed is ignored.
func WithVisitor[T comparable](fn func(Step[T])) Option {
	return func(s *settings) {
		if fn != nil {
			s.visitors = append(s.visitors, fn)
		}
	}
}

// WithMaxDepth stops descending at the given level: a node at depth limit
// is treated like the last node of the ring. A negative limit (the
// default) means no limit.
func WithMaxDepth(limit int) Option {
	return func(s *settings) {
		s.maxDepth = limit
	}
}

// WithCheck validates the ring invariants around every restored node. The
// first violation is reported in [Result.Err].
func WithCheck(enabled bool) Option {
	return func(s *settings) {
		s.check = enabled
	}
}

func visitorsFor[T comparable](s settings) []func(Step[T]) {
	var out []func(Step[T])
	for _, v := range s.visitors {
		if fn, ok := v.(func(Step[T])); ok {
			out = append(out, fn)
		}
	}
	return out
}
