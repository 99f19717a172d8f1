package dance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/dancelinks/pkg/observability"
	"github.com/matzehuels/dancelinks/pkg/ring"
)

// Run descends from r's entry point and reports the run through the
// registered observability hooks. Every step is forwarded to
// [observability.DanceHooks.OnStep] before reaching the caller's visitors.
//
// The returned Result carries a fresh run ID. An empty ring completes
// immediately with zero levels.
func Run[T comparable](ctx context.Context, r *ring.Ring[T], opts ...Option) Result {
	id := uuid.NewString()
	hooks := observability.Dance()

	hooks.OnDanceStart(ctx, id, r.Len())
	start := time.Now()

	forward := func(s Step[T]) {
		hooks.OnStep(ctx, id, s.Depth, s.Phase.String(), len(s.Values))
	}
	opts = append([]Option{WithVisitor(forward)}, opts...)

	res := Descend(r.Head(), opts...)
	res.ID = id

	hooks.OnDanceComplete(ctx, id, res.Levels, res.Snapshots, time.Since(start), res.Err)
	return res
}

// Teardown releases every node of r, reports the count through the
// registered teardown hooks and returns it.
func Teardown[T comparable](ctx context.Context, r *ring.Ring[T]) int {
	start := time.Now()
	deleted := r.TeardownAll()
	observability.Teardown().OnTeardown(ctx, deleted, time.Since(start))
	return deleted
}
