package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	d := NoopDanceHooks{}
	d.OnDanceStart(ctx, "run", 3)
	d.OnStep(ctx, "run", 0, "remove", 3)
	d.OnDanceComplete(ctx, "run", 2, 4, time.Second, nil)

	td := NoopTeardownHooks{}
	td.OnTeardown(ctx, 3, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Dance().(NoopDanceHooks); !ok {
		t.Error("Dance() should return NoopDanceHooks by default")
	}
	if _, ok := Teardown().(NoopTeardownHooks); !ok {
		t.Error("Teardown() should return NoopTeardownHooks by default")
	}

	customDance := &testDanceHooks{}
	SetDanceHooks(customDance)
	if Dance() != customDance {
		t.Error("SetDanceHooks should set custom hooks")
	}

	customTeardown := &testTeardownHooks{}
	SetTeardownHooks(customTeardown)
	if Teardown() != customTeardown {
		t.Error("SetTeardownHooks should set custom hooks")
	}

	Reset()
	if _, ok := Dance().(NoopDanceHooks); !ok {
		t.Error("Reset() should restore NoopDanceHooks")
	}
	if _, ok := Teardown().(NoopTeardownHooks); !ok {
		t.Error("Reset() should restore NoopTeardownHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDanceHooks{}
	SetDanceHooks(custom)

	// Setting nil should be ignored
	SetDanceHooks(nil)

	if Dance() != custom {
		t.Error("SetDanceHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDanceHooks struct{ NoopDanceHooks }
type testTeardownHooks struct{ NoopTeardownHooks }
