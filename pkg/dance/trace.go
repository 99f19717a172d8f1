package dance

import (
	"fmt"
	"io"
)

// Trace records every step it visits.
//
//	var tr dance.Trace[int]
//	dance.Descend(r.Head(), dance.WithVisitor(tr.Visit))
type Trace[T comparable] struct {
	steps []Step[T]
}

// Visit appends s to the trace.
func (t *Trace[T]) Visit(s Step[T]) {
	t.steps = append(t.steps, s)
}

// Steps returns the recorded steps in the order they were taken.
func (t *Trace[T]) Steps() []Step[T] { return t.steps }

// Len returns the number of recorded steps.
func (t *Trace[T]) Len() int { return len(t.steps) }

// Lines renders every recorded step with marker.
func (t *Trace[T]) Lines(marker string) []string {
	lines := make([]string, len(t.steps))
	for i, s := range t.steps {
		lines[i] = s.Line(marker)
	}
	return lines
}

// Printer writes one line per step to W.
//
// Write errors are sticky: after the first failure nothing more is written
// and the error is kept in Err.
type Printer[T comparable] struct {
	W      io.Writer
	Marker string // empty means ring.DefaultMarker
	Err    error
}

// Visit writes the step's snapshot line.
func (p *Printer[T]) Visit(s Step[T]) {
	if p.Err != nil {
		return
	}
	_, p.Err = fmt.Fprintln(p.W, s.Line(p.Marker))
}
