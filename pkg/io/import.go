package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dancelinks/pkg/dance"
)

// ErrMalformed is wrapped by every error that reports a trace whose steps
// could not have come from a traversal.
var ErrMalformed = errors.New("malformed trace")

// ReadJSON decodes a JSON trace from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or a value does not decode into T
//   - A step has a negative depth or an unknown phase
//   - A step's snapshot does not start at its value, or holds more values
//     than the ring has nodes
//   - Removals and restorations do not pair up like nested calls
//
// Validation failures wrap [ErrMalformed] and name the offending step.
// ReadJSON does not close r.
func ReadJSON[T comparable](r io.Reader) (Recording[T], error) {
	var data trace[T]
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return Recording[T]{}, fmt.Errorf("decode: %w", err)
	}
	if data.Nodes < 0 {
		return Recording[T]{}, fmt.Errorf("%w: negative node count %d", ErrMalformed, data.Nodes)
	}

	rec := Recording[T]{Nodes: data.Nodes, Steps: make([]dance.Step[T], 0, len(data.Steps))}
	var open []dance.Step[T]
	for i, s := range data.Steps {
		phase, err := dance.ParsePhase(s.Phase)
		if err != nil {
			return Recording[T]{}, fmt.Errorf("%w: step %d: %v", ErrMalformed, i, err)
		}
		st := dance.Step[T]{Depth: s.Depth, Phase: phase, Value: s.Value, Values: s.Values}
		if err := checkStep(st, data.Nodes); err != nil {
			return Recording[T]{}, fmt.Errorf("%w: step %d: %v", ErrMalformed, i, err)
		}

		switch phase {
		case dance.Removal:
			if st.Depth != len(open) {
				return Recording[T]{}, fmt.Errorf("%w: step %d: removal at depth %d, want %d",
					ErrMalformed, i, st.Depth, len(open))
			}
			open = append(open, st)
		case dance.Restoration:
			if len(open) == 0 {
				return Recording[T]{}, fmt.Errorf("%w: step %d: restoration without removal", ErrMalformed, i)
			}
			top := open[len(open)-1]
			if top.Depth != st.Depth || top.Value != st.Value {
				return Recording[T]{}, fmt.Errorf("%w: step %d: restores %v at depth %d, want %v at depth %d",
					ErrMalformed, i, st.Value, st.Depth, top.Value, top.Depth)
			}
			open = open[:len(open)-1]
		}
		rec.Steps = append(rec.Steps, st)
	}
	if len(open) != 0 {
		return Recording[T]{}, fmt.Errorf("%w: %d removals never restored", ErrMalformed, len(open))
	}

	return rec, nil
}

func checkStep[T comparable](s dance.Step[T], nodes int) error {
	if s.Depth < 0 {
		return fmt.Errorf("negative depth %d", s.Depth)
	}
	if len(s.Values) > nodes {
		return fmt.Errorf("%d values in a ring of %d", len(s.Values), nodes)
	}
	if len(s.Values) == 0 || s.Values[0] != s.Value {
		return fmt.Errorf("snapshot does not start at %v", s.Value)
	}
	return nil
}

// ImportJSON reads a JSON file at path and returns the decoded trace.
// It returns the same validation errors as [ReadJSON].
func ImportJSON[T comparable](path string) (Recording[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording[T]{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON[T](f)
}
