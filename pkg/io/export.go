package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dancelinks/pkg/dance"
)

type trace[T comparable] struct {
	Nodes int       `json:"nodes"`
	Steps []step[T] `json:"steps"`
}

type step[T comparable] struct {
	Depth  int    `json:"depth"`
	Phase  string `json:"phase"`
	Value  T      `json:"value"`
	Values []T    `json:"values"`
}

// Recording is a decoded trace: the ring size it came from and its steps.
type Recording[T comparable] struct {
	Nodes int
	Steps []dance.Step[T]
}

// WriteJSON encodes the steps of a traversal over a ring of the given size
// as JSON and writes them to w.
func WriteJSON[T comparable](nodes int, steps []dance.Step[T], w io.Writer) error {
	out := trace[T]{
		Nodes: nodes,
		Steps: make([]step[T], len(steps)),
	}
	for i, s := range steps {
		out.Steps[i] = step[T]{
			Depth:  s.Depth,
			Phase:  s.Phase.String(),
			Value:  s.Value,
			Values: s.Values,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a trace to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON[T comparable](nodes int, steps []dance.Step[T], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(nodes, steps, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
