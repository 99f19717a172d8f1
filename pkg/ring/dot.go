package ring

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the ring from the entry
// point. Solid edges follow next links, dashed edges follow prev links, and
// the entry point is drawn with a double border.
//
// rankdir is passed through to Graphviz ("LR", "TB", ...); empty means LR.
// An empty ring yields a graph with no nodes.
func (r *Ring[T]) ToDOT(rankdir string) string {
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Ring {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=circle, style=filled, fillcolor=white];\n\n")

	ids := make(map[*Node[T]]int)
	r.Walk(func(n *Node[T]) bool {
		id := len(ids)
		ids[n] = id
		if n == r.head {
			fmt.Fprintf(&buf, "  n%d [label=%q, shape=doublecircle];\n", id, fmt.Sprint(n.Value))
		} else {
			fmt.Fprintf(&buf, "  n%d [label=%q];\n", id, fmt.Sprint(n.Value))
		}
		return true
	})
	if len(ids) > 0 {
		buf.WriteString("\n")
	}

	r.Walk(func(n *Node[T]) bool {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", ids[n], ids[n.next])
		fmt.Fprintf(&buf, "  n%d -> n%d [style=dashed, color=gray];\n", ids[n], ids[n.prev])
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the ring as an SVG document via ToDOT.
//
// RenderSVG requires the Graphviz library (github.com/goccy/go-graphviz).
// Errors are returned if Graphviz cannot initialize, the DOT is malformed,
// or rendering fails.
func (r *Ring[T]) RenderSVG(ctx context.Context, rankdir string) ([]byte, error) {
	dot := r.ToDOT(rankdir)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
