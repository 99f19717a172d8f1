package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dancelinks/pkg/dance"
	"github.com/matzehuels/dancelinks/pkg/errors"
	"github.com/matzehuels/dancelinks/pkg/ring"
)

func recordSteps(t *testing.T, n int) []dance.Step[int] {
	t.Helper()
	r := buildRing(n)
	defer r.TeardownAll()

	var tr dance.Trace[int]
	dance.Descend(r.Head(), dance.WithVisitor(tr.Visit))
	return tr.Steps()
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestPlayModelNavigation(t *testing.T) {
	steps := recordSteps(t, 3)
	var m tea.Model = newPlayModel(steps, ring.DefaultMarker)

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{name: "forward", keys: []string{"right"}, want: 1},
		{name: "vim forward", keys: []string{"l", "l"}, want: 3},
		{name: "clamped at end", keys: []string{"n", "n", "n"}, want: 3},
		{name: "back", keys: []string{"left"}, want: 2},
		{name: "first", keys: []string{"g"}, want: 0},
		{name: "clamped at start", keys: []string{"h"}, want: 0},
		{name: "last", keys: []string{"G"}, want: 3},
	}

	for _, tt := range tests {
		m = press(m, tt.keys...)
		if got := m.(playModel).cursor; got != tt.want {
			t.Errorf("%s: cursor = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newPlayModel(recordSteps(t, 2), ring.DefaultMarker)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s should quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should return tea.Quit", msg)
		}
	}
}

func TestPlayModelIgnoresOtherMessages(t *testing.T) {
	m := newPlayModel(recordSteps(t, 2), ring.DefaultMarker)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || next.(playModel).cursor != 0 {
		t.Error("non-key messages should leave the model unchanged")
	}
}

func TestPlayModelView(t *testing.T) {
	m := newPlayModel(recordSteps(t, 3), ring.DefaultMarker)

	view := m.View()
	for _, want := range []string{"Dancing Links", "removing", "depth 0", "[1/4]", "≬"} {
		if !strings.Contains(view, want) {
			t.Errorf("first view missing %q:\n%s", want, view)
		}
	}

	view = press(m, "G").View()
	for _, want := range []string{"restored", "depth 0", "[4/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("last view missing %q:\n%s", want, view)
		}
	}
}

func TestHighlightValue(t *testing.T) {
	line := "≬ 0 ≬ 1 ≬ 2 ≬"
	got := highlightValue(line, "≬", "1")

	if strings.Count(got, "≬") != 4 {
		t.Errorf("markers should be kept: %q", got)
	}
	for _, v := range []string{"0", "1", "2"} {
		if !strings.Contains(got, v) {
			t.Errorf("value %s missing from %q", v, got)
		}
	}
}

func TestPlayCommandEmptyRing(t *testing.T) {
	c, out, errOut := testCLI(t)

	if err := execute(c, "play", "1"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(errOut.String(), "nothing to remove") {
		t.Errorf("want a warning for a single node, got %q", errOut.String())
	}
}

func TestPlayTraceEmptyPath(t *testing.T) {
	c, _, _ := testCLI(t)

	err := execute(c, "play", "--trace", "")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
