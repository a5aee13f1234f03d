package dot

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSubgraphDirect(t *testing.T) {
	parent := NewDigraph(WithName("G"))
	child := NewDigraph(WithName("cluster_0"), WithComment("inner"))
	child.Node("A")

	if err := parent.Subgraph(child); err != nil {
		t.Fatalf("Subgraph: %v", err)
	}

	want := []string{
		"\t// inner\n",
		"\tsubgraph cluster_0 {\n",
		"\t\tA\n",
		"\t}\n",
	}
	if got := parent.Body(); !slices.Equal(got, want) {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestSubgraphAnonymousHeader(t *testing.T) {
	parent := NewGraph()
	child := NewGraph()
	child.Node("A")

	if err := parent.Subgraph(child); err != nil {
		t.Fatalf("Subgraph: %v", err)
	}
	if got := parent.Body()[0]; got != "\t{\n" {
		t.Errorf("anonymous subgraph header = %q, want \"\\t{\\n\"", got)
	}
}

func TestSubgraphIndentsOneTab(t *testing.T) {
	child := NewDigraph(WithName("inner"))
	child.Node("A")
	child.Edge("A", "B")

	top := slices.Collect(child.lines(true))

	parent := NewDigraph()
	if err := parent.Subgraph(child); err != nil {
		t.Fatalf("Subgraph: %v", err)
	}

	merged := parent.Body()
	if len(merged) != len(top) {
		t.Fatalf("merged %d lines, fragment has %d", len(merged), len(top))
	}
	for i, line := range merged {
		if line != "\t"+top[i] {
			t.Errorf("line %d = %q, want %q", i, line, "\t"+top[i])
		}
	}
}

func TestSubgraphKindMismatch(t *testing.T) {
	tests := []struct {
		name          string
		parent, child *Graph
	}{
		{"UndirectedIntoDirected", NewDigraph(), NewGraph()},
		{"DirectedIntoUndirected", NewGraph(), NewDigraph()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.Subgraph(tt.child)
			if !errors.Is(err, ErrMixedKinds) {
				t.Fatalf("err = %v, want ErrMixedKinds", err)
			}
			if len(tt.parent.Body()) != 0 {
				t.Error("failed merge must not modify the parent")
			}
		})
	}
}

func TestSubgraphStrictRejected(t *testing.T) {
	parent := NewDigraph()
	child := NewDigraph(WithStrict())
	child.Node("A")

	if err := parent.Subgraph(child); !errors.Is(err, ErrStrictSubgraph) {
		t.Fatalf("err = %v, want ErrStrictSubgraph", err)
	}
	if len(parent.Body()) != 0 {
		t.Error("failed merge must not modify the parent")
	}
}

func TestSubgraphFunc(t *testing.T) {
	parent := NewDigraph(WithName("G"))

	err := parent.SubgraphFunc(func(sg *Graph) error {
		if !sg.Directed() {
			t.Error("child must inherit the parent's kind")
		}
		sg.Node("A")
		sg.Edge("A", "B")
		return nil
	}, WithName("cluster_io"))
	if err != nil {
		t.Fatalf("SubgraphFunc: %v", err)
	}

	src := parent.String()
	if !strings.Contains(src, "\tsubgraph cluster_io {\n") {
		t.Errorf("source missing subgraph header:\n%s", src)
	}
	if !strings.Contains(src, "\t\tA -> B\n") {
		t.Errorf("source missing indented edge:\n%s", src)
	}
}

func TestSubgraphFuncDiscardsOnError(t *testing.T) {
	parent := NewDigraph()
	parent.Node("kept")
	before := parent.Body()

	boom := errors.New("boom")
	err := parent.SubgraphFunc(func(sg *Graph) error {
		sg.Node("lost")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want build error", err)
	}
	if !slices.Equal(parent.Body(), before) {
		t.Error("failed build must leave the parent unchanged")
	}
}

func TestSubgraphFuncForcesNonStrict(t *testing.T) {
	parent := NewGraph(WithStrict())

	err := parent.SubgraphFunc(func(sg *Graph) error {
		if sg.Strict() {
			t.Error("child must never be strict")
		}
		return nil
	}, WithStrict())
	if err != nil {
		t.Fatalf("SubgraphFunc: %v", err)
	}
}
