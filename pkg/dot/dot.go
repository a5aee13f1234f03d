package dot

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrInvalidScope is returned by [Graph.Attr] when the scope is not
	// empty and not one of "graph", "node", or "edge".
	ErrInvalidScope = errors.New("attr statement must target graph, node, or edge")

	// ErrMixedKinds is returned by [Graph.Subgraph] when the candidate's
	// directedness differs from the parent's. Directed and undirected
	// graphs cannot be nested in each other.
	ErrMixedKinds = errors.New("cannot add subgraph of different kind")

	// ErrStrictSubgraph is returned by [Graph.Subgraph] when the
	// candidate is strict. The DOT grammar only allows the strict
	// modifier on top-level graphs.
	ErrStrictSubgraph = errors.New("subgraphs cannot be strict")
)

// Kind selects the DOT rendering vocabulary: the header keyword and the
// edge operator. It is fixed at construction time.
type Kind int

const (
	// Undirected graphs use the "graph" keyword and the -- edge operator.
	Undirected Kind = iota
	// Directed graphs use the "digraph" keyword and the -> edge operator.
	Directed
)

// String returns the DOT header keyword for the kind.
func (k Kind) String() string {
	if k == Directed {
		return "digraph"
	}
	return "graph"
}

// edgeOp returns the edge operator for the kind.
func (k Kind) edgeOp() string {
	if k == Directed {
		return "->"
	}
	return "--"
}

// Graph accumulates DOT statements and renders them as source text.
// Statements are stored as finished lines: once appended they cannot be
// edited individually, only cleared wholesale.
//
// The zero value is a usable anonymous undirected graph; [New],
// [NewGraph], and [NewDigraph] are the usual constructors.
type Graph struct {
	name    string
	comment string
	kind    Kind
	strict  bool

	graphAttrs Attrs
	nodeAttrs  Attrs
	edgeAttrs  Attrs

	body []string
}

// Option configures a [Graph] during construction. Options deep-copy
// their inputs: mutating an argument after construction never affects
// the graph and vice versa.
type Option func(*Graph)

// WithName sets the graph name.
func WithName(name string) Option {
	return func(g *Graph) { g.name = name }
}

// WithComment sets a free-text comment rendered as a leading // line.
func WithComment(comment string) Option {
	return func(g *Graph) { g.comment = comment }
}

// WithStrict marks the graph strict, instructing the layout engine to
// collapse duplicate edges. Only valid for top-level graphs.
func WithStrict() Option {
	return func(g *Graph) { g.strict = true }
}

// WithGraphAttrs appends graph-level default attributes.
func WithGraphAttrs(attrs ...Attr) Option {
	return func(g *Graph) { g.graphAttrs = append(g.graphAttrs, attrs...) }
}

// WithNodeAttrs appends node-level default attributes.
func WithNodeAttrs(attrs ...Attr) Option {
	return func(g *Graph) { g.nodeAttrs = append(g.nodeAttrs, attrs...) }
}

// WithEdgeAttrs appends edge-level default attributes.
func WithEdgeAttrs(attrs ...Attr) Option {
	return func(g *Graph) { g.edgeAttrs = append(g.edgeAttrs, attrs...) }
}

// WithBody appends verbatim, already-rendered statement lines. Each
// line should end in a newline.
func WithBody(lines ...string) Option {
	return func(g *Graph) { g.body = append(g.body, lines...) }
}

// New creates a graph of the given kind.
func New(kind Kind, opts ...Option) *Graph {
	g := &Graph{kind: kind}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGraph creates an undirected graph.
func NewGraph(opts ...Option) *Graph { return New(Undirected, opts...) }

// NewDigraph creates a directed graph.
func NewDigraph(opts ...Option) *Graph { return New(Directed, opts...) }

// Name returns the graph name ("" for an anonymous graph).
func (g *Graph) Name() string { return g.name }

// Comment returns the leading comment ("" for none).
func (g *Graph) Comment() string { return g.comment }

// Kind returns the graph's directedness discriminator.
func (g *Graph) Kind() Kind { return g.kind }

// Directed reports whether the graph renders with directed vocabulary.
func (g *Graph) Directed() bool { return g.kind == Directed }

// Strict reports whether the graph is marked strict.
func (g *Graph) Strict() bool { return g.strict }

// Body returns a copy of the rendered statement lines.
func (g *Graph) Body() []string { return slices.Clone(g.body) }

// GraphDefaults returns a copy of the graph-level default attributes.
func (g *Graph) GraphDefaults() Attrs { return g.graphAttrs.Clone() }

// NodeDefaults returns a copy of the node-level default attributes.
func (g *Graph) NodeDefaults() Attrs { return g.nodeAttrs.Clone() }

// EdgeDefaults returns a copy of the edge-level default attributes.
func (g *Graph) EdgeDefaults() Attrs { return g.edgeAttrs.Clone() }

// SetGraphDefault sets a graph-level default attribute.
func (g *Graph) SetGraphDefault(key, value string) { g.graphAttrs.Set(key, value) }

// SetNodeDefault sets a node-level default attribute.
func (g *Graph) SetNodeDefault(key, value string) { g.nodeAttrs.Set(key, value) }

// SetEdgeDefault sets an edge-level default attribute.
func (g *Graph) SetEdgeDefault(key, value string) { g.edgeAttrs.Set(key, value) }

// Copy returns a deep copy. The two instances evolve independently.
func (g *Graph) Copy() *Graph {
	return &Graph{
		name:       g.name,
		comment:    g.comment,
		kind:       g.kind,
		strict:     g.strict,
		graphAttrs: g.graphAttrs.Clone(),
		nodeAttrs:  g.nodeAttrs.Clone(),
		edgeAttrs:  g.edgeAttrs.Clone(),
		body:       slices.Clone(g.body),
	}
}

// Node appends a node statement. The name is quoted as needed; use
// [Label] for the display caption and [Raw] for pre-escaped values.
func (g *Graph) Node(name string, attrs ...Attr) {
	g.body = append(g.body, fmt.Sprintf("\t%s%s\n", Quote(name), attrList(attrs)))
}

// Edge appends an edge statement between two endpoints of the form
// node[:port[:compass]]. The operator is fixed by the graph's [Kind].
func (g *Graph) Edge(tail, head string, attrs ...Attr) {
	g.body = append(g.body, fmt.Sprintf("\t%s %s %s%s\n",
		QuoteEdge(tail), g.kind.edgeOp(), QuoteEdge(head), attrList(attrs)))
}

// Edges appends one plain edge statement per (tail, head) pair, in
// input order.
func (g *Graph) Edges(pairs ...[2]string) {
	for _, p := range pairs {
		g.Edge(p[0], p[1])
	}
}

// EdgesFrom appends one plain edge statement per pair from a lazily
// produced sequence. Pairs are consumed one at a time, so the sequence
// may be arbitrarily long.
func (g *Graph) EdgesFrom(pairs iter.Seq2[string, string]) {
	for tail, head := range pairs {
		g.Edge(tail, head)
	}
}

// Attr appends an attribute statement. An empty scope emits a bare
// document-level key=value statement; otherwise scope must be "graph",
// "node", or "edge" (case-insensitive) and the statement targets that
// scope. An empty attrs list appends nothing.
func (g *Graph) Attr(scope string, attrs ...Attr) error {
	if scope != "" {
		switch strings.ToLower(scope) {
		case "graph", "node", "edge":
		default:
			return fmt.Errorf("%w: %q", ErrInvalidScope, scope)
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	if scope == "" {
		g.body = append(g.body, fmt.Sprintf("\t%s\n", aList(attrs)))
	} else {
		g.body = append(g.body, fmt.Sprintf("\t%s%s\n", scope, attrList(attrs)))
	}
	return nil
}

// Clear empties the body and all three default-attribute mappings.
func (g *Graph) Clear() {
	g.ClearBody()
	g.graphAttrs = nil
	g.nodeAttrs = nil
	g.edgeAttrs = nil
}

// ClearBody empties the body but keeps the default-attribute mappings.
func (g *Graph) ClearBody() {
	g.body = nil
}

// Lines yields the DOT source line by line. Every yielded line ends in
// a newline. The sequence is finite and restartable: each new range
// walks the graph's state at that moment, so renderings separated by a
// mutation differ accordingly.
func (g *Graph) Lines() iter.Seq[string] {
	return g.lines(false)
}

// lines is the renderer behind [Graph.Lines] and [Graph.Subgraph].
// Subgraph mode swaps the header templates and never emits strict;
// callers validate strictness before entering subgraph mode.
func (g *Graph) lines(subgraph bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		if g.comment != "" {
			if !yield("// " + g.comment + "\n") {
				return
			}
		}
		if !yield(g.header(subgraph)) {
			return
		}
		for _, def := range []struct {
			scope string
			attrs Attrs
		}{
			{"graph", g.graphAttrs},
			{"node", g.nodeAttrs},
			{"edge", g.edgeAttrs},
		} {
			if len(def.attrs) == 0 {
				continue
			}
			if !yield(fmt.Sprintf("\t%s%s\n", def.scope, attrList(def.attrs))) {
				return
			}
		}
		for _, line := range g.body {
			if !yield(line) {
				return
			}
		}
		yield("}\n")
	}
}

// header renders the opening line, one of four templates keyed by
// (subgraph, named).
func (g *Graph) header(subgraph bool) string {
	name := ""
	if g.name != "" {
		name = Quote(g.name) + " "
	}
	if subgraph {
		if g.name == "" {
			return "{\n"
		}
		return "subgraph " + name + "{\n"
	}
	if g.strict {
		return "strict " + g.kind.String() + " " + name + "{\n"
	}
	return g.kind.String() + " " + name + "{\n"
}

// String returns the complete DOT source.
func (g *Graph) String() string {
	var b strings.Builder
	for line := range g.Lines() {
		b.WriteString(line)
	}
	return b.String()
}

// WriteTo writes the DOT source to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for line := range g.Lines() {
		m, err := io.WriteString(w, line)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
