package dot

import "fmt"

// Subgraph appends the content of sub to g as a subgraph block.
//
// The candidate must match the parent's [Kind] (directed and undirected
// graphs cannot be mixed) and must not be strict. On success every line
// of the subgraph fragment is indented by one tab and appended to g's
// body; sub itself is left untouched and may be discarded.
func (g *Graph) Subgraph(sub *Graph) error {
	if sub.kind != g.kind {
		return fmt.Errorf("%w: %s into %s", ErrMixedKinds, sub.kind, g.kind)
	}
	if sub.strict {
		return ErrStrictSubgraph
	}
	for line := range sub.lines(true) {
		g.body = append(g.body, "\t"+line)
	}
	return nil
}

// SubgraphFunc builds a short-lived child graph and merges it into g.
//
// The child is created with the parent's [Kind] and the given options;
// strictness is never inherited and is forced off, since subgraphs
// cannot be strict. When build returns nil the child is merged via
// [Graph.Subgraph]; otherwise the child is discarded, g's body is left
// unchanged, and the build error is returned.
//
// Subgraph names beginning with "cluster" are a layout-engine hint for
// cluster rendering; they pass through with ordinary quoting.
func (g *Graph) SubgraphFunc(build func(*Graph) error, opts ...Option) error {
	sub := New(g.kind, opts...)
	sub.strict = false
	if err := build(sub); err != nil {
		return err
	}
	return g.Subgraph(sub)
}
