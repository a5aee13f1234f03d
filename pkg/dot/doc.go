// Package dot assembles Graphviz DOT source code with method calls.
//
// A [Graph] is an append-only buffer of rendered DOT statements plus
// three default-attribute mappings (graph, node, edge). Mutators like
// [Graph.Node] and [Graph.Edge] quote their arguments and append one
// finished source line each; [Graph.Lines] walks the current state and
// yields the complete document lazily.
//
// The package is write-only: it produces DOT text but never parses it.
// Feed the result to the pkg/render package (or any Graphviz layout
// tool) to produce images.
//
// # Example
//
//	g := dot.NewDigraph(dot.WithName("deps"))
//	g.Node("a", dot.Label("app"))
//	g.Edge("a", "b")
//	fmt.Print(g)
//
// produces
//
//	digraph deps {
//		a [label=app]
//		a -> b
//	}
//
// Subgraphs are composed either from a ready-built instance via
// [Graph.Subgraph] or through the scoped builder [Graph.SubgraphFunc],
// which merges the child into the parent only when the build function
// succeeds.
//
// Graph values are not safe for concurrent mutation; callers must
// serialize writers.
package dot
