package dot_test

import (
	"fmt"

	"github.com/matzehuels/dotgen/pkg/dot"
)

func Example() {
	g := dot.NewDigraph(dot.WithComment("The Round Table"))
	g.Node("A", dot.Label("King Arthur"))
	g.Node("B", dot.Label("Sir Bedevere the Wise"))
	g.Node("L", dot.Label("Sir Lancelot the Brave"))
	g.Edges([2]string{"A", "B"}, [2]string{"A", "L"})
	g.Edge("B", "L", dot.Raw("constraint", "false"))
	fmt.Print(g)
	// Output:
	// // The Round Table
	// digraph {
	// 	A [label="King Arthur"]
	// 	B [label="Sir Bedevere the Wise"]
	// 	L [label="Sir Lancelot the Brave"]
	// 	A -> B
	// 	A -> L
	// 	B -> L [constraint=false]
	// }
}

func ExampleGraph_Attr() {
	g := dot.NewGraph(dot.WithName("wide"))
	g.Attr("", dot.Attr{Key: "rankdir", Value: "LR"})
	g.Attr("node", dot.Attr{Key: "shape", Value: "plaintext"})
	g.Edge("a", "b")
	fmt.Print(g)
	// Output:
	// graph wide {
	// 	rankdir=LR
	// 	node [shape=plaintext]
	// 	a -- b
	// }
}

func ExampleGraph_SubgraphFunc() {
	g := dot.NewDigraph(dot.WithName("G"))
	g.SubgraphFunc(func(sg *dot.Graph) error {
		sg.SetGraphDefault("color", "lightgrey")
		sg.Edges([2]string{"a0", "a1"}, [2]string{"a1", "a2"})
		return nil
	}, dot.WithName("cluster_0"))
	g.Edge("start", "a0")
	fmt.Print(g)
	// Output:
	// digraph G {
	// 	subgraph cluster_0 {
	// 		graph [color=lightgrey]
	// 		a0 -> a1
	// 		a1 -> a2
	// 	}
	// 	start -> a0
	// }
}

func ExampleSorted() {
	g := dot.NewGraph()
	g.Node("n", dot.Sorted(map[string]string{"shape": "box", "color": "blue"})...)
	fmt.Print(g)
	// Output:
	// graph {
	// 	n [color=blue shape=box]
	// }
}
