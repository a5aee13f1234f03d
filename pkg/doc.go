// Package pkg provides the core libraries for dotgen.
//
// # Overview
//
// dotgen builds and renders Graphviz DOT documents. The pkg directory
// is organized into small, composable packages:
//
//  1. [dot] - DOT source construction (graphs, attributes, subgraphs)
//  2. [render] - Engine/format validation and rendering via Graphviz
//  3. [pipeline] - Orchestration (validate → cache lookup → render)
//  4. [cache] - Artifact caching (file, redis, null backends)
//  5. [errors] - Coded errors shared across CLI and service
//  6. [observability] - Optional metrics/tracing hooks
//
// # Architecture
//
// The typical data flow:
//
//	dot.Graph (build DOT source)
//	     ↓
//	pipeline.Runner (cache + orchestration)
//	     ↓
//	render (Graphviz layout engines)
//	     ↓
//	SVG/PNG/JPG/PDF artifacts
//
// # Quick Start
//
//	g := dot.NewDigraph(dot.WithName("deps"))
//	g.Edge("app", "lib")
//	data, err := render.Render(ctx, g.String(), "dot", "svg")
package pkg
