// Package render turns DOT source text into image artifacts.
//
// Layout and rasterization run through the embedded Graphviz engine
// ([github.com/goccy/go-graphviz]), so no system Graphviz installation
// is required. The one exception is the pdf format, which converts the
// SVG output with the rsvg-convert tool (librsvg):
//
//	brew install librsvg      (macOS)
//	apt install librsvg2-bin  (Linux)
//
// The package validates engine and format names up front and reports
// violations with pkg/errors codes, so callers (CLI and HTTP service)
// can map them to exit codes or status codes uniformly.
package render
