package cli

import (
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback []string
		want     []string
	}{
		{"empty uses fallback", "", []string{"svg"}, []string{"svg"}},
		{"single", "png", []string{"svg"}, []string{"png"}},
		{"comma separated", "svg,png,pdf", nil, []string{"svg", "png", "pdf"}},
		{"trims whitespace", " svg , png ", nil, []string{"svg", "png"}},
		{"drops empty items", "svg,,png,", nil, []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input, tt.fallback); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		multi  bool
		want   string
	}{
		{"explicit single", "out.svg", "in.gv", "svg", false, "out.svg"},
		{"derived from input", "", "diagram.gv", "png", false, "diagram.png"},
		{"derived strips dirs", "", "graphs/deps.gv", "svg", false, "deps.svg"},
		{"stdin falls back", "", "-", "svg", false, "graph.svg"},
		{"explicit base with multi", "out", "in.gv", "pdf", true, "out.pdf"},
		{"dot format keeps dot extension", "", "in.gv", "dot", false, "in.dot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.format, tt.multi); got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
					tt.output, tt.input, tt.format, tt.multi, got, tt.want)
			}
		})
	}
}
