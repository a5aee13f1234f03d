package render

import (
	"slices"
	"testing"

	"github.com/matzehuels/dotgen/pkg/errors"
)

func TestValidateEngine(t *testing.T) {
	for _, engine := range Engines() {
		if err := ValidateEngine(engine); err != nil {
			t.Errorf("ValidateEngine(%q) = %v", engine, err)
		}
	}

	err := ValidateEngine("warp")
	if !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Errorf("err = %v, want INVALID_ENGINE", err)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range Formats() {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", format, err)
		}
	}

	err := ValidateFormat("gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatsIncludePDF(t *testing.T) {
	if !slices.Contains(Formats(), "pdf") {
		t.Error("Formats() must include pdf")
	}
	if !slices.IsSorted(Formats()) {
		t.Error("Formats() must be sorted")
	}
	if !slices.IsSorted(Engines()) {
		t.Error("Engines() must be sorted")
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"svg", "image/svg+xml"},
		{"png", "image/png"},
		{"jpg", "image/jpeg"},
		{"pdf", "application/pdf"},
		{"dot", "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.format); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
