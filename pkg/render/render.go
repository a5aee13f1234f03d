package render

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotgen/pkg/errors"
)

// DefaultEngine is the layout engine used when none is requested.
const DefaultEngine = "dot"

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = "svg"

// engines maps engine names to Graphviz layouts.
var engines = map[string]graphviz.Layout{
	"dot":       graphviz.DOT,
	"neato":     graphviz.NEATO,
	"fdp":       graphviz.FDP,
	"sfdp":      graphviz.SFDP,
	"circo":     graphviz.CIRCO,
	"twopi":     graphviz.TWOPI,
	"osage":     graphviz.OSAGE,
	"patchwork": graphviz.PATCHWORK,
}

// formats maps format names to Graphviz output formats. The pdf format
// is handled separately: it renders svg first and converts with
// rsvg-convert.
var formats = map[string]graphviz.Format{
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
	"jpg": graphviz.JPG,
	"dot": graphviz.XDOT,
}

// Engines returns the supported layout engine names, sorted.
func Engines() []string {
	return slices.Sorted(maps.Keys(engines))
}

// Formats returns the supported output format names, sorted.
func Formats() []string {
	out := slices.Collect(maps.Keys(formats))
	out = append(out, "pdf")
	slices.Sort(out)
	return out
}

// ValidateEngine checks that engine is a known layout engine name.
func ValidateEngine(engine string) error {
	if _, ok := engines[engine]; !ok {
		return errors.New(errors.ErrCodeInvalidEngine,
			"unknown engine %q (supported: %s)", engine, strings.Join(Engines(), ", "))
	}
	return nil
}

// ValidateFormat checks that format is a known output format name.
func ValidateFormat(format string) error {
	if _, ok := formats[format]; !ok && format != "pdf" {
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return nil
}

// Render lays out the DOT source with engine and produces format bytes.
// Engine and format default to [DefaultEngine] and [DefaultFormat] when
// empty.
func Render(ctx context.Context, source string, engine, format string) ([]byte, error) {
	if engine == "" {
		engine = DefaultEngine
	}
	if format == "" {
		format = DefaultFormat
	}
	if err := ValidateEngine(engine); err != nil {
		return nil, err
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	if format == "pdf" {
		svg, err := render(ctx, source, engine, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		pdf, err := ToPDF(svg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "convert svg to pdf")
		}
		return pdf, nil
	}

	return render(ctx, source, engine, formats[format])
}

// render runs the embedded Graphviz engine on source.
func render(ctx context.Context, source string, engine string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(engines[engine])

	g, err := graphviz.ParseBytes([]byte(source))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT source")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// ContentType returns the Content-Type header value for a format.
func ContentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "jpg":
		return "image/jpeg"
	case "pdf":
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Ext returns the filename extension for a format.
func Ext(format string) string {
	if format == "" {
		return DefaultFormat
	}
	return format
}
