package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/pkg/pipeline"
	"github.com/matzehuels/dotgen/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (single format) or base path (multiple)
	engine  string // layout engine: dot, neato, fdp, ...
	formats string // comma-separated output formats
	noCache bool   // bypass the artifact cache
}

// renderCommand creates the render command. It reads DOT source from a
// file (or stdin with "-") and writes one artifact per requested format.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render DOT source into image artifacts",
		Long: `Render a DOT source file into one or more output formats.

Reads from stdin when the file argument is "-". With a single format the
output flag names the artifact directly; with several it is used as a
base path and each artifact gets its format's extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			prog := newProgress(c.Logger)

			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			formats := parseFormats(opts.formats, c.Config.Formats)
			engine := opts.engine
			if engine == "" {
				engine = c.Config.Engine
			}

			sp := newSpinner("Rendering...")
			sp.Start()
			result, err := c.newRunner(opts.noCache).Execute(ctx, pipeline.Options{
				Source:  source,
				Engine:  engine,
				Formats: formats,
				TTL:     c.Config.TTL(),
			})
			sp.Stop()
			if err != nil {
				printError("Render failed")
				return err
			}

			for _, format := range formats {
				path := outputPath(opts.output, args[0], format, len(formats) > 1)
				if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printSuccess("Wrote %s", path)
				if result.CacheHits[format] {
					printDetail("from cache")
				}
			}
			prog.done(fmt.Sprintf("rendered %s via %s", strings.Join(formats, ", "), engine))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "K", "", "layout engine: "+strings.Join(render.Engines(), ", "))
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(render.Formats(), ", ")+" (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// readSource reads DOT source from path, or from stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// parseFormats splits the --format flag, falling back to the configured
// defaults when empty.
func parseFormats(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}

// outputPath decides where an artifact goes. With an explicit output and
// a single format the output is used verbatim; otherwise the base name
// (explicit output or the input file) gets the format's extension.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if base == "" || base == "-" {
			base = "graph"
		}
	}
	return base + "." + render.Ext(format)
}
