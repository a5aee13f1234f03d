package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/pkg/pipeline"
	"github.com/matzehuels/dotgen/pkg/render"
)

// viewCommand creates the view command: render to a temporary file and
// open it in the system viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var engine, format string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Render DOT source and open the result",
		Long: `Render a DOT source file and open the artifact in the default
system viewer. The artifact is written to a temporary file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			prog := newProgress(c.Logger)

			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			if engine == "" {
				engine = c.Config.Engine
			}

			sp := newSpinner("Rendering...")
			sp.Start()
			result, err := c.newRunner(noCache).Execute(ctx, pipeline.Options{
				Source:  source,
				Engine:  engine,
				Formats: []string{format},
				TTL:     c.Config.TTL(),
			})
			sp.Stop()
			if err != nil {
				printError("Render failed")
				return err
			}

			path := filepath.Join(os.TempDir(), appName+"-"+uuid.NewString()+"."+render.Ext(format))
			if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			if err := openFile(path); err != nil {
				printInfo("Rendered to %s", path)
				return err
			}
			printSuccess("Opened %s", path)
			prog.done(fmt.Sprintf("rendered %s via %s", format, engine))
			return nil
		},
	}

	cmd.Flags().StringVarP(&engine, "engine", "K", "", "layout engine")
	cmd.Flags().StringVarP(&format, "format", "f", render.DefaultFormat, "output format")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// openFile opens path in the platform's default viewer.
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
