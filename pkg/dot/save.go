package dot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultExt is the filename extension used by [Graph.Save] when no
// filename is supplied.
const DefaultExt = "gv"

// Save writes the DOT source to filename, creating parent directories
// as needed. An empty filename defaults to "<name>.gv", or "graph.gv"
// for an anonymous graph. Returns the path written.
func (g *Graph) Save(filename string) (string, error) {
	if filename == "" {
		name := g.name
		if name == "" {
			name = "graph"
		}
		filename = name + "." + DefaultExt
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := g.WriteTo(w); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}
