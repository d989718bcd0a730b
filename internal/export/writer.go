// Package export persists generated documents to disk so the UI can offer a
// download link. Export failures are logged by callers and never fail the
// generation that produced the document.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = "generated_pages"
	}
	return &Writer{outputDir: outputDir}
}

// Write stores the document as <outputDir>/<projectID>.html and returns the
// written path.
func (w *Writer) Write(projectID, html string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.outputDir, projectID+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return path, nil
}
