package ingest

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
)

// RenderPages converts each page of a PDF to a PNG image under outDir and
// returns the image paths in page order. Requires the pdftoppm binary.
func RenderPages(pdfPath, outDir string) ([]string, error) {
	cmd := exec.Command("pdftoppm", "-r", "300", "-png", pdfPath, filepath.Join(outDir, "page"))
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, out)
	}

	pages, err := filepath.Glob(filepath.Join(outDir, "page*.png"))
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", pdfPath)
	}

	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)
	return pages, nil
}
