package ingest

import (
	"fmt"
	"os/exec"
)

// ExtractText runs tesseract over one page image and returns the raw text.
func ExtractText(imagePath, lang string) (string, error) {
	cmd := exec.Command("tesseract", imagePath, "stdout", "-l", lang)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
