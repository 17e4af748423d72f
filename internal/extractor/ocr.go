package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// IsOCRAvailable reports whether the external OCR tools are installed.
func IsOCRAvailable() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}

// ExtractImageText runs Tesseract OCR on a photographed receipt.
// Requires: tesseract (tesseract-ocr).
func ExtractImageText(path string) (string, error) {
	if !IsOCRAvailable() {
		return "", fmt.Errorf("tesseract not available (install tesseract-ocr)")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("input image: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "receipt-ocr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outBase := filepath.Join(tmpDir, "out")
	// PSM 4 = single column of variable-size text, the usual receipt shape
	cmd := exec.Command("tesseract", path, outBase, "-l", "eng", "--psm", "4")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tesseract failed: %v (output: %s)", err, string(out))
	}

	data, err := os.ReadFile(outBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("tesseract produced no output: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("tesseract recognized no text in %q", path)
	}
	return text, nil
}

// ocrPDF rasterizes a scanned PDF with pdftoppm and OCRs each page image.
// Requires: pdftoppm (poppler-utils) and tesseract.
func ocrPDF(path string) (string, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return "", fmt.Errorf("pdftoppm not available (install poppler-utils): %w", err)
	}
	if !IsOCRAvailable() {
		return "", fmt.Errorf("tesseract not available (install tesseract-ocr)")
	}

	tmpDir, err := os.MkdirTemp("", "receipt-pages-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// 300 DPI gives tesseract enough resolution for thermal-printer fonts
	imgPrefix := filepath.Join(tmpDir, "page")
	cmd := exec.Command("pdftoppm", "-r", "300", "-png", path, imgPrefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %v (output: %s)", err, string(out))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, filepath.Join(tmpDir, e.Name()))
		}
	}
	sort.Strings(images)
	if len(images) == 0 {
		return "", fmt.Errorf("pdftoppm produced no page images")
	}

	var pages []string
	for _, img := range images {
		text, err := ExtractImageText(img)
		if err != nil {
			// Some pages may still work
			fmt.Fprintf(os.Stderr, "ocr warning for %s: %v\n", img, err)
			continue
		}
		pages = append(pages, text)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("OCR produced no text from %d page images", len(images))
	}

	return strings.Join(pages, "\n"), nil
}
