package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText reads a PDF receipt and returns its text content. The text
// layer is tried first; scanned PDFs with no usable text layer fall through
// to the external pdftotext command and finally to OCR.
func ExtractPDFText(path string) (string, error) {
	text, libErr := extractWithLibrary(path)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	if text, err := extractWithPdftotext(path); err == nil && isReadableText(text) {
		return text, nil
	}

	if IsOCRAvailable() {
		if text, err := ocrPDF(path); err == nil && isReadableText(text) {
			return text, nil
		}
	}

	if libErr != nil {
		return "", fmt.Errorf("PDF text extraction failed: %v. The PDF may be image-based or use custom font encodings", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted from %q; the receipt may be a scan with no text layer", path)
}

// extractWithLibrary uses the ledongthuc/pdf library. GetTextByRow keeps the
// line structure intact, which the line-oriented parser depends on; the
// plain-text reader is the fallback when row extraction fails.
func extractWithLibrary(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(path)
	if openErr != nil {
		return "", openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var lines []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	if len(lines) > 0 {
		return strings.Join(lines, "\n"), nil
	}

	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// extractWithPdftotext shells out to pdftotext (poppler-utils). The -layout
// flag preserves the receipt's line structure.
func extractWithPdftotext(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("pdftotext produced no output")
	}
	return text, nil
}
