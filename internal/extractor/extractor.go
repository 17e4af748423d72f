// Package extractor turns receipt input files — plain text dumps, PDF
// receipts, and photographed images — into the raw text the parser consumes.
package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// imageExtensions are the receipt photo formats handed to OCR.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// ExtractText reads a receipt file and returns its raw text. The extraction
// method is chosen by file extension: .txt is read directly, .pdf goes
// through the PDF text layer (with OCR as a last resort for scanned PDFs),
// and image formats go straight to OCR.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil
	case ext == ".pdf":
		return ExtractPDFText(path)
	case imageExtensions[ext]:
		return ExtractImageText(path)
	default:
		return "", fmt.Errorf("unsupported input type %q (expected .txt, .pdf, or an image)", ext)
	}
}

// textQuality returns the ratio of readable ASCII characters (letters,
// digits, common punctuation, whitespace) to total characters. Garbage from
// undecodable font encodings scores low.
func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*`, r) ||
			r == '£' || r == '€' {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// commonReceiptWords appear on virtually every store receipt. Extracted text
// containing none of them is likely garbage.
var commonReceiptWords = []string{
	"total", "subtotal", "tax", "cash", "change", "receipt", "store",
	"thank", "item", "qty", "price", "card", "sale", "date",
}

// isReadableText checks that extracted text is long enough, mostly readable
// ASCII, and contains at least one word a receipt would carry.
func isReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 20 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	lower := strings.ToLower(text)
	for _, word := range commonReceiptWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
