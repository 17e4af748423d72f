package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Numeric date shape found on most receipts: D[D]/D[D]/D[D][D][D] with
// either slashes or dashes as separators.
var datePattern = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)

// amountTokenPattern matches a monetary token, thousands separators included.
var amountTokenPattern = regexp.MustCompile(`\d[\d.,]*`)

// parseNumber converts a numeric token from a receipt line to a float64.
// A token carrying both separators ("1,234.56") treats commas as thousands
// separators; a lone comma ("3,50") is a European decimal separator.
func parseNumber(token string) (float64, error) {
	token = strings.TrimSpace(token)
	token = strings.Trim(token, ".,")
	if strings.Contains(token, ",") && strings.Contains(token, ".") {
		token = strings.ReplaceAll(token, ",", "")
	} else {
		token = strings.Replace(token, ",", ".", 1)
	}
	return strconv.ParseFloat(token, 64)
}

// firstAmount returns the first numeric token on the line as an amount.
func firstAmount(line string) (float64, bool) {
	token := amountTokenPattern.FindString(line)
	if token == "" {
		return 0, false
	}
	amt, err := parseNumber(token)
	if err != nil {
		return 0, false
	}
	return amt, true
}

// sanitizeOCRLine fixes common OCR misreads before classification.
// Tesseract often renders the decimal point in amounts as a semicolon or
// colon, e.g. "MILK 2;99" or "TOTAL 45:67".
func sanitizeOCRLine(line string) string {
	line = ocrSemicolonDecimal.ReplaceAllString(line, "$1.$3")
	line = ocrColonDecimal.ReplaceAllString(line, "$1.$2")
	line = ocrTrailingColon.ReplaceAllString(line, "$1")
	return line
}

var (
	ocrSemicolonDecimal = regexp.MustCompile(`(\d);(\s*)(\d)`)
	ocrColonDecimal     = regexp.MustCompile(`(\d):(\d{2})\b`)
	ocrTrailingColon    = regexp.MustCompile(`(\d):$`)
)

// hasLetter reports whether the line contains at least one letter. A line
// of pure digits, punctuation, and currency symbols is never an item.
func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// cleanName trims whitespace and stray trailing punctuation or currency
// symbols left behind after a numeric token is stripped from a line.
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ".,;:-_*@#$€£")
	name = strings.TrimLeft(name, "*@#")
	return strings.TrimSpace(name)
}
