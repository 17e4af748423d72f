package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pantrylens/receipt-parser/internal/models"
)

// CSVWriter writes parsed receipt items to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the receipt to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, receipt *models.ParsedReceipt) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, receipt)
}

// Write writes the receipt in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, receipt *models.ParsedReceipt) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	// Receipt metadata as comment-style header rows
	if w.IncludeHeader {
		if receipt.StoreName != "" {
			writer.Write([]string{"# Store", receipt.StoreName})
		}
		if receipt.Date != "" {
			writer.Write([]string{"# Date", receipt.Date})
		}
		if receipt.TotalAmount != nil {
			writer.Write([]string{"# Total", formatPrice(receipt.TotalAmount)})
		}
	}

	header := []string{"Name", "Quantity", "Unit", "Price", "Category"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range receipt.Items {
		row := []string{
			item.Name,
			formatQuantity(item.Quantity),
			string(item.Unit),
			formatPrice(item.Price),
			string(item.Category),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
