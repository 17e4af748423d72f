package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pantrylens/receipt-parser/internal/config"
	"github.com/pantrylens/receipt-parser/internal/extractor"
	"github.com/pantrylens/receipt-parser/internal/parser"
	"github.com/pantrylens/receipt-parser/internal/writer"
)

var (
	outputFormat string
	outputPath   string
	includeMeta  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <input> [input2 ...]",
	Short: "Parse receipt files into structured purchase records",
	Long: `Parse extracts raw text from each input (plain text, PDF, or image),
runs the receipt pipeline over it, and writes the result as JSON or CSV.

With --output and one input, the result goes to that path; otherwise each
input produces a sibling file with the matching extension. Progress is
printed to stderr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json or csv")
	parseCmd.Flags().StringVar(&outputPath, "output", "", "Output file path (defaults to input name with new extension)")
	parseCmd.Flags().BoolVar(&includeMeta, "header", true, "Include receipt metadata header rows in CSV output")
}

func runParse(inputs []string) error {
	if outputFormat != "json" && outputFormat != "csv" {
		return fmt.Errorf("unknown format %q; use json or csv", outputFormat)
	}
	if outputPath != "" && len(inputs) > 1 {
		return fmt.Errorf("--output requires a single input, got %d", len(inputs))
	}

	p, err := buildParser()
	if err != nil {
		return err
	}

	for _, inputPath := range inputs {
		if err := processFile(p, inputPath, perFileOutput(inputPath)); err != nil {
			return fmt.Errorf("processing %s: %w", inputPath, err)
		}
	}
	return nil
}

// buildParser applies the --config overrides when given.
func buildParser() (*parser.Parser, error) {
	if wordsFile == "" {
		return parser.New(), nil
	}
	cfg, err := config.Load(wordsFile)
	if err != nil {
		return nil, err
	}
	return parser.NewWithOptions(cfg.ParserOptions()), nil
}

// perFileOutput honors --output when given and falls back to input-derived
// naming otherwise. runParse guarantees --output never pairs with multiple
// inputs.
func perFileOutput(inputPath string) string {
	if outputPath != "" {
		return outputPath
	}
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "." + outputFormat
}

func processFile(p *parser.Parser, inputPath, outPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Fprintf(os.Stderr, "Processing: %s\n", inputPath)

	text, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("text extraction failed: %w", err)
	}

	receipt := p.Parse(text)

	fmt.Fprintf(os.Stderr, "  Found %d item(s)\n", len(receipt.Items))
	if len(receipt.Items) == 0 {
		fmt.Fprintln(os.Stderr, "  Warning: no items found. The receipt layout may not match expected patterns.")
	}

	switch outputFormat {
	case "csv":
		w := &writer.CSVWriter{IncludeHeader: includeMeta}
		if err := w.WriteToFile(outPath, receipt); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	default:
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", outPath, err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(receipt); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "  Output: %s\n", outPath)

	if receipt.StoreName != "" {
		fmt.Fprintf(os.Stderr, "  Store: %s\n", receipt.StoreName)
	}
	if receipt.Date != "" {
		fmt.Fprintf(os.Stderr, "  Date: %s\n", receipt.Date)
	}
	if receipt.TotalAmount != nil {
		fmt.Fprintf(os.Stderr, "  Total: %.2f\n", *receipt.TotalAmount)
	}

	return nil
}
