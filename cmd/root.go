package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// wordsFile is an optional YAML override for the taxonomy and word lists.
var wordsFile string

var rootCmd = &cobra.Command{
	Use:   "receipt-parser",
	Short: "Convert receipt OCR text into structured purchase records",
	Long: `receipt-parser converts noisy, line-oriented text from photographed or
uploaded store receipts into typed purchase records (name, quantity, unit,
price, category) plus receipt-level metadata (store name, date, total).

Input may be a plain .txt dump of OCR output, a PDF receipt, or a receipt
photo (OCR'd with tesseract when installed).`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wordsFile, "config", "",
		"Path to a YAML file overriding categories, noise words, and grocery keywords")
}
