package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pantrylens/receipt-parser/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the receipt parsing HTTP API",
	Long: `Serve starts an HTTP server exposing the receipt pipeline:

  POST /api/parse   multipart upload under 'file', or raw OCR text under 'text'
  GET  /api/health  liveness check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParser()
		if err != nil {
			return err
		}
		app := api.NewApp(p)
		fmt.Fprintf(os.Stderr, "Listening on %s\n", serveAddr)
		return app.Listen(serveAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}
