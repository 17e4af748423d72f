// Package api exposes the receipt parser over HTTP.
package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pantrylens/receipt-parser/internal/extractor"
	"github.com/pantrylens/receipt-parser/internal/models"
	"github.com/pantrylens/receipt-parser/internal/parser"
)

const version = "1.0.0"

// ParseResponse is the JSON response from the /api/parse endpoint.
type ParseResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
	Receipt *models.ParsedReceipt `json:"receipt,omitempty"`
	Count   int                   `json:"count"`
	Version string                `json:"version,omitempty"`
}

// Server holds the parser the HTTP handlers run requests through, so the
// same word-list and taxonomy overrides apply to every entry point.
type Server struct {
	parser *parser.Parser
}

// NewApp builds the fiber application with all routes registered. A nil
// parser gets the built-in defaults.
func NewApp(p *parser.Parser) *fiber.App {
	if p == nil {
		p = parser.New()
	}
	s := &Server{parser: p}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // receipt photos can be large
	})
	app.Get("/api/health", s.HandleHealth)
	app.Post("/api/parse", s.HandleParse)
	return app
}

// HandleHealth reports service liveness.
func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleParse accepts either a raw `text` form field (pre-extracted OCR
// output) or an uploaded receipt file under `file`, and returns the parsed
// receipt. The parse itself cannot fail; only extraction can.
func (s *Server) HandleParse(c *fiber.Ctx) error {
	text := c.FormValue("text")

	if text == "" {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest,
				"no input provided; use form field 'text' or upload a file under 'file'")
		}

		text, err = extractUpload(c, fileHeader)
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("text extraction failed: %v", err))
		}
	}

	receipt := s.parser.Parse(text)

	return c.JSON(ParseResponse{
		Success: true,
		Receipt: receipt,
		Count:   len(receipt.Items),
		Version: version,
	})
}

// extractUpload saves the uploaded receipt to a temp file and runs the
// extension-appropriate extractor over it.
func extractUpload(c *fiber.Ctx, fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		return "", fmt.Errorf("uploaded file has no extension")
	}

	tmp, err := os.CreateTemp("", "receipt-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	src, err := fileHeader.Open()
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("save upload: %w", err)
	}
	tmp.Close()

	return extractor.ExtractText(tmp.Name())
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ParseResponse{
		Success: false,
		Error:   msg,
	})
}
