package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/pantrylens/receipt-parser/internal/models"
	"github.com/pantrylens/receipt-parser/internal/parser"
	"github.com/pantrylens/receipt-parser/internal/taxonomy"
)

func TestHealthEndpoint(t *testing.T) {
	app := NewApp(nil)

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestParseEndpointWithText(t *testing.T) {
	app := NewApp(nil)

	form := url.Values{}
	form.Set("text", "FRESH MART\n05/12/2024\n2x Milk 5.98\nTOTAL 5.98")

	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ParseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Receipt == nil {
		t.Fatal("expected receipt in response")
	}
	if result.Count != 1 || len(result.Receipt.Items) != 1 {
		t.Fatalf("expected 1 item, got count=%d items=%d", result.Count, len(result.Receipt.Items))
	}
	item := result.Receipt.Items[0]
	if item.Name != "Milk" || item.Quantity != 2 {
		t.Errorf("got item %+v, want Milk x2", item)
	}
	if item.Category != models.CategoryDairy {
		t.Errorf("Category = %q, want %q", item.Category, models.CategoryDairy)
	}
	if result.Receipt.StoreName != "FRESH MART" {
		t.Errorf("StoreName = %q, want %q", result.Receipt.StoreName, "FRESH MART")
	}
}

func TestParseEndpointRequiresInput(t *testing.T) {
	app := NewApp(nil)

	req := httptest.NewRequest("POST", "/api/parse", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ParseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Success {
		t.Error("expected success=false")
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
}

func TestParseEndpointWithTxtUpload(t *testing.T) {
	app := NewApp(nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "receipt.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("CORNER SHOP\nBread 2.49\nTOTAL 2.49"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ParseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.Success || result.Count != 1 {
		t.Fatalf("expected 1 item, got %+v", result)
	}
	if result.Receipt.Items[0].Name != "Bread" {
		t.Errorf("Name = %q, want %q", result.Receipt.Items[0].Name, "Bread")
	}
}

// A server built around a customized parser must route requests through it,
// not through the defaults.
func TestParseEndpointHonorsCustomParser(t *testing.T) {
	custom := parser.NewWithOptions(parser.Options{
		Taxonomy: taxonomy.New([]taxonomy.Entry{
			{Category: models.CategoryVegetables, Keywords: []string{"kale"}},
		}),
	})
	app := NewApp(custom)

	form := url.Values{}
	form.Set("text", "GREEN GROCER\nKale Bunch 3.49")

	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ParseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 item, got %d", result.Count)
	}
	if got := result.Receipt.Items[0].Category; got != models.CategoryVegetables {
		t.Errorf("Category = %q, want %q (custom taxonomy not applied)", got, models.CategoryVegetables)
	}
}

// Parsing noise-only text is not an error: the endpoint returns an empty
// item list, mirroring the parser's total-function contract.
func TestParseEndpointEmptyResult(t *testing.T) {
	app := NewApp(nil)

	form := url.Values{}
	form.Set("text", "THANK YOU FOR SHOPPING")

	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result ParseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success for noise-only text, got error %q", result.Error)
	}
	if result.Count != 0 {
		t.Errorf("expected 0 items, got %d", result.Count)
	}
	if result.Receipt == nil || result.Receipt.Items == nil {
		t.Error("items must be an empty array, not null")
	}
}
