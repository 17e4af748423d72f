// Package config loads optional YAML overrides for the parser's category
// taxonomy and word lists. The built-in defaults apply for anything the
// file leaves out.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pantrylens/receipt-parser/internal/models"
	"github.com/pantrylens/receipt-parser/internal/parser"
	"github.com/pantrylens/receipt-parser/internal/taxonomy"
)

// CategoryConfig is one category entry in the YAML file. List order in the
// file is the category tie-break order.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Config is the full override file.
type Config struct {
	Categories      []CategoryConfig `yaml:"categories"`
	NoiseWords      []string         `yaml:"noiseWords"`
	GroceryKeywords []string         `yaml:"groceryKeywords"`
}

// Load reads and parses the YAML override file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// ParserOptions converts the loaded overrides into parser options.
// Sections absent from the file stay zero and keep the parser defaults.
func (c *Config) ParserOptions() parser.Options {
	opts := parser.Options{
		NoiseWords:      c.NoiseWords,
		GroceryKeywords: c.GroceryKeywords,
	}
	if len(c.Categories) > 0 {
		entries := make([]taxonomy.Entry, len(c.Categories))
		for i, cat := range c.Categories {
			entries[i] = taxonomy.Entry{
				Category: models.Category(cat.Name),
				Keywords: cat.Keywords,
			}
		}
		opts.Taxonomy = taxonomy.New(entries)
	}
	return opts
}
