// Package categorizer assigns a spending category to each transaction by
// keyword matching against the item name. It works entirely offline; the
// keyword table ships with sensible defaults and can be overridden from a
// YAML file.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fjacquet/purchases-csv/internal/models"
)

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "Apps"

// CategoryConfig maps a category name to the keywords that select it.
// Matching is case-insensitive; configs are evaluated in order with the
// first match winning, so more specific categories belong first.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Categorizer holds an ordered keyword table.
type Categorizer struct {
	categories []CategoryConfig
}

// New creates a Categorizer with the built-in keyword table.
func New() *Categorizer {
	return &Categorizer{categories: defaultCategories()}
}

// NewFromFile creates a Categorizer from a YAML keyword file. A missing
// file falls back to the defaults; a malformed one is an error.
func NewFromFile(filePath string) (*Categorizer, error) {
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading category file: %w", err)
	}

	var cfg struct {
		Categories []CategoryConfig `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing category file: %w", err)
	}
	if len(cfg.Categories) == 0 {
		return New(), nil
	}
	return &Categorizer{categories: cfg.Categories}, nil
}

// Categorize returns the category for a transaction's item name.
func (c *Categorizer) Categorize(t models.Transaction) string {
	name := strings.ToUpper(t.ItemName)
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(name, strings.ToUpper(keyword)) {
				return category.Name
			}
		}
	}
	return DefaultCategory
}

// Summarize groups transactions by category, preserving the keyword table
// order with the default category last.
func (c *Categorizer) Summarize(transactions []models.Transaction) []CategorySummary {
	counts := make(map[string]*CategorySummary)
	for _, t := range transactions {
		name := c.Categorize(t)
		s, ok := counts[name]
		if !ok {
			s = &CategorySummary{Name: name}
			counts[name] = s
		}
		s.Count++
		s.Total = s.Total.Add(t.AmountDecimal())
	}

	var summaries []CategorySummary
	for _, category := range c.categories {
		if s, ok := counts[category.Name]; ok {
			summaries = append(summaries, *s)
			delete(counts, category.Name)
		}
	}
	if s, ok := counts[DefaultCategory]; ok {
		summaries = append(summaries, *s)
	}
	return summaries
}

func defaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{Name: "Storage", Keywords: []string{"iCloud"}},
		{Name: "Music & TV", Keywords: []string{"Music", "TV+", "Spotify"}},
		{Name: "Games", Keywords: []string{"Pokémon", "PokéCoins", "Gems", "Coins", "Battle Pass"}},
		{Name: "Subscriptions", Keywords: []string{"subscription", "Premium", "Pro Upgrade"}},
	}
}
