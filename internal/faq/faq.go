// Package faq serves the help catalog: a fixed set of question-and-answer
// entries filterable by category and free-text search.
package faq

import (
	"context"
	"strings"
)

// Item is one help entry.
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Catalog answers FAQ queries over a fixed entry set.
type Catalog struct {
	items []Item
}

// NewCatalog returns the portal help catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: entries}
}

// Categories lists the distinct categories in catalog order.
func (c *Catalog) Categories(_ context.Context) []string {
	var (
		seen = make(map[string]bool)
		out  []string
	)
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Search returns entries matching the category and query. An empty category
// matches all; the query is matched case-insensitively against both question
// and answer text.
func (c *Catalog) Search(_ context.Context, category, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if category != "" && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Question), query) &&
			!strings.Contains(strings.ToLower(item.Answer), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}
