// Package handler exposes the help catalog over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"udyam-portal/internal/faq"
	respond "udyam-portal/internal/transport/http/shared/json"
)

// Catalog defines the interface for FAQ queries.
type Catalog interface {
	Categories(ctx context.Context) []string
	Search(ctx context.Context, category, query string) []faq.Item
}

// Handler handles FAQ endpoints.
type Handler struct {
	catalog Catalog
}

// New creates a new FAQ Handler.
func New(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Register registers the FAQ route with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/faq", h.handleFAQ)
}

type faqResponse struct {
	Categories []string   `json:"categories"`
	Items      []faq.Item `json:"items"`
}

func (h *Handler) handleFAQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	respond.WriteJSON(w, http.StatusOK, faqResponse{
		Categories: h.catalog.Categories(ctx),
		Items:      h.catalog.Search(ctx, category, query),
	})
}
