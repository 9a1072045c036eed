package catalog

import (
	"context"
	"net/http"

	"github.com/noah-isme/backend-kasir/internal/common"
)

// Lister enumerates catalog entries.
type Lister interface {
	List(ctx context.Context) ([]Entry, error)
}

// Handler exposes read-only catalog endpoints.
type Handler struct {
	Source Lister
}

type productDTO struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// Products handles GET /api/v1/products.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	if h.Source == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog store not configured", nil)
		return
	}
	entries, err := h.Source.List(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "list products failed", nil)
		return
	}
	out := make([]productDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, productDTO{
			Name:  entry.Product.Name,
			Unit:  string(entry.Product.Unit),
			Price: entry.Price,
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": out})
}
