package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/repositories"
)

const searchResultLimit = 10

type SearchAPIHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewSearchAPIHandler(productRepo repositories.ProductRepositoryImpl, r *render.Render) *SearchAPIHandler {
	return &SearchAPIHandler{productRepo: productRepo, render: r}
}

type searchProductsResponse struct {
	Products []models.Product `json:"products"`
}

// SearchProducts answers the autocomplete endpoint. Queries shorter
// than 2 characters return an empty list without touching the catalog.
func (h *SearchAPIHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if len(query) < 2 {
		_ = h.render.JSON(w, http.StatusOK, searchProductsResponse{Products: []models.Product{}})
		return
	}

	products, err := h.productRepo.SearchProducts(r.Context(), query, searchResultLimit)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("search: product lookup failed")
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"products": []models.Product{},
			"error":    "search failed",
		})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	_ = h.render.JSON(w, http.StatusOK, searchProductsResponse{Products: products})
}
