package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/helpers"
	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/repositories"
)

var (
	errProductName  = errors.New("product name is required")
	errProductPrice = errors.New("price per unit must be a non-negative number")
	errProductTax   = errors.New("tax percentage must be a non-negative number")
)

type ProductHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewProductHandler(productRepo repositories.ProductRepositoryImpl, r *render.Render) *ProductHandler {
	return &ProductHandler{productRepo: productRepo, render: r}
}

// List shows the active catalog ordered by name.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("products: list failed")
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":    "Products",
		"products": products,
		"units":    models.UnitChoices,
	})
	_ = h.render.HTML(w, http.StatusOK, "products", data)
}

func (h *ProductHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"title": "New Product",
		"units": models.UnitChoices,
	})
	_ = h.render.HTML(w, http.StatusOK, "product_form", data)
}

// Create adds a catalog entry from the product form.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	product, err := productFromForm(r, &models.Product{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Error().Err(err).Str("name", product.Name).Msg("products: create failed")
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/products/", http.StatusSeeOther)
}

func (h *ProductHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil || product == nil {
		http.NotFound(w, r)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":   "Edit Product",
		"product": product,
		"units":   models.UnitChoices,
	})
	_ = h.render.HTML(w, http.StatusOK, "product_form", data)
}

// Update overwrites the editable fields of an existing product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil || product == nil {
		http.NotFound(w, r)
		return
	}

	if _, err := productFromForm(r, product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Error().Err(err).Str("product_id", product.ID).Msg("products: update failed")
		http.Error(w, "failed to update product", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/products/", http.StatusSeeOther)
}

// Delete deactivates the product. The row stays so existing invoices
// keep their references; search and the catalog stop showing it.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productRepo.SoftDelete(r.Context(), mux.Vars(r)["id"]); err != nil {
		log.Error().Err(err).Msg("products: delete failed")
		h.renderJSONError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *ProductHandler) renderJSONError(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func productFromForm(r *http.Request, product *models.Product) (*models.Product, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, errProductName
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("price_per_unit")))
	if err != nil || price.IsNegative() {
		return nil, errProductPrice
	}

	tax := decimal.NewFromFloat(5.00)
	if raw := strings.TrimSpace(r.FormValue("tax_percentage")); raw != "" {
		if tax, err = decimal.NewFromString(raw); err != nil || tax.IsNegative() {
			return nil, errProductTax
		}
	}

	unit := r.FormValue("unit")
	if !validUnit(unit) {
		unit = models.UnitPiece
	}

	product.Name = name
	product.Category = strings.TrimSpace(r.FormValue("category"))
	product.Unit = unit
	product.PricePerUnit = price
	product.TaxPercentage = tax
	product.IsActive = true
	return product, nil
}

func validUnit(unit string) bool {
	for _, choice := range models.UnitChoices {
		if unit == choice {
			return true
		}
	}
	return false
}
