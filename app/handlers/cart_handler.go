package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/services"
	"github.com/vishubh/bizbilling/app/utils/format"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: r}
}

type cartItemView struct {
	ProductID     string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Unit          string `json:"unit"`
	PricePerUnit  string `json:"price_per_unit"`
	TaxPercentage string `json:"tax_percentage"`
	Quantity      string `json:"quantity"`
	Total         string `json:"total"`
	TotalDisplay  string `json:"total_display"`
}

type cartView struct {
	Items          []cartItemView `json:"items"`
	Count          int            `json:"count"`
	Subtotal       string         `json:"subtotal"`
	TotalTax       string         `json:"total_tax"`
	Discount       string         `json:"discount"`
	GrandTotal     string         `json:"grand_total"`
	ReceivedAmount string         `json:"received_amount"`
	DueBalance     string         `json:"due_balance"`
	Display        cartDisplay    `json:"display"`
}

type cartDisplay struct {
	Subtotal   string `json:"subtotal"`
	TotalTax   string `json:"total_tax"`
	GrandTotal string `json:"grand_total"`
	DueBalance string `json:"due_balance"`
}

func newCartView(cart *models.Cart) cartView {
	items := make([]cartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		total := cart.ItemTotal(item)
		items = append(items, cartItemView{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Category:      item.Category,
			Unit:          item.Unit,
			PricePerUnit:  item.PricePerUnit.String(),
			TaxPercentage: item.TaxPercentage.String(),
			Quantity:      item.Quantity.String(),
			Total:         total.String(),
			TotalDisplay:  format.FormatRupees(total),
		})
	}
	return cartView{
		Items:          items,
		Count:          len(items),
		Subtotal:       cart.Subtotal().String(),
		TotalTax:       cart.TotalTax().String(),
		Discount:       cart.Discount.String(),
		GrandTotal:     cart.GrandTotal().String(),
		ReceivedAmount: cart.ReceivedAmount.String(),
		DueBalance:     cart.DueBalance().String(),
		Display: cartDisplay{
			Subtotal:   format.FormatRupees(cart.Subtotal()),
			TotalTax:   format.FormatRupees(cart.TotalTax()),
			GrandTotal: format.FormatRupees(cart.GrandTotal()),
			DueBalance: format.FormatRupees(cart.DueBalance()),
		},
	}
}

func (h *CartHandler) respondCart(w http.ResponseWriter, cart *models.Cart) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cart":    newCartView(cart),
	})
}

func (h *CartHandler) respondError(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// Get returns the current cart state.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, h.cartSvc.Get(r))
}

// Add puts the product in the cart, bumping the quantity by 1 if it is
// already there.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	cart, err := h.cartSvc.AddProduct(r.Context(), w, r, productID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("cart: add failed")
		h.respondError(w, http.StatusNotFound, "product not found")
		return
	}
	h.respondCart(w, cart)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.RemoveProduct(w, r, mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	h.respondCart(w, cart)
}

// UpdateQuantity takes the raw quantity input; values that do not parse
// to a positive number remove the item.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.UpdateQuantity(w, r, mux.Vars(r)["id"], r.FormValue("quantity"))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	h.respondCart(w, cart)
}

func (h *CartHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.SetDiscount(w, r, r.FormValue("discount"))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	h.respondCart(w, cart)
}

func (h *CartHandler) SetReceivedAmount(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.SetReceivedAmount(w, r, r.FormValue("received_amount"))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	h.respondCart(w, cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.Clear(w, r)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	h.respondCart(w, cart)
}
