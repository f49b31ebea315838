package handlers

import (
	"net/http"

	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/helpers"
	"github.com/vishubh/bizbilling/app/services"
)

type HomeHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewHomeHandler(cartSvc *services.CartService, r *render.Render) *HomeHandler {
	return &HomeHandler{cartSvc: cartSvc, render: r}
}

// Index is the billing landing page: product search box, the cart and
// the customer form.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	cart := h.cartSvc.Get(r)

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title": "New Bill",
		"cart":  cart,
	})

	_ = h.render.HTML(w, http.StatusOK, "index", data)
}
