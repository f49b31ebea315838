package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/helpers"
	"github.com/vishubh/bizbilling/app/services"
)

type InvoiceHandler struct {
	invoiceSvc *services.InvoiceService
	cartSvc    *services.CartService
	render     *render.Render
}

func NewInvoiceHandler(invoiceSvc *services.InvoiceService, cartSvc *services.CartService, r *render.Render) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc, cartSvc: cartSvc, render: r}
}

// Generate accepts the customer form plus the cart snapshot, stores the
// invoice and clears the session cart on success.
func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.GenerateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.invoiceSvc.Generate(r.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("invoice: generation failed")
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.cartSvc.Clear(w, r); err != nil {
		log.Warn().Err(err).Str("invoice", result.InvoiceNumber).Msg("invoice: failed to clear cart")
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"invoice_id":     result.InvoiceID,
		"invoice_number": result.InvoiceNumber,
		"email_sent":     result.EmailSent,
		"customer_email": result.CustomerEmail,
	})
}

// Detail renders the invoice page with the share actions.
func (h *InvoiceHandler) Detail(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.invoiceSvc.Detail(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":   "Invoice " + invoice.InvoiceNumber,
		"invoice": invoice,
	})
	_ = h.render.HTML(w, http.StatusOK, "invoice_detail", data)
}

// DownloadPDF streams the rendered invoice PDF as an attachment.
func (h *InvoiceHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	invoice, pdf, err := h.invoiceSvc.PDF(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=invoice_%s.pdf", invoice.InvoiceNumber))
	_, _ = w.Write(pdf)
}

// SendEmail mails the invoice PDF to the address in the request body.
func (h *InvoiceHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.invoiceSvc.SendEmail(r.Context(), mux.Vars(r)["id"], payload.Email); err != nil {
		log.Error().Err(err).Msg("invoice: email send failed")
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "invoice emailed to " + payload.Email,
	})
}

// SendWhatsApp pushes the invoice summary to the customer's phone.
func (h *InvoiceHandler) SendWhatsApp(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceSvc.SendWhatsApp(r.Context(), mux.Vars(r)["id"]); err != nil {
		log.Error().Err(err).Msg("invoice: whatsapp send failed")
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "invoice sent on WhatsApp",
	})
}

// Search lists invoices matching the keyword against number, customer
// name or phone.
func (h *InvoiceHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	invoices, err := h.invoiceSvc.Search(r.Context(), keyword)
	if err != nil {
		log.Error().Err(err).Str("keyword", keyword).Msg("invoice: search failed")
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title":    "Invoices",
		"keyword":  keyword,
		"invoices": invoices,
	})
	_ = h.render.HTML(w, http.StatusOK, "invoices", data)
}

func (h *InvoiceHandler) respondError(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
