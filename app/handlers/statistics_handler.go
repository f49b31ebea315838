package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/helpers"
	"github.com/vishubh/bizbilling/app/services"
)

type StatisticsHandler struct {
	invoiceSvc *services.InvoiceService
	render     *render.Render
}

func NewStatisticsHandler(invoiceSvc *services.InvoiceService, r *render.Render) *StatisticsHandler {
	return &StatisticsHandler{invoiceSvc: invoiceSvc, render: r}
}

// Dashboard shows revenue, pending payments and the recent invoices.
func (h *StatisticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.invoiceSvc.Statistics(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("statistics: load failed")
		http.Error(w, "failed to load statistics", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"title": "Statistics",
		"stats": stats,
	})
	_ = h.render.HTML(w, http.StatusOK, "statistics", data)
}
