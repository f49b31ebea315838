package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"

	"github.com/vishubh/bizbilling/app/services"
)

type ThemeHandler struct {
	themeSvc *services.ThemeService
	render   *render.Render
}

func NewThemeHandler(themeSvc *services.ThemeService, r *render.Render) *ThemeHandler {
	return &ThemeHandler{themeSvc: themeSvc, render: r}
}

// Toggle flips the light/dark preference and returns the new theme with
// its toggle icon.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themeSvc.Toggle(w, r)
	if err != nil {
		log.Error().Err(err).Msg("theme: toggle failed")
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "failed to save theme",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"theme":   theme,
		"icon":    services.ToggleIcon(theme),
	})
}
