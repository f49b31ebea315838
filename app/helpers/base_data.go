package helpers

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/vishubh/bizbilling/app/middlewares"
	"github.com/vishubh/bizbilling/app/services"
)

// GetBaseData merges the page-specific template data with what every
// page needs: theme, toggle icon, cart count and the CSRF token.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	theme := services.ThemeLight
	if themeVal := r.Context().Value(middlewares.ThemeKey); themeVal != nil {
		if t, ok := themeVal.(string); ok && t != "" {
			theme = t
		}
	}
	pageSpecificData["Theme"] = theme
	pageSpecificData["ThemeIcon"] = services.ToggleIcon(theme)

	if cartCountVal := r.Context().Value(middlewares.CartCountKey); cartCountVal != nil {
		if count, ok := cartCountVal.(int); ok {
			pageSpecificData["CartCount"] = count
		} else {
			pageSpecificData["CartCount"] = 0
		}
	} else {
		pageSpecificData["CartCount"] = 0
	}

	pageSpecificData["CSRFToken"] = csrf.Token(r)

	return pageSpecificData
}
