package services

import (
	"net/http"

	"github.com/vishubh/bizbilling/app/utils/sessions"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeService keeps the visitor's light/dark preference in the
// session and exposes the toggle. Unset or unknown values read as
// light.
type ThemeService struct {
	store sessions.Store
}

func NewThemeService(store sessions.Store) *ThemeService {
	return &ThemeService{store: store}
}

func (s *ThemeService) Current(r *http.Request) string {
	if s.store.GetTheme(r) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle flips the preference, persists it and returns the new theme.
func (s *ThemeService) Toggle(w http.ResponseWriter, r *http.Request) (string, error) {
	theme := ThemeLight
	if s.Current(r) == ThemeLight {
		theme = ThemeDark
	}
	if err := s.store.SetTheme(w, r, theme); err != nil {
		return "", err
	}
	return theme, nil
}

// ToggleIcon is the icon shown on the toggle button for a theme.
func ToggleIcon(theme string) string {
	if theme == ThemeDark {
		return "☀️"
	}
	return "🌙"
}
