package sessions

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/models"
)

const (
	sessionCookieName = "bizbill-session"

	cartSessionKey  = "cart"
	themeSessionKey = "theme"
)

// Store holds the per-visitor state: the in-progress cart and the theme
// preference. Everything lives in an encrypted cookie; nothing is kept
// server-side, so closing the browser session drops the cart.
type Store interface {
	GetCart(r *http.Request) *models.Cart
	SaveCart(w http.ResponseWriter, r *http.Request, cart *models.Cart) error
	ClearCart(w http.ResponseWriter, r *http.Request) error

	GetTheme(r *http.Request) string
	SetTheme(w http.ResponseWriter, r *http.Request, theme string) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A bad or stale cookie decodes to a fresh session; log and move on.
		log.Debug().Err(err).Msg("session: falling back to new session")
	}
	return session
}

// GetCart decodes the session cart, or returns a fresh empty cart when
// there is none or the stored blob is unreadable.
func (c *CookieSessionStore) GetCart(r *http.Request) *models.Cart {
	session := c.getSession(r)
	raw, ok := session.Values[cartSessionKey].(string)
	if !ok || raw == "" {
		return models.NewCart()
	}
	cart := models.NewCart()
	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		log.Warn().Err(err).Msg("session: discarding unreadable cart")
		return models.NewCart()
	}
	return cart
}

func (c *CookieSessionStore) SaveCart(w http.ResponseWriter, r *http.Request, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	session := c.getSession(r)
	session.Values[cartSessionKey] = string(raw)
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	delete(session.Values, cartSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetTheme(r *http.Request) string {
	session := c.getSession(r)
	theme, ok := session.Values[themeSessionKey].(string)
	if !ok {
		return ""
	}
	return theme
}

func (c *CookieSessionStore) SetTheme(w http.ResponseWriter, r *http.Request, theme string) error {
	session := c.getSession(r)
	session.Values[themeSessionKey] = theme
	return session.Save(r, w)
}
