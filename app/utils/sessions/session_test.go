package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"

	"github.com/vishubh/bizbilling/app/models"
)

func newTestStore() *CookieSessionStore {
	return NewCookieSessionStore(
		securecookie.GenerateRandomKey(64),
		securecookie.GenerateRandomKey(32),
	)
}

// roundTrip applies the recorded Set-Cookie headers to a fresh request,
// standing in for the browser's next page load.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestCartSurvivesRequests(t *testing.T) {
	store := newTestStore()

	cart := models.NewCart()
	cart.AddProduct(&models.Product{
		ID:            "prod-1",
		Name:          "Apple",
		Unit:          models.UnitKG,
		PricePerUnit:  decimal.NewFromInt(100),
		TaxPercentage: decimal.NewFromInt(18),
	})
	cart.SetDiscount("25")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.SaveCart(rec, req, cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	restored := store.GetCart(roundTrip(rec))
	if len(restored.Items) != 1 || restored.Items[0].ProductID != "prod-1" {
		t.Fatalf("expected restored cart item, got %+v", restored.Items)
	}
	if !restored.Items[0].PricePerUnit.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected price restored, got %s", restored.Items[0].PricePerUnit)
	}
	if !restored.Discount.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected discount restored, got %s", restored.Discount)
	}
}

func TestMissingCookieYieldsEmptyCart(t *testing.T) {
	store := newTestStore()

	cart := store.GetCart(httptest.NewRequest(http.MethodGet, "/", nil))
	if len(cart.Items) != 0 || !cart.Discount.IsZero() {
		t.Fatalf("expected fresh cart, got %+v", cart)
	}
}

func TestTamperedCookieYieldsEmptyCart(t *testing.T) {
	store := newTestStore()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "bizbill-session", Value: "garbage"})

	cart := store.GetCart(req)
	if len(cart.Items) != 0 {
		t.Fatalf("expected fresh cart for bad cookie, got %+v", cart)
	}
}

func TestThemeSurvivesRequests(t *testing.T) {
	store := newTestStore()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.SetTheme(rec, req, "dark"); err != nil {
		t.Fatalf("set theme failed: %v", err)
	}

	if got := store.GetTheme(roundTrip(rec)); got != "dark" {
		t.Fatalf("expected dark restored, got %q", got)
	}
}

func TestClearCartDropsOnlyCart(t *testing.T) {
	store := newTestStore()

	rec1 := httptest.NewRecorder()
	cart := models.NewCart()
	cart.AddProduct(&models.Product{ID: "prod-1", Name: "Apple"})
	if err := store.SaveCart(rec1, httptest.NewRequest(http.MethodPost, "/", nil), cart); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rec2 := httptest.NewRecorder()
	if err := store.SetTheme(rec2, roundTrip(rec1), "dark"); err != nil {
		t.Fatalf("set theme failed: %v", err)
	}

	rec3 := httptest.NewRecorder()
	if err := store.ClearCart(rec3, roundTrip(rec2)); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	after := roundTrip(rec3)
	if got := store.GetCart(after); len(got.Items) != 0 {
		t.Fatalf("expected cart cleared, got %+v", got.Items)
	}
	if got := store.GetTheme(after); got != "dark" {
		t.Fatalf("theme must survive cart clear, got %q", got)
	}
}
