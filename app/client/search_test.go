package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vishubh/bizbilling/app/models"
)

func newTestSearch(t *testing.T, handler http.HandlerFunc) (*ProductSearch, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	search := NewProductSearch(server.URL)
	search.debounce = 20 * time.Millisecond
	return search, server
}

func productsHandler(requests *atomic.Int64, delayFor string, delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		q := r.URL.Query().Get("q")
		if q == delayFor {
			time.Sleep(delay)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"products": []models.Product{{ID: "p-" + q, Name: q}},
		})
	}
}

type deliveries struct {
	mu   sync.Mutex
	got  [][]models.Product
	errs []error
}

func (d *deliveries) handler(products []models.Product, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.got = append(d.got, products)
	d.errs = append(d.errs, err)
}

func (d *deliveries) snapshot() [][]models.Product {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([][]models.Product(nil), d.got...)
}

func TestShortQueryIssuesNoRequest(t *testing.T) {
	var requests atomic.Int64
	search, _ := newTestSearch(t, productsHandler(&requests, "", 0))
	var d deliveries

	search.SearchDebounced("a", d.handler)
	time.Sleep(80 * time.Millisecond)

	if n := requests.Load(); n != 0 {
		t.Fatalf("expected no requests for 1-char query, got %d", n)
	}
	got := d.snapshot()
	if len(got) != 1 || got[0] != nil {
		t.Fatalf("expected a single empty delivery, got %v", got)
	}
}

func TestDebounceCollapsesRapidKeystrokes(t *testing.T) {
	var requests atomic.Int64
	search, _ := newTestSearch(t, productsHandler(&requests, "", 0))
	var d deliveries

	search.SearchDebounced("ap", d.handler)
	time.Sleep(5 * time.Millisecond)
	search.SearchDebounced("app", d.handler)
	time.Sleep(5 * time.Millisecond)
	search.SearchDebounced("appl", d.handler)

	time.Sleep(150 * time.Millisecond)

	if n := requests.Load(); n != 1 {
		t.Fatalf("expected exactly 1 request after debounce, got %d", n)
	}
	got := d.snapshot()
	if len(got) != 1 || len(got[0]) != 1 || got[0][0].ID != "p-appl" {
		t.Fatalf("expected results for final query, got %v", got)
	}
}

func TestQueryOfLengthTwoIssuesRequest(t *testing.T) {
	var requests atomic.Int64
	search, _ := newTestSearch(t, productsHandler(&requests, "", 0))
	var d deliveries

	search.SearchDebounced("ap", d.handler)
	time.Sleep(100 * time.Millisecond)

	if n := requests.Load(); n != 1 {
		t.Fatalf("expected 1 request for 2-char query, got %d", n)
	}
}

func TestStaleResponseNeverOverwritesNewer(t *testing.T) {
	var requests atomic.Int64
	// Responses for "slow" sit on the wire long enough for "fast" to
	// land first.
	search, _ := newTestSearch(t, productsHandler(&requests, "slow", 200*time.Millisecond))
	var d deliveries

	search.SearchDebounced("slow", d.handler)
	// Let the timer fire so the slow request is in flight.
	time.Sleep(50 * time.Millisecond)
	search.SearchDebounced("fast", d.handler)

	time.Sleep(400 * time.Millisecond)

	got := d.snapshot()
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 delivery (stale dropped), got %d: %v", len(got), got)
	}
	if len(got[0]) != 1 || got[0][0].ID != "p-fast" {
		t.Fatalf("expected the newer query's results, got %v", got[0])
	}
	if n := requests.Load(); n != 2 {
		t.Fatalf("expected both requests to be issued, got %d", n)
	}
}

func TestSearchErrorSurfaces(t *testing.T) {
	search, _ := newTestSearch(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := search.Search(context.Background(), "apple")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if want := fmt.Sprintf("status %d", http.StatusInternalServerError); !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not mention %q", err, want)
	}
}
