// Package client holds the thin HTTP client used by the search CLI and
// by anything else that talks to a running BizBill server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/models"
)

const (
	defaultDebounce    = 300 * time.Millisecond
	defaultMinQueryLen = 2
)

type searchResponse struct {
	Products []models.Product `json:"products"`
}

// ProductSearch queries the product search endpoint. Debounced lookups
// wait for the input to settle and carry a generation counter so a slow
// response for an old query can never overwrite the results of a newer
// one.
type ProductSearch struct {
	baseURL     string
	client      *http.Client
	debounce    time.Duration
	minQueryLen int

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
}

func NewProductSearch(baseURL string) *ProductSearch {
	return &ProductSearch{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{Timeout: 10 * time.Second},
		debounce:    defaultDebounce,
		minQueryLen: defaultMinQueryLen,
	}
}

// Search issues the query immediately. The CLI uses this directly.
func (s *ProductSearch) Search(ctx context.Context, query string) ([]models.Product, error) {
	fullURL := fmt.Sprintf("%s/api/search-products/?q=%s", s.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return decoded.Products, nil
}

// SearchDebounced schedules the query once keystrokes pause for the
// debounce window; every call resets the timer. Queries shorter than
// the minimum length cancel pending work and deliver an empty result
// without issuing a request. The handler only ever sees the response
// for the newest query.
func (s *ProductSearch) SearchDebounced(query string, handler func([]models.Product, error)) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len(query) < s.minQueryLen {
		s.mu.Unlock()
		handler(nil, nil)
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		products, err := s.Search(context.Background(), query)
		if err != nil {
			log.Debug().Err(err).Str("query", query).Msg("search: request failed")
		}

		s.mu.Lock()
		stale := gen != s.generation
		s.mu.Unlock()
		if stale {
			return
		}
		handler(products, err)
	})
	s.mu.Unlock()
}
