package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/repositories"
)

func muxSetVar(r *http.Request, key, value string) *http.Request {
	return mux.SetURLVars(r, map[string]string{key: value})
}

// stubProductRepo serves a fixed catalog and records search calls.
type stubProductRepo struct {
	products      []models.Product
	searchCalls   int
	failSearch    bool
	deactivatedID string
}

func (s *stubProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubProductRepo) SearchProducts(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	s.searchCalls++
	if s.failSearch {
		return nil, errors.New("db down")
	}
	var matched []models.Product
	for _, p := range s.products {
		if len(matched) >= limit {
			break
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error {
	s.products = append(s.products, *product)
	return nil
}

func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error {
	return nil
}

func (s *stubProductRepo) SoftDelete(ctx context.Context, id string) error {
	s.deactivatedID = id
	return nil
}

func (s *stubProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

// memoryStore keeps the cart and theme in plain fields, standing in for
// the cookie session during handler tests.
type memoryStore struct {
	cart  *models.Cart
	theme string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{cart: models.NewCart()}
}

func (m *memoryStore) GetCart(r *http.Request) *models.Cart {
	raw := *m.cart
	raw.Items = append([]models.CartItem(nil), m.cart.Items...)
	return &raw
}

func (m *memoryStore) SaveCart(w http.ResponseWriter, r *http.Request, cart *models.Cart) error {
	m.cart = cart
	return nil
}

func (m *memoryStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	m.cart = models.NewCart()
	return nil
}

func (m *memoryStore) GetTheme(r *http.Request) string {
	return m.theme
}

func (m *memoryStore) SetTheme(w http.ResponseWriter, r *http.Request, theme string) error {
	m.theme = theme
	return nil
}

// stubInvoiceRepo stores invoices in a slice and hands out stats.
type stubInvoiceRepo struct {
	invoices []models.Invoice
	last     string
}

func (s *stubInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = "inv-" + invoice.InvoiceNumber
	}
	s.invoices = append(s.invoices, *invoice)
	s.last = invoice.InvoiceNumber
	return nil
}

func (s *stubInvoiceRepo) Save(ctx context.Context, invoice *models.Invoice) error {
	for i := range s.invoices {
		if s.invoices[i].ID == invoice.ID {
			s.invoices[i] = *invoice
			return nil
		}
	}
	return errors.New("record not found")
}

func (s *stubInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			return &s.invoices[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubInvoiceRepo) LastInvoiceNumber(ctx context.Context) (string, error) {
	return s.last, nil
}

func (s *stubInvoiceRepo) Search(ctx context.Context, keyword string) ([]models.Invoice, error) {
	return s.invoices, nil
}

func (s *stubInvoiceRepo) Recent(ctx context.Context, limit int) ([]models.Invoice, error) {
	if len(s.invoices) > limit {
		return s.invoices[:limit], nil
	}
	return s.invoices, nil
}

func (s *stubInvoiceRepo) Stats(ctx context.Context, now time.Time) (*repositories.InvoiceStats, error) {
	return &repositories.InvoiceStats{TotalInvoices: int64(len(s.invoices))}, nil
}

type stubCustomerRepo struct {
	customers []models.Customer
}

func (s *stubCustomerRepo) GetOrCreateByEmail(ctx context.Context, email string, defaults *models.Customer) (*models.Customer, bool, error) {
	for i := range s.customers {
		if s.customers[i].Email == email {
			return &s.customers[i], false, nil
		}
	}
	defaults.Email = email
	if defaults.ID == "" {
		defaults.ID = "cust-" + email
	}
	s.customers = append(s.customers, *defaults)
	return defaults, true, nil
}

func (s *stubCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.customers)), nil
}

type stubMailer struct {
	sentTo []string
	fail   bool
}

func (s *stubMailer) SendInvoiceEmail(invoice *models.Invoice, to string, pdf []byte) error {
	if s.fail {
		return errors.New("smtp unreachable")
	}
	s.sentTo = append(s.sentTo, to)
	return nil
}

type stubPDF struct{}

func (stubPDF) GenerateInvoicePDF(invoice *models.Invoice) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type stubWhatsApp struct {
	sent int
}

func (s *stubWhatsApp) SendInvoiceMessage(ctx context.Context, invoice *models.Invoice) error {
	s.sent++
	return nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            "prod-apple",
			Name:          "Apple",
			Category:      "Fruits",
			Unit:          models.UnitKG,
			PricePerUnit:  decimal.NewFromInt(100),
			TaxPercentage: decimal.NewFromInt(18),
			IsActive:      true,
		},
		{
			ID:            "prod-milk",
			Name:          "Milk",
			Category:      "Dairy",
			Unit:          models.UnitLiter,
			PricePerUnit:  decimal.NewFromInt(60),
			TaxPercentage: decimal.NewFromInt(5),
			IsActive:      true,
		},
	}
}
