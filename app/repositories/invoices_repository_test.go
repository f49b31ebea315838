package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/models"
)

func seedInvoice(t *testing.T, db *gorm.DB, number string, grand, received decimal.Decimal, date time.Time) models.Invoice {
	t.Helper()
	customer := models.Customer{Name: "C " + number, Email: number + "@example.com"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("customer seed failed: %v", err)
	}
	invoice := models.Invoice{
		InvoiceNumber:  number,
		CustomerID:     customer.ID,
		InvoiceDate:    date,
		GrandTotal:     grand,
		ReceivedAmount: received,
		DueBalance:     grand.Sub(received),
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("invoice seed failed: %v", err)
	}
	return invoice
}

func TestLastInvoiceNumber(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewInvoiceRepository(db)

	last, err := repo.LastInvoiceNumber(context.Background())
	if err != nil {
		t.Fatalf("empty table must not error: %v", err)
	}
	if last != "" {
		t.Fatalf("expected empty string for empty table, got %q", last)
	}

	now := time.Now()
	seedInvoice(t, db, "S01", decimal.NewFromInt(100), decimal.Zero, now)
	seedInvoice(t, db, "S03", decimal.NewFromInt(100), decimal.Zero, now)
	seedInvoice(t, db, "S02", decimal.NewFromInt(100), decimal.Zero, now)

	last, err = repo.LastInvoiceNumber(context.Background())
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if last != "S03" {
		t.Fatalf("expected S03, got %q", last)
	}
}

func TestStatsAggregates(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewInvoiceRepository(db)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	seedInvoice(t, db, "S01", decimal.NewFromInt(500), decimal.NewFromInt(500), now.AddDate(0, -2, 0))
	seedInvoice(t, db, "S02", decimal.NewFromInt(300), decimal.NewFromInt(100), now.AddDate(0, 0, -1))
	seedInvoice(t, db, "S03", decimal.NewFromInt(200), decimal.Zero, now)

	stats, err := repo.Stats(context.Background(), now)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalInvoices != 3 {
		t.Fatalf("expected 3 invoices, got %d", stats.TotalInvoices)
	}
	if !stats.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected revenue 1000, got %s", stats.TotalRevenue)
	}
	if !stats.PendingPayments.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected pending 400, got %s", stats.PendingPayments)
	}
	if stats.MonthInvoices != 2 {
		t.Fatalf("expected 2 invoices this month, got %d", stats.MonthInvoices)
	}
	if !stats.MonthRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected month revenue 500, got %s", stats.MonthRevenue)
	}
}

func TestSearchInvoicesByCustomer(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewInvoiceRepository(db)
	now := time.Now()

	customer := models.Customer{Name: "Sampath Singh", Email: "sampath@example.com", Phone: "9876543210"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("customer seed failed: %v", err)
	}
	invoice := models.Invoice{InvoiceNumber: "S09", CustomerID: customer.ID, InvoiceDate: now}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("invoice seed failed: %v", err)
	}

	for _, keyword := range []string{"S09", "sampath", "98765"} {
		found, err := repo.Search(context.Background(), keyword)
		if err != nil {
			t.Fatalf("search %q failed: %v", keyword, err)
		}
		if len(found) != 1 || found[0].InvoiceNumber != "S09" {
			t.Fatalf("search %q: expected S09, got %v", keyword, found)
		}
	}

	none, err := repo.Search(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %v", none)
	}
}
