package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/models"
)

// InvoiceStats carries the aggregates behind the statistics dashboard.
type InvoiceStats struct {
	TotalRevenue    decimal.Decimal
	PendingPayments decimal.Decimal
	TotalInvoices   int64
	MonthRevenue    decimal.Decimal
	MonthInvoices   int64
}

type InvoiceRepositoryImpl interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	Save(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	LastInvoiceNumber(ctx context.Context) (string, error)
	Search(ctx context.Context, keyword string) ([]models.Invoice, error)
	Recent(ctx context.Context, limit int) ([]models.Invoice, error)
	Stats(ctx context.Context, now time.Time) (*InvoiceStats, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryImpl {
	return &invoiceRepository{db}
}

func (i *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return i.db.WithContext(ctx).Create(invoice).Error
}

func (i *invoiceRepository) Save(ctx context.Context, invoice *models.Invoice) error {
	return i.db.WithContext(ctx).Save(invoice).Error
}

func (i *invoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := i.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// LastInvoiceNumber returns the highest invoice number by string
// ordering, or "" when no invoice exists yet.
func (i *invoiceRepository) LastInvoiceNumber(ctx context.Context) (string, error) {
	var invoice models.Invoice
	err := i.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Order("invoice_number DESC").
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return invoice.InvoiceNumber, nil
}

// Search filters by invoice number, customer name or customer phone,
// newest first. An empty keyword lists everything.
func (i *invoiceRepository) Search(ctx context.Context, keyword string) ([]models.Invoice, error) {
	var invoices []models.Invoice

	query := i.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Preload("Customer").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.created_at DESC")

	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where(
			"invoices.invoice_number LIKE ? OR customers.name LIKE ? OR customers.phone LIKE ?",
			like, like, like,
		)
	}

	err := query.Find(&invoices).Error
	return invoices, err
}

func (i *invoiceRepository) Recent(ctx context.Context, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := i.db.WithContext(ctx).
		Preload("Customer").
		Order("created_at DESC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

func (i *invoiceRepository) Stats(ctx context.Context, now time.Time) (*InvoiceStats, error) {
	stats := &InvoiceStats{}

	if err := i.db.WithContext(ctx).Model(&models.Invoice{}).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := i.db.WithContext(ctx).Model(&models.Invoice{}).
		Select("COALESCE(SUM(due_balance), 0)").Scan(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}
	if err := i.db.WithContext(ctx).Model(&models.Invoice{}).Count(&stats.TotalInvoices).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	monthScope := i.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("invoice_date >= ? AND invoice_date < ?", monthStart, monthEnd)
	if err := monthScope.Select("COALESCE(SUM(grand_total), 0)").Scan(&stats.MonthRevenue).Error; err != nil {
		return nil, err
	}
	if err := i.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("invoice_date >= ? AND invoice_date < ?", monthStart, monthEnd).
		Count(&stats.MonthInvoices).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
