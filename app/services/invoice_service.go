package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/repositories"
)

// DefaultTermsConditions is used when the form leaves the terms empty.
const DefaultTermsConditions = "1. Customer will pay the GST\n" +
	"2. Customer will pay the Delivery charges\n" +
	"3. Pay due amount within 15 days"

type CustomerPayload struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	Pincode       string `json:"pincode" validate:"required"`
	PanNumber     string `json:"pan_number"`
	Gstin         string `json:"gstin"`
	PlaceOfSupply string `json:"place_of_supply"`
}

type InvoiceItemPayload struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// GenerateInvoiceRequest is the POST /invoice/generate/ payload: the
// customer form fields plus the cart snapshot.
type GenerateInvoiceRequest struct {
	Customer        CustomerPayload      `json:"customer" validate:"required"`
	Items           []InvoiceItemPayload `json:"items" validate:"required,min=1,dive"`
	Discount        decimal.Decimal      `json:"discount"`
	ReceivedAmount  decimal.Decimal      `json:"received_amount"`
	Notes           string               `json:"notes"`
	TermsConditions string               `json:"terms_conditions"`
}

type GenerateInvoiceResult struct {
	InvoiceID     string
	InvoiceNumber string
	EmailSent     bool
	CustomerEmail string
}

// InvoiceMailer and InvoicePDFGenerator are what InvoiceService needs
// from the delivery side; the concrete Mailer and PDFService satisfy
// them.
type InvoiceMailer interface {
	SendInvoiceEmail(invoice *models.Invoice, to string, pdf []byte) error
}

type InvoicePDFGenerator interface {
	GenerateInvoicePDF(invoice *models.Invoice) ([]byte, error)
}

type InvoiceService struct {
	invoiceRepo  repositories.InvoiceRepositoryImpl
	customerRepo repositories.CustomerRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	mailer       InvoiceMailer
	pdf          InvoicePDFGenerator
	whatsapp     WhatsAppClient
	validate     *validator.Validate
}

func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepositoryImpl,
	customerRepo repositories.CustomerRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	mailer InvoiceMailer,
	pdf InvoicePDFGenerator,
	whatsapp WhatsAppClient,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		mailer:       mailer,
		pdf:          pdf,
		whatsapp:     whatsapp,
		validate:     validator.New(),
	}
}

// Generate turns a cart snapshot into a stored invoice: customer
// get-or-create by email, sequential S-prefixed number, item price/tax
// snapshots, stored totals and a best-effort email to the customer.
func (s *InvoiceService) Generate(ctx context.Context, req *GenerateInvoiceRequest) (*GenerateInvoiceResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid invoice payload: %w", err)
	}
	for _, item := range req.Items {
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("item %s has non-positive quantity", item.ProductID)
		}
	}

	if req.Customer.PlaceOfSupply == "" {
		req.Customer.PlaceOfSupply = req.Customer.State
	}
	if req.TermsConditions == "" {
		req.TermsConditions = DefaultTermsConditions
	}

	customer, created, err := s.customerRepo.GetOrCreateByEmail(ctx, req.Customer.Email, &models.Customer{
		Name:          req.Customer.Name,
		Phone:         req.Customer.Phone,
		Address:       req.Customer.Address,
		City:          req.Customer.City,
		State:         req.Customer.State,
		Pincode:       req.Customer.Pincode,
		PanNumber:     req.Customer.PanNumber,
		Gstin:         req.Customer.Gstin,
		PlaceOfSupply: req.Customer.PlaceOfSupply,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if created {
		log.Info().Str("customer", customer.Name).Msg("invoice: created new customer")
	}

	lastNumber, err := s.invoiceRepo.LastInvoiceNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine invoice number: %w", err)
	}

	invoice := &models.Invoice{
		InvoiceNumber:   NextInvoiceNumber(lastNumber),
		CustomerID:      customer.ID,
		Customer:        *customer,
		InvoiceDate:     time.Now(),
		Discount:        req.Discount,
		ReceivedAmount:  req.ReceivedAmount,
		Notes:           req.Notes,
		TermsConditions: req.TermsConditions,
	}

	for _, payload := range req.Items {
		product, err := s.productRepo.GetByID(ctx, payload.ProductID)
		if err != nil || product == nil {
			return nil, fmt.Errorf("product %s not found", payload.ProductID)
		}
		item := models.InvoiceItem{}
		item.Snapshot(product, payload.Quantity)
		item.Product = *product
		invoice.Items = append(invoice.Items, item)
	}

	invoice.CalculateTotals()

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	emailSent := false
	if customer.Email != "" {
		if err := s.emailInvoice(ctx, invoice, customer.Email); err != nil {
			log.Warn().Err(err).Str("invoice", invoice.InvoiceNumber).Msg("invoice: auto email failed")
		} else {
			emailSent = true
		}
	}

	return &GenerateInvoiceResult{
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		EmailSent:     emailSent,
		CustomerEmail: customer.Email,
	}, nil
}

func (s *InvoiceService) emailInvoice(ctx context.Context, invoice *models.Invoice, to string) error {
	pdf, err := s.pdf.GenerateInvoicePDF(invoice)
	if err != nil {
		return err
	}
	if err := s.mailer.SendInvoiceEmail(invoice, to, pdf); err != nil {
		return err
	}

	now := time.Now()
	invoice.EmailSent = true
	invoice.EmailSentAt = &now
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		log.Warn().Err(err).Msg("invoice: failed to record email status")
	}
	return nil
}

// NextInvoiceNumber continues the S-prefixed sequence: S01, S02, ...
// Unparseable or missing predecessors restart at S01.
func NextInvoiceNumber(last string) string {
	if strings.HasPrefix(last, "S") {
		if n, err := strconv.Atoi(last[1:]); err == nil {
			return fmt.Sprintf("S%02d", n+1)
		}
	}
	return "S01"
}

func (s *InvoiceService) Detail(ctx context.Context, id string) (*models.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *InvoiceService) PDF(ctx context.Context, id string) (*models.Invoice, []byte, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := s.pdf.GenerateInvoicePDF(invoice)
	if err != nil {
		return nil, nil, err
	}
	return invoice, pdf, nil
}

// SendEmail mails the invoice to the given address and records the
// delivery on success.
func (s *InvoiceService) SendEmail(ctx context.Context, id, email string) error {
	if email == "" {
		return fmt.Errorf("email address is required")
	}
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.emailInvoice(ctx, invoice, email)
}

// SendWhatsApp sends the text summary and records the delivery.
func (s *InvoiceService) SendWhatsApp(ctx context.Context, id string) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.whatsapp.SendInvoiceMessage(ctx, invoice); err != nil {
		return err
	}

	now := time.Now()
	invoice.WhatsappSent = true
	invoice.WhatsappSentAt = &now
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		log.Warn().Err(err).Msg("invoice: failed to record whatsapp status")
	}
	return nil
}

func (s *InvoiceService) Search(ctx context.Context, keyword string) ([]models.Invoice, error) {
	return s.invoiceRepo.Search(ctx, keyword)
}

// Statistics is the dashboard view model.
type Statistics struct {
	repositories.InvoiceStats
	TotalProducts  int64
	TotalCustomers int64
	RecentInvoices []models.Invoice
}

func (s *InvoiceService) Statistics(ctx context.Context) (*Statistics, error) {
	invoiceStats, err := s.invoiceRepo.Stats(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice stats: %w", err)
	}

	stats := &Statistics{InvoiceStats: *invoiceStats}

	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.TotalCustomers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if stats.RecentInvoices, err = s.invoiceRepo.Recent(ctx, 5); err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}

	return stats, nil
}
