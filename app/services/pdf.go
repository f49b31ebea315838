package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/vishubh/bizbilling/app/configs"
	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/utils/format"
)

// PDFService renders invoices as A4 PDFs: company header, bill-to
// block, items table and the notes/terms footer.
type PDFService struct {
	env configs.ENV
}

func NewPDFService(env configs.ENV) *PDFService {
	return &PDFService{env: env}
}

const (
	brandR = 0
	brandG = 217
	brandB = 165
)

func (s *PDFService) GenerateInvoicePDF(invoice *models.Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title and company block
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetTextColor(brandR, brandG, brandB)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, s.env.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, s.env.CompanyAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s   GSTIN: %s   PAN Number: %s",
		s.env.CompanyPhone, s.env.CompanyGstin, s.env.CompanyPan), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Bill-to and invoice meta, side by side
	top := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(120, 5, "BILL TO", "LTR", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	billTo := fmt.Sprintf("%s\n%s\nPhone: %s\nPAN Number: %s\nGSTIN: %s\nPlace of Supply: %s",
		invoice.Customer.Name, invoice.Customer.FullAddress(), invoice.Customer.Phone,
		invoice.Customer.PanNumber, invoice.Customer.Gstin, invoice.Customer.PlaceOfSupply)
	pdf.MultiCell(120, 5, billTo, "LBR", "L", false)
	bottom := pdf.GetY()

	pdf.SetXY(132, top)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(66, 5, "Invoice No", "LTR", "L", false)
	pdf.SetX(132)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(66, 5, invoice.InvoiceNumber, "LR", "L", false)
	pdf.SetX(132)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(66, 5, "Invoice Date", "LR", "L", false)
	pdf.SetX(132)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(66, 5, invoice.InvoiceDate.Format("02 January 2006"), "LBR", "L", false)
	if pdf.GetY() < bottom {
		pdf.SetY(bottom)
	}
	pdf.Ln(6)

	// Items table
	colWidths := []float64{12, 62, 26, 28, 30, 28}
	headers := []string{"Sr. No.", "Items", "Quantity", "Price / Unit", "Tax / Unit", "Amount"}

	pdf.SetFillColor(brandR, brandG, brandB)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	for idx, item := range invoice.Items {
		taxPerUnit := fmt.Sprintf("%s (%s%%)", format.FormatRupees(item.TaxPerUnit()), item.TaxPercentage)
		cells := []string{
			fmt.Sprintf("%d", idx+1),
			item.Product.Name,
			fmt.Sprintf("%s %s", item.Quantity, item.Product.Unit),
			format.FormatRupees(item.PricePerUnit),
			taxPerUnit,
			format.FormatRupees(item.Amount),
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Discount row
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2]+colWidths[3], 7, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[4], 7, "Discount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[5], 7, format.FormatRupees(invoice.Discount), "1", 1, "C", false, 0, "")

	// Totals row, brand filled
	pdf.SetFillColor(brandR, brandG, brandB)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colWidths[0], 7, "", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[1], 7, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[2], 7, invoice.TotalQuantity().StringFixed(0), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[3], 7, "", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[4], 7, format.FormatRupees(invoice.TotalTax), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidths[5], 7, format.FormatRupees(invoice.GrandTotal), "1", 1, "C", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(colWidths[0]+colWidths[1], 7, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[2]+colWidths[3], 7, "Received Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[4]+colWidths[5], 7, format.FormatRupees(invoice.ReceivedAmount), "1", 1, "C", false, 0, "")
	pdf.CellFormat(colWidths[0]+colWidths[1], 7, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[2]+colWidths[3], 7, "Due Balance", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[4]+colWidths[5], 7, format.FormatRupees(invoice.DueBalance), "1", 1, "C", false, 0, "")
	pdf.Ln(8)

	// Notes, terms and signatory
	notes := invoice.Notes
	if notes == "" {
		notes = "1. No return deal"
	}
	top = pdf.GetY()
	pdf.SetFont("Helvetica", "B", 9)
	pdf.MultiCell(56, 5, "Notes", "LTR", "L", false)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(56, 5, notes, "LBR", "L", false)
	notesBottom := pdf.GetY()

	pdf.SetXY(68, top)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.MultiCell(70, 5, "Terms & Conditions", "LTR", "L", false)
	pdf.SetX(68)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(70, 5, invoice.TermsConditions, "LBR", "L", false)
	termsBottom := pdf.GetY()

	pdf.SetXY(138, top)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.MultiCell(60, 5, "Authorised Signatory For", "LTR", "L", false)
	pdf.SetX(138)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(60, 5, s.env.CompanyName, "LBR", "L", false)

	if notesBottom > pdf.GetY() {
		pdf.SetY(notesBottom)
	}
	if termsBottom > pdf.GetY() {
		pdf.SetY(termsBottom)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
