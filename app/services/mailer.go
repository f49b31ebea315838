package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/utils/format"
)

type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Company  string
}

type Mailer struct {
	config MailerConfig
}

func NewMailer(cfg MailerConfig) *Mailer {
	// App passwords are often pasted with spaces.
	cfg.Password = strings.ReplaceAll(cfg.Password, " ", "")
	return &Mailer{config: cfg}
}

func (m *Mailer) configured() bool {
	return m.config.Username != "" && m.config.Password != ""
}

// SendInvoiceEmail mails the invoice summary with the PDF attached.
func (m *Mailer) SendInvoiceEmail(invoice *models.Invoice, to string, pdf []byte) error {
	if !m.configured() {
		return fmt.Errorf("email credentials not configured")
	}

	subject := fmt.Sprintf("Invoice #%s from %s", invoice.InvoiceNumber, m.config.Company)
	body := buildInvoiceEmailBody(invoice, m.config.Company)
	filename := fmt.Sprintf("Invoice_%s.pdf", invoice.InvoiceNumber)

	msg := m.buildMessage(to, subject, body, filename, pdf)

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("mailer: failed to send invoice email")
		return fmt.Errorf("failed to send invoice email: %w", err)
	}

	return nil
}

// buildMessage assembles a multipart/mixed MIME message with an HTML
// body part and a base64 PDF attachment.
func (m *Mailer) buildMessage(to, subject, htmlBody, filename string, pdf []byte) []byte {
	const boundary = "bizbill-mime-boundary"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=\"%s\"\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: application/pdf\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=\"%s\"\r\n", filename)
	msg.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString(pdf)
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76])
		msg.WriteString("\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return msg.Bytes()
}

func buildInvoiceEmailBody(invoice *models.Invoice, company string) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
            <p>Dear %s,</p>
            <p>Thank you for your business! Please find attached your invoice.</p>
            <p>Invoice Details:</p>
            <ul>
                <li>Invoice Number: %s</li>
                <li>Date: %s</li>
                <li>Total Amount: %s</li>
                <li>Received Amount: %s</li>
                <li>Due Balance: %s</li>
            </ul>
            <p>Best regards,<br>%s Team</p>
        </body>
        </html>
    `,
		invoice.Customer.Name,
		invoice.InvoiceNumber,
		invoice.InvoiceDate.Format("02 January 2006"),
		format.FormatRupees(invoice.GrandTotal),
		format.FormatRupees(invoice.ReceivedAmount),
		format.FormatRupees(invoice.DueBalance),
		company,
	)
}
