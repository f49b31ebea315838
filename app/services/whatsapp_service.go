package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vishubh/bizbilling/app/models"
	"github.com/vishubh/bizbilling/app/utils/format"
)

type WhatsAppClient interface {
	SendInvoiceMessage(ctx context.Context, invoice *models.Invoice) error
}

type whatsAppService struct {
	phoneNumberID string
	accessToken   string
	client        *http.Client
	baseURL       string
}

func NewWhatsAppClient(phoneNumberID, accessToken string) WhatsAppClient {
	return &whatsAppService{
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		client:        &http.Client{Timeout: 10 * time.Second},
		baseURL:       "https://graph.facebook.com/v17.0",
	}
}

type whatsAppTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// SendInvoiceMessage pushes a plain-text invoice summary to the
// customer's WhatsApp number through the Meta graph API.
func (s *whatsAppService) SendInvoiceMessage(ctx context.Context, invoice *models.Invoice) error {
	if s.phoneNumberID == "" || s.accessToken == "" {
		return fmt.Errorf("whatsapp credentials not configured")
	}

	phone := strings.NewReplacer("+", "", " ", "", "-", "").Replace(invoice.Customer.Phone)
	if phone == "" {
		return fmt.Errorf("customer has no phone number")
	}

	payload := whatsAppTextMessage{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
	}
	payload.Text.Body = fmt.Sprintf(
		"Hello %s,\n\nYour invoice #%s has been generated.\n\nTotal Amount: %s\nDue Balance: %s\n\nThank you for your business!",
		invoice.Customer.Name,
		invoice.InvoiceNumber,
		format.FormatRupees(invoice.GrandTotal),
		format.FormatRupees(invoice.DueBalance),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.baseURL, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call whatsapp API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("whatsapp: API error")
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}

	return nil
}
