package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flowworks-backend/internal/contact"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoClient sends transactional email through the Brevo SMTP API.
type BrevoClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	notifyEmail string
	sandbox     bool
	endpoint    string
	httpClient  *http.Client
}

// NewBrevoClient returns nil when the API key or sender is missing, which
// callers treat as "mail disabled". notifyEmail receives new inquiries and
// defaults to the sender address.
func NewBrevoClient(apiKey, senderEmail, senderName, notifyEmail string, sandbox bool) *BrevoClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	if strings.TrimSpace(notifyEmail) == "" {
		notifyEmail = senderEmail
	}
	return &BrevoClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		notifyEmail: notifyEmail,
		sandbox:     sandbox,
		endpoint:    defaultBrevoEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

// SendContactNotification tells the team about a new inquiry.
func (c *BrevoClient) SendContactNotification(ctx context.Context, inq contact.Inquiry) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	htmlBody, err := buildContactNotificationHTML(inq)
	if err != nil {
		return "", err
	}
	subject := fmt.Sprintf("New inquiry from %s", inq.Name)
	if inq.Company != "" {
		subject = fmt.Sprintf("New inquiry from %s (%s)", inq.Name, inq.Company)
	}
	return c.sendHTML(ctx, c.notifyEmail, c.senderName, subject, htmlBody)
}

// SendContactAcknowledgement confirms receipt to the person who wrote in.
func (c *BrevoClient) SendContactAcknowledgement(ctx context.Context, inq contact.Inquiry) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	htmlBody, err := buildContactAcknowledgementHTML(inq)
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, inq.Email, inq.Name, "We received your message", htmlBody)
}

func (c *BrevoClient) sendHTML(ctx context.Context, toEmail, toName, subject, htmlBody string) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	if strings.TrimSpace(toEmail) == "" {
		return "", errors.New("missing recipient email")
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("missing subject")
	}
	if strings.TrimSpace(htmlBody) == "" {
		return "", errors.New("missing html body")
	}

	payload := brevoSendRequest{
		Sender: brevoSender{
			Name:  c.senderName,
			Email: c.senderEmail,
		},
		To: []brevoRecipient{
			{
				Email: toEmail,
				Name:  toName,
			},
		},
		Subject:     subject,
		HtmlContent: htmlBody,
	}
	if c.sandbox {
		payload.Headers = map[string]string{
			"X-Sib-Sandbox": "drop",
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("brevo marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("brevo create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("brevo send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("brevo decode response: %w", err)
	}
	if strings.TrimSpace(out.MessageID) == "" {
		return "", errors.New("brevo response missing messageId")
	}
	return out.MessageID, nil
}

type brevoSendRequest struct {
	Sender      brevoSender       `json:"sender"`
	To          []brevoRecipient  `json:"to"`
	Subject     string            `json:"subject"`
	HtmlContent string            `json:"htmlContent,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}
