package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/config"
)

// Client exposes the Gmail send operation used for administrator alerts.
type Client interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResponse, error)
}

// APIClient is a resty-backed implementation of Client talking to the Gmail
// REST API on behalf of the authenticated sender ("me").
type APIClient struct {
	httpClient *resty.Client
	sender     string
}

// NewClient builds a Gmail API client using the provided configuration values.
func NewClient(cfg config.GmailConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AccessToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		sender:     cfg.Sender,
	}
}

// SendMessageRequest represents a plain-text email payload.
type SendMessageRequest struct {
	To      []string
	Subject string
	Body    string
}

// SendMessageResponse mirrors the successful response from Gmail.
type SendMessageResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
}

// apiError represents a Gmail API error payload.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// SendMessage submits one RFC 2822 message through users/me/messages/send.
func (c *APIClient) SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResponse, error) {
	if len(req.To) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}

	payload := map[string]any{
		"raw": buildRawMessage(c.sender, req.To, req.Subject, req.Body),
	}

	result := new(SendMessageResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr).
		Post("/gmail/v1/users/me/messages/send")
	if err != nil {
		return nil, fmt.Errorf("send gmail message: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := ""
		code := resp.StatusCode()
		if apiErr != nil {
			message = apiErr.Error.Message
			if apiErr.Error.Code != 0 {
				code = apiErr.Error.Code
			}
		}
		return nil, fmt.Errorf("gmail api error: code=%d, message=%s", code, message)
	}

	return result, nil
}

// buildRawMessage assembles the base64url-encoded RFC 2822 message Gmail
// expects in the "raw" field.
func buildRawMessage(sender string, to []string, subject, body string) string {
	var b strings.Builder
	if sender != "" {
		fmt.Fprintf(&b, "From: %s\r\n", sender)
	}
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
