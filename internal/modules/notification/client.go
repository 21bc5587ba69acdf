package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nilinki/internal/domain"
)

// Client dispatches notification payloads to the internal email endpoints
// over HTTP, authenticating with the shared internal secret. Keeping email
// delivery behind its own endpoints lets it move to a separate worker
// without touching the quote flow.
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

func NewClient(baseURL, secret string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		secret:  secret,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) NotifyBandInquiry(ctx context.Context, n domain.InquiryNotification) error {
	return c.post(ctx, "/internal/notifications/inquiry", n)
}

func (c *Client) NotifyClientConfirmation(ctx context.Context, n domain.ClientConfirmation) error {
	return c.post(ctx, "/internal/notifications/confirmation", n)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-internal-secret", c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification endpoint returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
