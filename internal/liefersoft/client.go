package liefersoft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const jsonContentType = "application/json;charset=UTF-8"

// Client talks to the Liefersoft order-routing API. Every forward performs a
// fresh login; the partner token is short-lived and not worth caching.
type Client struct {
	baseURL   string
	login     string
	password  string
	companyID string
	http      *http.Client
	logger    *zap.SugaredLogger
}

type Config struct {
	BaseURL   string
	Login     string
	Password  string
	CompanyID string
	Timeout   time.Duration
}

// UpstreamError carries the partner's own status and response body so the
// handler can pass them through.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Message, e.StatusCode, e.Body)
}

// ForwardResult is the partner's response to a forwarded order.
type ForwardResult struct {
	Data any
}

func New(cfg Config, logger *zap.SugaredLogger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.liefersoft.de"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:   base,
		login:     cfg.Login,
		password:  cfg.Password,
		companyID: cfg.CompanyID,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

func (c *Client) authenticate(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"login":     c.login,
		"password":  c.password,
		"companyId": c.companyID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", jsonContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("liefersoft login request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}

	// login failures stay internal errors; only the order call itself
	// passes the partner's status through
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("liefersoft login failed", "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("liefersoft login failed: status %d: %s", resp.StatusCode, string(respBody))
	}

	var loginData struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(respBody, &loginData); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	if loginData.AccessToken == "" {
		return "", fmt.Errorf("token not received from Liefersoft")
	}

	return loginData.AccessToken, nil
}

// ForwardOrder logs in and relays the raw order payload to the partner.
func (c *Client) ForwardOrder(ctx context.Context, payload json.RawMessage) (*ForwardResult, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build orders request: %w", err)
	}
	req.Header.Set("Content-Type", jsonContentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("liefersoft orders request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("liefersoft rejected order", "status", resp.StatusCode, "body", string(respBody))
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "Failed to send request to Liefersoft",
			Body:       string(respBody),
		}
	}

	var data any
	if err := json.Unmarshal(respBody, &data); err != nil {
		// partner occasionally answers with plain text
		data = map[string]string{
			"message": "Request successful, but response is not JSON",
			"raw":     string(respBody),
		}
	}

	return &ForwardResult{Data: data}, nil
}
