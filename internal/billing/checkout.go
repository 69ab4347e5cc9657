package billing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pathlight/courseware/internal/apperr"
)

const checkoutTimeout = 10 * time.Second

// CheckoutClient creates hosted checkout sessions with the payment
// processor. Email, password and name ride along as session metadata so
// the completed-checkout webhook can provision the account; the processor
// itself never manages passwords.
type CheckoutClient struct {
	baseURL   string
	secretKey string
	httpc     *http.Client
}

func NewCheckoutClient(baseURL, secretKey string) *CheckoutClient {
	return &CheckoutClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		secretKey: secretKey,
		httpc:     &http.Client{Timeout: checkoutTimeout},
	}
}

type CreateSessionInput struct {
	Email      string
	Password   string
	Name       string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateSession calls the processor. Network failures and 5xx responses
// come back as TransientError (retryable); 4xx responses as
// ValidationError; a missing key as ConfigurationError (fail closed).
func (c *CheckoutClient) CreateSession(ctx context.Context, in CreateSessionInput) (Session, error) {
	if c.secretKey == "" {
		return Session{}, apperr.Configuration("payment secret key not configured")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price]", in.PriceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("customer_email", in.Email)
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)
	form.Set("metadata[email]", in.Email)
	form.Set("metadata[password]", in.Password)
	form.Set("metadata[name]", in.Name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Session{}, apperr.Transient(err, "checkout session request failed")
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode >= 500:
		return Session{}, apperr.Transient(nil, "payment processor returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return Session{}, apperr.Validation("payment processor rejected the request (%d): %s",
			resp.StatusCode, processorErrorMessage(body))
	}

	var s Session
	if err := json.Unmarshal(body, &s); err != nil {
		return Session{}, apperr.Transient(err, "unreadable checkout session response")
	}
	if s.ID == "" || s.URL == "" {
		return Session{}, apperr.Transient(nil, "checkout session response missing id or url")
	}
	return s, nil
}

func processorErrorMessage(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return "unknown error"
}
