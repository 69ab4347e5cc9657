package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pathlight/courseware/internal/billing"
	"github.com/pathlight/courseware/internal/identity"
	"github.com/pathlight/courseware/internal/logging"
)

const webhookSecret = "whsec_handler_test"

type stubOrders struct {
	bySession map[string]billing.Order
}

func (s *stubOrders) Create(_ context.Context, o billing.Order) error {
	s.bySession[o.SessionID] = o
	return nil
}

func (s *stubOrders) GetBySessionID(_ context.Context, sessionID string) (billing.Order, error) {
	o, ok := s.bySession[sessionID]
	if !ok {
		return billing.Order{}, billing.ErrNotFound
	}
	return o, nil
}

func (s *stubOrders) ListByUser(_ context.Context, _ string) ([]billing.Order, error) {
	return nil, nil
}

func (s *stubOrders) UpdateStatus(_ context.Context, _ string, _, _ billing.OrderStatus) error {
	return nil
}

type stubPurchasers struct{}

func (stubPurchasers) Put(_ context.Context, _ billing.Purchaser) error { return nil }
func (stubPurchasers) GetPurchaser(_ context.Context, _ string) (string, error) {
	return "", billing.ErrNotFound
}

type stubAccounts struct{ registered int }

func (s *stubAccounts) Register(_ context.Context, email, _, name string) (identity.User, error) {
	s.registered++
	return identity.User{ID: "user-1", Email: email, Name: name}, nil
}

func (s *stubAccounts) EnsureProfile(_ context.Context, userID, displayName string) (identity.Profile, error) {
	return identity.Profile{UserID: userID, DisplayName: displayName}, nil
}

func newWebhookServer(t *testing.T) (http.HandlerFunc, *stubAccounts) {
	t.Helper()
	accounts := &stubAccounts{}
	prov := billing.NewProvisioner(
		&stubOrders{bySession: map[string]billing.Order{}},
		stubPurchasers{}, accounts, nil, logging.NewNop())
	return WebhookHandler(prov, webhookSecret, logging.NewNop()), accounts
}

const eventBody = `{
	"id": "evt_1",
	"type": "checkout.session.completed",
	"data": {"object": {
		"id": "cs_handler",
		"payment_intent": "pi_1",
		"amount_total": 4900,
		"currency": "usd",
		"metadata": {"email": "b@example.com", "password": "hunter22", "name": "B"}
	}}
}`

func postWebhook(h http.HandlerFunc, body, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/billing/webhook", strings.NewReader(body))
	if sig != "" {
		req.Header.Set("Webhook-Signature", sig)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestWebhookAcceptsSignedEvent(t *testing.T) {
	h, accounts := newWebhookServer(t)

	sig := billing.SignPayload([]byte(eventBody), webhookSecret, time.Now())
	if w := postWebhook(h, eventBody, sig); w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if accounts.registered != 1 {
		t.Fatalf("registered = %d, want 1", accounts.registered)
	}

	// Redelivery of the same event must not provision again.
	sig2 := billing.SignPayload([]byte(eventBody), webhookSecret, time.Now())
	if w := postWebhook(h, eventBody, sig2); w.Code != http.StatusOK {
		t.Fatalf("replay status = %d", w.Code)
	}
	if accounts.registered != 1 {
		t.Fatalf("registered = %d after replay, want 1", accounts.registered)
	}
}

func TestWebhookRejectsUnsignedOrForged(t *testing.T) {
	h, accounts := newWebhookServer(t)

	cases := []struct {
		name string
		sig  string
	}{
		{"missing signature", ""},
		{"forged signature", billing.SignPayload([]byte(eventBody), "wrong-secret", time.Now())},
		{"stale signature", billing.SignPayload([]byte(eventBody), webhookSecret, time.Now().Add(-time.Hour))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postWebhook(h, eventBody, tc.sig)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			// A rejected delivery must leave no trace.
			if accounts.registered != 0 {
				t.Fatalf("registered = %d, want 0", accounts.registered)
			}
		})
	}
}

func TestCreateCheckoutFailsClosedWhenDisabled(t *testing.T) {
	h := CreateCheckoutHandler(billing.NewCheckoutClient("http://upstream", ""), CheckoutConfig{Enabled: false}, logging.NewNop())

	body := `{"email":"b@example.com","password":"hunter22!","name":"B"}`
	req := httptest.NewRequest(http.MethodPost, "/billing/checkout", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	h(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestCreateCheckoutValidatesInput(t *testing.T) {
	h := CreateCheckoutHandler(billing.NewCheckoutClient("http://upstream", "sk_test"), CheckoutConfig{
		Enabled: true, PriceID: "price_1", SuccessURL: "http://s", CancelURL: "http://c",
	}, logging.NewNop())

	cases := []string{
		`{"email":"not-an-email","password":"hunter22!"}`,
		`{"email":"b@example.com","password":"short"}`,
		`{"password":"hunter22!"}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/billing/checkout", strings.NewReader(body))
		w := httptest.NewRecorder()
		h(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}
