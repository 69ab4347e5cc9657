package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/billing"
)

var validate = validator.New()

const maxWebhookBody = 1 << 20 // payment processor events are small

// CheckoutConfig carries the static parts of a checkout session.
type CheckoutConfig struct {
	Enabled    bool
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// POST /billing/checkout  { "email", "password", "name" }
//
// Public: the buyer has no account yet. The credentials ride along as
// session metadata so the webhook can provision the account after payment.
// With billing unconfigured the endpoint fails closed.
func CreateCheckoutHandler(client *billing.CheckoutClient, cc CheckoutConfig, log *zap.SugaredLogger) http.HandlerFunc {
	type out struct {
		SessionID   string `json:"session_id"`
		CheckoutURL string `json:"checkout_url"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cc.Enabled {
			http.Error(w, "purchases are not available", http.StatusServiceUnavailable)
			return
		}
		var req struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=8"`
			Name     string `json:"name" validate:"max=200"`

			// Optional overrides; the configured defaults apply when absent.
			PriceID    string `json:"price_id" validate:"omitempty,max=200"`
			SuccessURL string `json:"success_url" validate:"omitempty,url"`
			CancelURL  string `json:"cancel_url" validate:"omitempty,url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "invalid checkout request", 400)
			return
		}
		in := billing.CreateSessionInput{
			Email:      req.Email,
			Password:   req.Password,
			Name:       req.Name,
			PriceID:    cc.PriceID,
			SuccessURL: cc.SuccessURL,
			CancelURL:  cc.CancelURL,
		}
		if req.PriceID != "" {
			in.PriceID = req.PriceID
		}
		if req.SuccessURL != "" {
			in.SuccessURL = req.SuccessURL
		}
		if req.CancelURL != "" {
			in.CancelURL = req.CancelURL
		}
		sess, err := client.CreateSession(r.Context(), in)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, out{SessionID: sess.ID, CheckoutURL: sess.URL})
	}
}

// POST /billing/webhook — payment processor callback. The signature is
// verified against the raw body before the event is even parsed; a bad
// signature produces no side effects.
func WebhookHandler(prov *billing.Provisioner, secret string, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			http.Error(w, "read body", 400)
			return
		}
		sig := r.Header.Get("Webhook-Signature")
		if err := billing.VerifySignature(payload, sig, secret, billing.DefaultSignatureTolerance, time.Now()); err != nil {
			log.Warnw("webhook signature rejected", "remote", r.RemoteAddr, "err", err)
			writeError(w, log, err)
			return
		}
		var ev billing.Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := prov.HandleEvent(r.Context(), ev); err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	}
}

// GET /billing/orders — the caller's own orders.
func ListOrdersHandler(orders billing.OrderStore, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		out, err := orders.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		if out == nil {
			out = []billing.Order{}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /billing/orders/{orderID}/refund — admin-only status transition.
func RefundOrderHandler(orders billing.OrderStore, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "orderID")
		if id == "" {
			http.Error(w, "order id required", 400)
			return
		}
		if err := orders.UpdateStatus(r.Context(), id, billing.StatusCompleted, billing.StatusRefunded); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
