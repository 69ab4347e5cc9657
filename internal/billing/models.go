// Package billing converts verified payment-processor events into
// application identity and entitlement, and records orders.
package billing

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusFailed    OrderStatus = "failed"
	StatusRefunded  OrderStatus = "refunded"
)

// CanTransitionTo encodes the permitted order lifecycle:
// pending→completed, pending→failed, completed→refunded.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusCompleted || to == StatusFailed
	case StatusCompleted:
		return to == StatusRefunded
	default:
		return false
	}
}

// Order ties a checkout session to an identity. SessionID is unique: it is
// the idempotency key for webhook replays.
type Order struct {
	ID              string      `json:"id"`
	SessionID       string      `json:"session_id"`
	PaymentIntentID string      `json:"payment_intent_id,omitempty"`
	UserID          string      `json:"user_id,omitempty"`
	Email           string      `json:"email"`
	AmountTotal     int64       `json:"amount_total"`
	Currency        string      `json:"currency"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Purchaser is the side-channel record read by the sign-in fallback. It is
// written before identity creation so a purchaser can always be
// reconciled, even if provisioning fails halfway.
type Purchaser struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckoutSession is the subset of the processor's checkout object this
// service consumes. Metadata carries email, password and name embedded at
// session-creation time; the processor does not manage passwords.
type CheckoutSession struct {
	ID            string            `json:"id"`
	PaymentIntent string            `json:"payment_intent"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// Event is an inbound webhook event after signature verification.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object CheckoutSession `json:"object"`
	} `json:"data"`
}

// EventCheckoutCompleted is the only event type that triggers provisioning.
const EventCheckoutCompleted = "checkout.session.completed"
