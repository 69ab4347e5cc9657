package billing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/apperr"
	"github.com/pathlight/courseware/internal/identity"
)

// AccountProvisioner is the slice of the identity service provisioning
// needs.
type AccountProvisioner interface {
	Register(ctx context.Context, email, password, name string) (identity.User, error)
	EnsureProfile(ctx context.Context, userID, displayName string) (identity.Profile, error)
}

// Provisioner turns a verified checkout-completed event into identity,
// profile and order records, exactly once per checkout session.
type Provisioner struct {
	orders     OrderStore
	purchasers PurchaserStore
	accounts   AccountProvisioner
	events     *EventLog
	log        *zap.SugaredLogger
	now        func() time.Time
}

func NewProvisioner(orders OrderStore, purchasers PurchaserStore, accounts AccountProvisioner, events *EventLog, log *zap.SugaredLogger) *Provisioner {
	return &Provisioner{
		orders:     orders,
		purchasers: purchasers,
		accounts:   accounts,
		events:     events,
		log:        log,
		now:        time.Now,
	}
}

// HandleEvent dispatches a verified event. Unknown event types are
// acknowledged without side effects so the processor stops redelivering
// them.
func (p *Provisioner) HandleEvent(ctx context.Context, ev Event) error {
	p.audit(ctx, ev)
	if ev.Type != EventCheckoutCompleted {
		p.log.Debugw("ignoring webhook event", "type", ev.Type, "id", ev.ID)
		return nil
	}
	return p.provision(ctx, ev.Data.Object)
}

// provision runs the post-payment pipeline:
//
//	idempotency check → purchaser record → identity → profile → order
//
// Identity creation is the only step whose failure aborts the pipeline; a
// missing profile or order row can be repaired later, a missing identity
// means a paying customer locked out.
func (p *Provisioner) provision(ctx context.Context, sess CheckoutSession) error {
	if sess.ID == "" {
		return apperr.Validation("checkout session id missing")
	}

	// Replayed deliveries for a session we already recorded are
	// acknowledged without reapplying side effects.
	if _, err := p.orders.GetBySessionID(ctx, sess.ID); err == nil {
		p.log.Infow("webhook replay for known session", "session", sess.ID)
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return apperr.Transient(err, "order lookup for session %s", sess.ID)
	}

	email := sess.Metadata["email"]
	password := sess.Metadata["password"]
	name := sess.Metadata["name"]
	if email == "" || password == "" {
		return apperr.Validation("checkout session %s metadata missing email or password", sess.ID)
	}

	// The purchaser record goes in first: if anything below fails, the
	// sign-in fallback can still reconcile this buyer.
	if err := p.purchasers.Put(ctx, Purchaser{
		Email:     email,
		Name:      name,
		SessionID: sess.ID,
		CreatedAt: p.now(),
	}); err != nil {
		p.log.Errorw("purchaser record write failed", "session", sess.ID, "err", err)
	}

	user, err := p.accounts.Register(ctx, email, password, name)
	if err != nil {
		return err
	}

	if _, err := p.accounts.EnsureProfile(ctx, user.ID, name); err != nil {
		// Tolerated: the profile is lazily created on first login.
		p.log.Errorw("profile creation failed, continuing", "user", user.ID, "err", err)
	}

	now := p.now()
	order := Order{
		ID:              uuid.NewString(),
		SessionID:       sess.ID,
		PaymentIntentID: sess.PaymentIntent,
		UserID:          user.ID,
		Email:           email,
		AmountTotal:     sess.AmountTotal,
		Currency:        sess.Currency,
		Status:          StatusCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := p.orders.Create(ctx, order); err != nil {
		p.log.Errorw("order record write failed, continuing", "session", sess.ID, "err", err)
	}

	p.log.Infow("provisioned account from checkout",
		"session", sess.ID, "user", user.ID, "amount", sess.AmountTotal, "currency", sess.Currency)
	return nil
}

func (p *Provisioner) audit(ctx context.Context, ev Event) {
	if p.events == nil {
		return
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := p.events.Append(ctx, ev.Type, ev.Data.Object.ID, string(raw)); err != nil {
		p.log.Warnw("event audit append failed", "type", ev.Type, "err", err)
	}
}
