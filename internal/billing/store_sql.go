package billing

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/pathlight/courseware/internal/apperr"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Create(ctx context.Context, o Order) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (id,session_id,payment_intent_id,user_id,email,amount_total,currency,status,created_at,updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		o.ID, o.SessionID, o.PaymentIntentID, o.UserID, strings.ToLower(o.Email),
		o.AmountTotal, o.Currency, string(o.Status), o.CreatedAt.Unix(), o.UpdatedAt.Unix())
	return err
}

func (s *SQLStore) GetBySessionID(ctx context.Context, sessionID string) (Order, error) {
	return scanOrder(s.db.QueryRowContext(ctx,
		`SELECT id,session_id,payment_intent_id,user_id,email,amount_total,currency,status,created_at,updated_at
		 FROM orders WHERE session_id=$1`, sessionID))
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,session_id,payment_intent_id,user_id,email,amount_total,currency,status,created_at,updated_at
		 FROM orders WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		o, err := scanOrderRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLStore) UpdateStatus(ctx context.Context, id string, from, to OrderStatus) error {
	if !from.CanTransitionTo(to) {
		return apperr.Conflict("order status %s cannot transition to %s", from, to)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3 AND status=$4`,
		string(to), time.Now().Unix(), id, string(from))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.Conflict("order %s is not in status %s", id, from)
	}
	return nil
}

func (s *SQLStore) Put(ctx context.Context, p Purchaser) error {
	// Upsert: a re-purchase refreshes the record rather than erroring.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO purchasers (email,name,session_id,created_at) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name, session_id=EXCLUDED.session_id`,
		strings.ToLower(p.Email), p.Name, p.SessionID, p.CreatedAt.Unix())
	return err
}

func (s *SQLStore) GetPurchaser(ctx context.Context, email string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM purchasers WHERE email=$1`, strings.ToLower(email)).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return name, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row *sql.Row) (Order, error) {
	o, err := scanOrderRows(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func scanOrderRows(row rowScanner) (Order, error) {
	var o Order
	var status string
	var created, updated int64
	var userID sql.NullString
	if err := row.Scan(&o.ID, &o.SessionID, &o.PaymentIntentID, &userID, &o.Email,
		&o.AmountTotal, &o.Currency, &status, &created, &updated); err != nil {
		return Order{}, err
	}
	o.UserID = userID.String
	o.Status = OrderStatus(status)
	o.CreatedAt = time.Unix(created, 0)
	o.UpdatedAt = time.Unix(updated, 0)
	return o, nil
}
