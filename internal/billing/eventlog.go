package billing

import (
	"context"
	"database/sql"
	"time"
)

// EventLog is the append-only audit trail of webhook deliveries, keyed by
// checkout session. It exists for operators reconstructing a disputed
// provisioning run; the idempotency check itself uses the orders table.
type EventLog struct{ db *sql.DB }

func NewEventLog(db *sql.DB) *EventLog { return &EventLog{db: db} }

func (l *EventLog) Append(ctx context.Context, typ, key, dataJSON string) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at) VALUES ($1,$2,$3,$4)`,
		typ, key, dataJSON, time.Now().Unix())
	return err
}
