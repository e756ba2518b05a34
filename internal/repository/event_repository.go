package repository

import (
	"context"
	"database/sql"
	"time"
)

// EventRepo provides read access to gym events.  Events are seeded
// out-of-band like the catalogs; this API never writes them.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo returns a new EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// EventView is the wire shape of one event.  Date is formatted as
// RFC3339 in UTC.
type EventView struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Duration *string `json:"duration,omitempty"`
}

// List returns every event ordered ascending by date.  When no events
// exist an empty slice is returned.
func (r *EventRepo) List(ctx context.Context) ([]EventView, error) {
	const q = `SELECT id, name, date, duration FROM events ORDER BY date ASC, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]EventView, 0)
	for rows.Next() {
		var ev EventView
		var date time.Time
		var duration sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Name, &date, &duration); err != nil {
			return nil, err
		}
		ev.Date = date.UTC().Format(time.RFC3339)
		if duration.Valid {
			d := duration.String
			ev.Duration = &d
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
