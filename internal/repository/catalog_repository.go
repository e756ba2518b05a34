package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tumbletown/signup-api/internal/model"
)

// CatalogRepo loads the catalog singletons for display.  It only ever
// produces aggregate views: session signee lists are collapsed to counts
// inside the query, so raw signee rows never reach this code path.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo returns a new CatalogRepo bound to the given database.
func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }

// CatalogView is the wire shape of one catalog.  Classes keep their
// stored order.
type CatalogView struct {
	Season  string      `json:"season"`
	Classes []ClassView `json:"classes"`
}

// ClassView is the wire shape of one class with its sessions in stored
// order.
type ClassView struct {
	ID       uint64        `json:"id"`
	Name     string        `json:"name"`
	Sessions []SessionView `json:"sessions"`
}

// SessionView is the wire shape of one session.  Signees is the count of
// stored registrations, never the records themselves.
type SessionView struct {
	Day        string `json:"day"`
	Time       string `json:"time"`
	MaxSignups uint32 `json:"maxSignups"`
	PriceCents uint32 `json:"priceCents"`
	Signees    int    `json:"signees"`
}

// Get returns the catalog singleton of the requested kind with every
// session's signees collapsed to an integer count.  It returns
// ErrCatalogNotFound when the singleton row does not exist, which
// signals that the backend has not been seeded.
func (r *CatalogRepo) Get(ctx context.Context, kind model.CatalogKind) (*CatalogView, error) {
	const catQ = `SELECT id, season FROM catalogs WHERE kind = ?`
	var catalogID uint64
	var view CatalogView
	err := r.db.QueryRowContext(ctx, catQ, string(kind)).Scan(&catalogID, &view.Season)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}

	const classQ = `SELECT id, name FROM classes WHERE catalog_id = ? ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, classQ, catalogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	view.Classes = make([]ClassView, 0)
	// Keep track of index by class ID so sessions can be attached after
	// the batch query below.
	index := make(map[uint64]int)
	for rows.Next() {
		var cls ClassView
		if err := rows.Scan(&cls.ID, &cls.Name); err != nil {
			return nil, err
		}
		cls.Sessions = []SessionView{}
		index[cls.ID] = len(view.Classes)
		view.Classes = append(view.Classes, cls)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(view.Classes) == 0 {
		return &view, nil
	}

	// Fetch sessions with their signee counts for all classes in one
	// query.  LEFT JOIN keeps empty sessions at count zero.
	ids := make([]interface{}, 0, len(view.Classes))
	placeholders := make([]string, 0, len(view.Classes))
	for _, cls := range view.Classes {
		ids = append(ids, cls.ID)
		placeholders = append(placeholders, "?")
	}
	sessionQ := `SELECT s.class_id, s.day, s.time, s.max_signups, s.price_cents, COUNT(g.id)
	             FROM sessions s
	             LEFT JOIN signees g ON g.session_id = s.id
	             WHERE s.class_id IN (` + strings.Join(placeholders, ",") + `)
	             GROUP BY s.id, s.class_id, s.day, s.time, s.max_signups, s.price_cents, s.position
	             ORDER BY s.class_id, s.position, s.id`
	srows, err := r.db.QueryContext(ctx, sessionQ, ids...)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var classID uint64
		var sess SessionView
		if err := srows.Scan(&classID, &sess.Day, &sess.Time, &sess.MaxSignups, &sess.PriceCents, &sess.Signees); err != nil {
			return nil, err
		}
		idx, ok := index[classID]
		if !ok {
			continue
		}
		view.Classes[idx].Sessions = append(view.Classes[idx].Sessions, sess)
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}
	return &view, nil
}
