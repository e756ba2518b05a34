package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tumbletown/signup-api/internal/model"
)

// SignupRepo performs the registration mutation.  The catalog documents
// are the only shared mutable state in the system and this repository is
// the only writer; every write goes through AppendSigneeIfRoomAndUnique
// so the capacity and duplicate rules hold no matter how many requests
// run concurrently.
type SignupRepo struct {
	db *sql.DB
}

// NewSignupRepo returns a new SignupRepo bound to the given database.
func NewSignupRepo(db *sql.DB) *SignupRepo { return &SignupRepo{db: db} }

// ResolveSession locates the target session for a registration.  The
// class is looked up by exact name inside the signups catalog and the
// session by exact (day, time) inside that class.  When several sessions
// carry the same (day, time) pair the first in stored order wins, which
// mirrors the seeded data's uniqueness-by-convention.
//
// Errors: ErrCatalogNotFound when the signups catalog has not been
// seeded, ErrClassNotFound and ErrSessionNotFound for the two lookup
// misses.
func (r *SignupRepo) ResolveSession(ctx context.Context, className, day, timeOfDay string) (uint64, error) {
	const catQ = `SELECT id FROM catalogs WHERE kind = ?`
	var catalogID uint64
	if err := r.db.QueryRowContext(ctx, catQ, string(model.KindSignups)).Scan(&catalogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCatalogNotFound
		}
		return 0, err
	}

	const classQ = `SELECT id FROM classes WHERE catalog_id = ? AND name = ? ORDER BY position, id LIMIT 1`
	var classID uint64
	if err := r.db.QueryRowContext(ctx, classQ, catalogID, className).Scan(&classID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrClassNotFound
		}
		return 0, err
	}

	const sessQ = `SELECT id FROM sessions WHERE class_id = ? AND day = ? AND time = ? ORDER BY position, id LIMIT 1`
	var sessionID uint64
	if err := r.db.QueryRowContext(ctx, sessQ, classID, day, timeOfDay).Scan(&sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}
	return sessionID, nil
}

// AppendSigneeIfRoomAndUnique inserts the signee into the session if and
// only if the session still has room and no signee with the same child
// name (case-insensitive) exists.  Both checks run inside one
// transaction after taking a row lock on the session, so two concurrent
// registrations for the same session serialize at the database and the
// capacity invariant holds; registrations for different sessions lock
// different rows and never contend.
//
// Child name fields must already be lower-cased by the caller; the
// stored form is the canonical comparison form.  On success exactly one
// row is inserted; on every failure path nothing is written.
func (r *SignupRepo) AppendSigneeIfRoomAndUnique(ctx context.Context, sessionID uint64, signee model.Signee) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the session row; this serializes concurrent writers for the
	// same session for the rest of the transaction.
	const lockQ = `SELECT max_signups FROM sessions WHERE id = ? FOR UPDATE`
	var maxSignups uint32
	if err := tx.QueryRowContext(ctx, lockQ, sessionID).Scan(&maxSignups); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}

	const dupQ = `SELECT EXISTS(SELECT 1 FROM signees WHERE session_id = ? AND child_first_name = ? AND child_last_name = ?)`
	var exists bool
	if err := tx.QueryRowContext(ctx, dupQ, sessionID, signee.ChildFirstName, signee.ChildLastName).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return ErrDuplicateSignup
	}

	const countQ = `SELECT COUNT(*) FROM signees WHERE session_id = ?`
	var count uint32
	if err := tx.QueryRowContext(ctx, countQ, sessionID).Scan(&count); err != nil {
		return err
	}
	if count >= maxSignups {
		return ErrSessionFull
	}

	const insQ = `INSERT INTO signees (session_id, child_first_name, child_last_name, parent_first_name, parent_last_name, parent_phone)
	              VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insQ,
		sessionID, signee.ChildFirstName, signee.ChildLastName,
		signee.ParentFirstName, signee.ParentLastName, signee.ParentPhoneNumber,
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
