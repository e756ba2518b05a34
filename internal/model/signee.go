package model

import "time"

// Signee is a child+parent registration record attached to a session.
// There is no dedicated identity column: within a session a signee is
// identified by the (ChildFirstName, ChildLastName) pair, compared
// case-insensitively.  Child name fields are lower-cased before they are
// stored so the stored form is the canonical comparison form.
//
// Fields:
//  ID                – primary key identifier.
//  SessionID         – session the child is registered for.
//  ChildFirstName    – child's first name, stored lower-case.
//  ChildLastName     – child's last name, stored lower-case.
//  ParentFirstName   – registering parent's first name.
//  ParentLastName    – registering parent's last name.
//  ParentPhoneNumber – parent's contact phone number.
//  CreatedAt         – registration timestamp.
type Signee struct {
	ID                uint64    // signees.id
	SessionID         uint64    // signees.session_id
	ChildFirstName    string    // signees.child_first_name
	ChildLastName     string    // signees.child_last_name
	ParentFirstName   string    // signees.parent_first_name
	ParentLastName    string    // signees.parent_last_name
	ParentPhoneNumber string    // signees.parent_phone
	CreatedAt         time.Time // signees.created_at
}
