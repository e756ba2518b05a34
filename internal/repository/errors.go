// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// each one to the right HTTP status without inspecting error strings.
package repository

import "errors"

// ErrCatalogNotFound is returned when a catalog singleton is missing
// from storage, which means the backend has not been seeded.
var ErrCatalogNotFound = errors.New("catalog not found")

// ErrClassNotFound is returned when no class with the requested name
// exists in the signups catalog.
var ErrClassNotFound = errors.New("class not found")

// ErrSessionNotFound is returned when a class has no session matching
// the requested (day, time) pair.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionFull is returned when a registration would push a session
// past its capacity. No mutation occurs.
var ErrSessionFull = errors.New("session is full")

// ErrDuplicateSignup is returned when the same child, compared
// case-insensitively by first and last name, is already registered for
// the session. No mutation occurs.
var ErrDuplicateSignup = errors.New("already signed up")
