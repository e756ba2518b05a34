package model

import "time"

// Event is an independent gym event (open house, showcase, camp).  Events
// are not connected to classes or sessions and carry no invariants beyond
// the required date.
//
// Fields:
//  ID       – primary key identifier.
//  Name     – event name.
//  Date     – when the event takes place (required).
//  Duration – free-form duration label (e.g. "90 min"), optional.
type Event struct {
	ID       uint64    // events.id
	Name     string    // events.name
	Date     time.Time // events.date
	Duration *string   // events.duration (nullable)
}
