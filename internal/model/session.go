package model

// Session is a specific (day, time) offering of a class with a bounded
// number of spots.  The (day, time) pair identifies the session within
// its class by convention only; the schema does not enforce uniqueness.
// After every successful registration the number of signees must not
// exceed MaxSignups.
//
// Fields:
//  ID         – primary key identifier.
//  ClassID    – class the session belongs to.
//  Day        – weekday label (e.g. "Mon").
//  Time       – time-of-day label (e.g. "4:00pm").
//  MaxSignups – capacity of the session.
//  PriceCents – price for the session in cents.
//  Position   – ordering of the session inside the class.
type Session struct {
	ID         uint64 // sessions.id
	ClassID    uint64 // sessions.class_id
	Day        string // sessions.day
	Time       string // sessions.time
	MaxSignups uint32 // sessions.max_signups
	PriceCents uint32 // sessions.price_cents
	Position   uint32 // sessions.position
}
