package model

// CatalogKind distinguishes the two catalog singletons.  The source data
// keeps one catalog that is open for signups and one that lists upcoming
// classes which cannot be signed up for yet.  Both are seeded outside of
// this API and only the signups catalog is ever mutated here.
type CatalogKind string

const (
	// KindSignups is the live catalog that accepts registrations.
	KindSignups CatalogKind = "SIGNUPS"
	// KindUpcoming is the read-only catalog of not-yet-open classes.
	KindUpcoming CatalogKind = "UPCOMING"
)

// Catalog aggregates every class offered in a season.  Exactly one row
// exists per kind; the pair of rows is created out-of-band.
//
// Fields:
//  ID      – primary key identifier.
//  Kind    – which singleton this row is (SIGNUPS or UPCOMING).
//  Season  – human readable season label (e.g. "Fall 2026").
//  Classes – ordered classes belonging to the catalog.
type Catalog struct {
	ID      uint64      // catalogs.id
	Kind    CatalogKind // catalogs.kind
	Season  string      // catalogs.season
	Classes []Class
}
