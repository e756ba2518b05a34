package model

// Class is a named gymnastics program within a catalog.  Its identity is
// the name itself: registrations address a class by exact name match, so
// names are expected to be unique within a catalog by convention.
//
// Fields:
//  ID        – primary key identifier.
//  CatalogID – catalog the class belongs to.
//  Name      – class name, matched exactly against signup requests.
//  Position  – ordering of the class inside the catalog.
//  Sessions  – ordered sessions offered for the class.
type Class struct {
	ID        uint64 // classes.id
	CatalogID uint64 // classes.catalog_id
	Name      string // classes.name
	Position  uint32 // classes.position
	Sessions  []Session
}
