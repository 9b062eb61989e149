// Package conv holds small value-conversion helpers.  Convert coerces between
// maps, structs and primitives via a JSON round-trip, which is exactly the
// shape-shifting needed when tool arguments move between their wire form and
// their typed form.
package conv
