// Package elements holds the static periodic-table reference data used to turn
// an OCR'd symbol into an element.
//
// The built-in table covers hydrogen through gold (atomic numbers 1-79) plus
// oganesson (118). It is built once at package initialisation and is read-only
// afterward.
//
// # Lookup Semantics
//
// Keys are stored uppercase. Lookup uppercases its argument and then requires an
// exact match, so callers should trim OCR noise first:
//
//	rec, ok := elements.Lookup("Fe")
//	if !ok {
//	    // not an element symbol we know about
//	}
//	fmt.Println(rec.Label()) // Iron (FE)
//
// A miss is a normal outcome reported through the boolean, never an error.
package elements
