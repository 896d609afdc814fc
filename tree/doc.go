// Package tree builds a Document tree from a GEDCOM byte stream and
// maintains the two lazily-built caches (the flat element list and the
// pointer-to-element dictionary) that the query engine relies on for
// O(1) lookups.
//
// Parse and ParseFile are the package's entry points, mirroring the
// teacher's Decode/DecodeWithOptions split: a convenience function
// taking just a strict-mode flag, and Options for callers that need
// context cancellation.
//
// Example usage:
//
//	doc, err := tree.ParseFile("family.ged", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	indi, err := doc.ElementByPointer("@I1@")
package tree
