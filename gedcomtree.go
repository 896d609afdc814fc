// Package gedcomtree provides a unified API for parsing and querying
// GEDCOM 5.5 genealogical data.
//
// This package is the recommended entry point for most users. It
// re-exports the most frequently used types for single-import
// convenience and wraps the common parse/encode operations.
//
// # Quick Start
//
// Parse a GEDCOM file:
//
//	doc, err := gedcomtree.ParseFile("family.ged", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, el := range doc.RootChildren() {
//	    if indi, err := element.AsIndividual(el); err == nil {
//	        given, surname := indi.GetName()
//	        fmt.Println(given, surname)
//	    }
//	}
//
// Write a GEDCOM file back out:
//
//	f, err := os.Create("output.ged")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	err = gedcomtree.Encode(f, doc)
//
// # Power Users
//
// For relationship traversal (ancestors, marriages, parent/child
// walks), import the query package directly:
//
//   - github.com/cacack/gedcomtree/query   - ancestor/descendant/marriage traversal
//   - github.com/cacack/gedcomtree/tree    - Document, parse options, caches
//   - github.com/cacack/gedcomtree/element - typed Individual/Family views
package gedcomtree

import (
	"io"

	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/encoder"
	"github.com/cacack/gedcomtree/tree"
)

// Type re-exports for single-import convenience.
type (
	// Document is a parsed GEDCOM tree.
	Document = tree.Document

	// Element is one node of a GEDCOM document tree.
	Element = element.Element

	// Individual is a typed view over an INDI element.
	Individual = element.Individual

	// Family is a typed view over a FAM element.
	Family = element.Family
)

// Parse reads a GEDCOM stream from r and builds a Document. Set strict
// to reject malformed input rather than recovering from it.
func Parse(r io.Reader, strict bool) (*Document, error) {
	return tree.Parse(r, strict)
}

// ParseFile opens path and parses it.
func ParseFile(path string, strict bool) (*Document, error) {
	return tree.ParseFile(path, strict)
}

// Encode writes doc back out as GEDCOM text.
func Encode(w io.Writer, doc *Document) error {
	return encoder.Encode(w, doc)
}
