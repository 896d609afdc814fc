package encoder

import (
	"io"

	"github.com/cacack/gedcomtree/tree"
)

// Encode writes doc's tree to w, reproducing the GEDCOM text the
// document was parsed from (or would parse from, for a
// programmatically built document): each element's own preserved or
// assigned terminator, not a configurable line ending, since spec.md's
// round-trip property is byte-for-byte rather than logical equivalence.
func Encode(w io.Writer, doc *tree.Document) error {
	_, err := io.WriteString(w, doc.Root().ToGedcomString(true))
	return err
}
