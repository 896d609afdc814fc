package tree

import (
	"errors"

	"github.com/cacack/gedcomtree/scanner"
)

// FormatError is a strict-mode scan failure or level-gap violation,
// carrying the offending line number and raw text.
type FormatError = scanner.FormatError

// ErrPointerNotFound is returned by ElementByPointer when the requested
// cross-reference pointer isn't in the document's dictionary.
var ErrPointerNotFound = errors.New("gedcom: pointer not found")
