package query

import (
	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tree"
)

// ErrNotIndividual and ErrNotFamily are re-exported here so callers that
// only import query don't also need element for the precondition errors
// AsIndividual/AsFamily return.
var (
	ErrNotIndividual = element.ErrNotIndividual
	ErrNotFamily     = element.ErrNotFamily
)

// ErrPointerNotFound is re-exported from tree for the same reason:
// GetFamilies, GetParents, and friends all resolve FAMS/FAMC pointers
// through a *tree.Document and silently skip ones that don't resolve,
// but callers resolving a pointer themselves want the same sentinel.
var ErrPointerNotFound = tree.ErrPointerNotFound
