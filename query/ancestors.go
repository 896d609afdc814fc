package query

import (
	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tree"
)

// GetAncestors returns individual's ancestors in pre-order: each
// generation's parents, then their parents, and so on. It does not
// deduplicate or guard against cycles; a GEDCOM file whose FAMC/FAMS
// pointers form a cycle makes this recurse indefinitely, the same
// trade-off the traversal it's grounded on makes.
func GetAncestors(doc *tree.Document, individual *element.Individual, scope RelationScope) []*element.Individual {
	parents := GetParents(doc, individual, scope)
	ancestors := append([]*element.Individual{}, parents...)
	for _, parent := range parents {
		ancestors = append(ancestors, GetAncestors(doc, parent, scope)...)
	}
	return ancestors
}
