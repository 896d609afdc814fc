package query

import (
	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tree"
)

// FindPathToAncestor searches for a chain of natural parent links from
// descendant up to ancestor, depth-first, returning the first such path
// found (descendant first, ancestor last) or nil if none exists.
func FindPathToAncestor(doc *tree.Document, descendant, ancestor *element.Individual) []*element.Individual {
	return findPath(doc, descendant, ancestor, []*element.Individual{descendant})
}

func findPath(doc *tree.Document, descendant, ancestor *element.Individual, path []*element.Individual) []*element.Individual {
	if path[len(path)-1].Pointer() == ancestor.Pointer() {
		return path
	}
	for _, parent := range GetParents(doc, descendant, Natural) {
		extended := append(append([]*element.Individual{}, path...), parent)
		if found := findPath(doc, parent, ancestor, extended); found != nil {
			return found
		}
	}
	return nil
}
