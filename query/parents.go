package query

import (
	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tags"
	"github.com/cacack/gedcomtree/tree"
)

// GetParents returns individual's parents across every family
// individual is a child in.
//
// With scope All, every HUSB and WIFE in each of those families is
// returned. With scope Natural, a family only contributes a parent when
// individual's own CHIL entry carries a _FREL or _MREL sub-tag valued
// "Natural": a _MREL match contributes the family's wife, a _FREL match
// the family's husband. A side whose sub-tag is missing or carries any
// other value (such as "Adopted") contributes no parent.
func GetParents(doc *tree.Document, individual *element.Individual, scope RelationScope) []*element.Individual {
	var parents []*element.Individual
	for _, family := range GetFamilies(doc, individual, tags.FamilyChild) {
		if scope != Natural {
			parents = append(parents, GetFamilyMembers(doc, family, MembersParents)...)
			continue
		}
		for _, chil := range family.ChildrenWithTag(tags.Child) {
			if chil.Value() != individual.Pointer() {
				continue
			}
			for _, sub := range chil.Children() {
				if sub.Value() != tags.Natural {
					continue
				}
				switch sub.Tag() {
				case tags.MotherRelation:
					parents = append(parents, GetFamilyMembers(doc, family, MembersWife)...)
				case tags.FatherRelation:
					parents = append(parents, GetFamilyMembers(doc, family, MembersHusband)...)
				}
			}
		}
	}
	return parents
}
