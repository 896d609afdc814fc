package query

import (
	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tags"
	"github.com/cacack/gedcomtree/tree"
)

// GetChildren returns individual's children across every family
// individual is a spouse in.
//
// With scope All, every CHIL in each of those families is returned.
// With scope Natural, individual's own role in the family (HUSB or
// WIFE) determines which vendor sub-tag, _FREL or _MREL, marks a
// natural child: a CHIL only contributes when that sub-tag carries the
// literal value "Natural". Unlike GetParents, a matching CHIL is
// resolved by looking its pointer up directly rather than going through
// GetFamilyMembers.
func GetChildren(doc *tree.Document, individual *element.Individual, scope RelationScope) []*element.Individual {
	var children []*element.Individual
	for _, family := range GetFamilies(doc, individual, tags.FamilySpouse) {
		if scope != Natural {
			children = append(children, GetFamilyMembers(doc, family, MembersChildren)...)
			continue
		}

		requiredTag := roleRelationTag(family, individual)
		if requiredTag == "" {
			continue
		}

		for _, chil := range family.ChildrenWithTag(tags.Child) {
			matched := false
			for _, sub := range chil.Children() {
				if sub.Tag() == requiredTag && sub.Value() == tags.Natural {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			el, err := doc.ElementByPointer(chil.Value())
			if err != nil {
				continue
			}
			indi, err := element.AsIndividual(el)
			if err != nil {
				continue
			}
			children = append(children, indi)
		}
	}
	return children
}

// roleRelationTag reports which vendor relation sub-tag marks a natural
// child of individual in family: _MREL if individual is the WIFE,
// _FREL if individual is the HUSB, or "" if individual isn't listed as
// either.
func roleRelationTag(family *element.Family, individual *element.Individual) string {
	for _, member := range family.Children() {
		if member.Value() != individual.Pointer() {
			continue
		}
		switch member.Tag() {
		case tags.Wife:
			return tags.MotherRelation
		case tags.Husband:
			return tags.FatherRelation
		}
	}
	return ""
}
