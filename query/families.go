package query

import (
	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tags"
	"github.com/cacack/gedcomtree/tree"
)

// GetFamilies returns the families individual belongs to, selected by
// familyTag: tags.FamilySpouse for the families individual is a spouse
// in, or tags.FamilyChild for the family individual is a child in. A
// FAMS/FAMC value that doesn't resolve to a FAM element in doc is
// skipped rather than treated as an error.
func GetFamilies(doc *tree.Document, individual *element.Individual, familyTag string) []*element.Family {
	var families []*element.Family
	for _, child := range individual.ChildrenWithTag(familyTag) {
		el, err := doc.ElementByPointer(child.Value())
		if err != nil {
			continue
		}
		family, err := element.AsFamily(el)
		if err != nil {
			continue
		}
		families = append(families, family)
	}
	return families
}

// GetFamilyMembers returns the members of family selected by
// membersType, in the order they appear as children of the family
// record. A HUSB/WIFE/CHIL value that doesn't resolve to an INDI
// element in doc is skipped.
func GetFamilyMembers(doc *tree.Document, family *element.Family, membersType MembersType) []*element.Individual {
	var members []*element.Individual
	for _, child := range family.Children() {
		if !membersType.includes(child.Tag()) {
			continue
		}
		el, err := doc.ElementByPointer(child.Value())
		if err != nil {
			continue
		}
		indi, err := element.AsIndividual(el)
		if err != nil {
			continue
		}
		members = append(members, indi)
	}
	return members
}

// MembersType selects which family-member tags GetFamilyMembers
// includes.
type MembersType int

const (
	MembersAll MembersType = iota
	MembersParents
	MembersHusband
	MembersWife
	MembersChildren
)

func (m MembersType) includes(tag string) bool {
	switch m {
	case MembersParents:
		return tag == tags.Husband || tag == tags.Wife
	case MembersHusband:
		return tag == tags.Husband
	case MembersWife:
		return tag == tags.Wife
	case MembersChildren:
		return tag == tags.Child
	default:
		return tag == tags.Husband || tag == tags.Wife || tag == tags.Child
	}
}
