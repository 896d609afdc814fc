package query

import (
	"strconv"
	"strings"

	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tags"
	"github.com/cacack/gedcomtree/tree"
)

// Marriage is a single MARR event's (date, place) pair. A family with
// more than one MARR child (unusual, but not forbidden) yields one
// Marriage per MARR rather than a single merged record.
type Marriage struct {
	Date  string
	Place string
}

// GetMarriages returns one Marriage per MARR child across every family
// individual is a spouse in, taking the last DATE and last PLAC seen
// directly under that MARR.
func GetMarriages(doc *tree.Document, individual *element.Individual) []Marriage {
	var marriages []Marriage
	for _, family := range GetFamilies(doc, individual, tags.FamilySpouse) {
		for _, marr := range family.ChildrenWithTag(tags.Marriage) {
			var m Marriage
			for _, child := range marr.Children() {
				switch child.Tag() {
				case tags.Date:
					m.Date = child.Value()
				case tags.Place:
					m.Place = child.Value()
				}
			}
			marriages = append(marriages, m)
		}
	}
	return marriages
}

// GetMarriageYears returns the year parsed from the final
// whitespace-separated token of each MARR's DATE value. A DATE value
// whose final token isn't an integer is silently skipped, not reported
// as an error or a sentinel.
func GetMarriageYears(doc *tree.Document, individual *element.Individual) []int {
	var years []int
	for _, family := range GetFamilies(doc, individual, tags.FamilySpouse) {
		for _, marr := range family.ChildrenWithTag(tags.Marriage) {
			for _, child := range marr.Children() {
				if child.Tag() != tags.Date {
					continue
				}
				fields := strings.Fields(child.Value())
				if len(fields) == 0 {
					continue
				}
				year, err := strconv.Atoi(fields[len(fields)-1])
				if err != nil {
					continue
				}
				years = append(years, year)
			}
		}
	}
	return years
}

// MarriageYearMatch reports whether individual has a marriage in year.
func MarriageYearMatch(doc *tree.Document, individual *element.Individual, year int) bool {
	for _, y := range GetMarriageYears(doc, individual) {
		if y == year {
			return true
		}
	}
	return false
}

// MarriageRangeMatch reports whether individual has a marriage within
// [from, to] inclusive.
func MarriageRangeMatch(doc *tree.Document, individual *element.Individual, from, to int) bool {
	for _, y := range GetMarriageYears(doc, individual) {
		if y >= from && y <= to {
			return true
		}
	}
	return false
}
