package query

import (
	"strings"
	"testing"

	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/tree"
)

// threeGenerationGedcom models two grandparents, two parents (one
// natural, one step), and a child, with a two-MARR family thrown in so
// GetMarriages/GetMarriageYears have something to chew on.
const threeGenerationGedcom = "0 @I1@ INDI\n" +
	"1 NAME Grandpa /Smith/\n" +
	"1 FAMS @F1@\n" +
	"0 @I2@ INDI\n" +
	"1 NAME Grandma /Jones/\n" +
	"1 FAMS @F1@\n" +
	"0 @F1@ FAM\n" +
	"1 HUSB @I1@\n" +
	"1 WIFE @I2@\n" +
	"1 CHIL @I3@\n" +
	"2 _FREL Natural\n" +
	"1 MARR\n" +
	"2 DATE 12 JUN 1950\n" +
	"2 PLAC Springfield\n" +
	"0 @I3@ INDI\n" +
	"1 NAME Parent /Smith/\n" +
	"1 FAMC @F1@\n" +
	"1 FAMS @F2@\n" +
	"0 @I4@ INDI\n" +
	"1 NAME Stepparent /Doe/\n" +
	"1 FAMS @F2@\n" +
	"0 @F2@ FAM\n" +
	"1 HUSB @I3@\n" +
	"1 WIFE @I4@\n" +
	"1 CHIL @I5@\n" +
	"2 _FREL Natural\n" +
	"1 MARR\n" +
	"2 DATE 4 JUL 1975\n" +
	"2 PLAC Chicago\n" +
	"1 MARR\n" +
	"2 DATE 1 JAN 1990\n" +
	"2 PLAC Reno\n" +
	"0 @I5@ INDI\n" +
	"1 NAME Child /Smith/\n" +
	"1 FAMC @F2@\n" +
	"0 TRLR\n"

// naturalVsStepGedcom: I5 is the child of I3 (the HUSB) and I4 (the
// WIFE). Its CHIL link carries no relation sub-tag; withNaturalRelations
// adds the _FREL one that makes I5 a natural child of I3 only.
const naturalVsStepGedcom = "0 @I3@ INDI\n" +
	"1 NAME Parent /Smith/\n" +
	"1 FAMS @F2@\n" +
	"0 @I4@ INDI\n" +
	"1 NAME Stepparent /Doe/\n" +
	"1 FAMS @F2@\n" +
	"0 @F2@ FAM\n" +
	"1 HUSB @I3@\n" +
	"1 WIFE @I4@\n" +
	"1 CHIL @I5@\n" +
	"0 @I5@ INDI\n" +
	"1 NAME Child /Smith/\n" +
	"1 FAMC @F2@\n" +
	"0 TRLR\n"

func mustParse(t *testing.T, input string) *tree.Document {
	t.Helper()
	doc, err := tree.Parse(strings.NewReader(input), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func mustIndividual(t *testing.T, doc *tree.Document, pointer string) *element.Individual {
	t.Helper()
	el, err := doc.ElementByPointer(pointer)
	if err != nil {
		t.Fatalf("ElementByPointer(%s): %v", pointer, err)
	}
	indi, err := element.AsIndividual(el)
	if err != nil {
		t.Fatalf("AsIndividual(%s): %v", pointer, err)
	}
	return indi
}

func TestGetFamiliesResolvesSpouseFamilies(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	i3 := mustIndividual(t, doc, "@I3@")

	families := GetFamilies(doc, i3, "FAMS")
	if len(families) != 1 || families[0].Pointer() != "@F2@" {
		t.Fatalf("got %+v, want [@F2@]", families)
	}
}

func TestGetMarriagesReturnsOnePerMarrChild(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	i3 := mustIndividual(t, doc, "@I3@")

	marriages := GetMarriages(doc, i3)
	if len(marriages) != 2 {
		t.Fatalf("got %d marriages, want 2", len(marriages))
	}
	if marriages[0].Date != "4 JUL 1975" || marriages[0].Place != "Chicago" {
		t.Errorf("got %+v", marriages[0])
	}
	if marriages[1].Date != "1 JAN 1990" || marriages[1].Place != "Reno" {
		t.Errorf("got %+v", marriages[1])
	}
}

func TestGetMarriageYearsAndMatch(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	i3 := mustIndividual(t, doc, "@I3@")

	years := GetMarriageYears(doc, i3)
	if len(years) != 2 || years[0] != 1975 || years[1] != 1990 {
		t.Fatalf("got %v, want [1975 1990]", years)
	}
	if !MarriageYearMatch(doc, i3, 1975) {
		t.Error("expected a match on 1975")
	}
	if MarriageYearMatch(doc, i3, 2000) {
		t.Error("expected no match on 2000")
	}
	if !MarriageRangeMatch(doc, i3, 1980, 2000) {
		t.Error("expected a range match covering 1990")
	}
	if MarriageRangeMatch(doc, i3, 2000, 2010) {
		t.Error("expected no range match")
	}
}

func TestGetFamilyMembersByType(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	fam, err := doc.ElementByPointer("@F1@")
	if err != nil {
		t.Fatalf("ElementByPointer: %v", err)
	}
	family, err := element.AsFamily(fam)
	if err != nil {
		t.Fatalf("AsFamily: %v", err)
	}

	if got := GetFamilyMembers(doc, family, MembersHusband); len(got) != 1 || got[0].Pointer() != "@I1@" {
		t.Fatalf("husband: got %+v", got)
	}
	if got := GetFamilyMembers(doc, family, MembersWife); len(got) != 1 || got[0].Pointer() != "@I2@" {
		t.Fatalf("wife: got %+v", got)
	}
	if got := GetFamilyMembers(doc, family, MembersChildren); len(got) != 1 || got[0].Pointer() != "@I3@" {
		t.Fatalf("children: got %+v", got)
	}
	if got := GetFamilyMembers(doc, family, MembersAll); len(got) != 3 {
		t.Fatalf("all: got %d members, want 3", len(got))
	}
}

func TestGetParentsAllAcrossGenerations(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	i5 := mustIndividual(t, doc, "@I5@")

	parents := GetParents(doc, i5, All)
	if len(parents) != 2 {
		t.Fatalf("got %d parents, want 2", len(parents))
	}
}

func TestGetAncestorsWalksThreeGenerations(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	i5 := mustIndividual(t, doc, "@I5@")

	ancestors := GetAncestors(doc, i5, All)
	pointers := map[string]bool{}
	for _, a := range ancestors {
		pointers[a.Pointer()] = true
	}
	for _, want := range []string{"@I3@", "@I4@", "@I1@", "@I2@"} {
		if !pointers[want] {
			t.Errorf("expected %s among ancestors, got %v", want, pointers)
		}
	}
}

func TestGetParentsNaturalExcludesStepParent(t *testing.T) {
	doc := mustParse(t, withNaturalRelations(naturalVsStepGedcom))
	i5 := mustIndividual(t, doc, "@I5@")

	natural := GetParents(doc, i5, Natural)
	if len(natural) != 1 || natural[0].Pointer() != "@I3@" {
		t.Fatalf("got %+v, want only @I3@", natural)
	}

	all := GetParents(doc, i5, All)
	if len(all) != 2 {
		t.Fatalf("got %d parents for All, want 2", len(all))
	}
}

func TestGetChildrenNaturalUsesRoleSpecificRelationTag(t *testing.T) {
	doc := mustParse(t, withNaturalRelations(naturalVsStepGedcom))
	i3 := mustIndividual(t, doc, "@I3@")
	i4 := mustIndividual(t, doc, "@I4@")

	fromHusband := GetChildren(doc, i3, Natural)
	if len(fromHusband) != 1 || fromHusband[0].Pointer() != "@I5@" {
		t.Fatalf("got %+v, want @I5@ as a natural child of the husband", fromHusband)
	}

	fromWife := GetChildren(doc, i4, Natural)
	if len(fromWife) != 0 {
		t.Fatalf("got %+v, want no natural children for the step-parent", fromWife)
	}
}

func TestFindPathToAncestorFollowsNaturalParents(t *testing.T) {
	doc := mustParse(t, threeGenerationGedcom)
	i5 := mustIndividual(t, doc, "@I5@")
	i1 := mustIndividual(t, doc, "@I1@")

	path := FindPathToAncestor(doc, i5, i1)
	if len(path) != 3 {
		t.Fatalf("got path of length %d, want 3: %+v", len(path), path)
	}
	if path[0].Pointer() != "@I5@" || path[len(path)-1].Pointer() != "@I1@" {
		t.Fatalf("got %+v", path)
	}
}

// withNaturalRelations inserts a _FREL Natural sub-tag under I5's CHIL
// link in naturalVsStepGedcom, annotating I3 (the HUSB) as the natural
// parent and leaving I4 (the WIFE) a step-parent.
func withNaturalRelations(input string) string {
	return strings.Replace(input, "1 CHIL @I5@\n", "1 CHIL @I5@\n2 _FREL Natural\n", 1)
}
