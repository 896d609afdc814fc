package tree

import (
	"errors"
	"strings"
	"testing"
)

const sampleGedcom = "0 HEAD\n" +
	"1 SOUR Test\n" +
	"0 @I1@ INDI\n" +
	"1 NAME First /Last/\n" +
	"1 FAMS @F1@\n" +
	"0 @I2@ INDI\n" +
	"1 NAME Second /Last/\n" +
	"0 @F1@ FAM\n" +
	"1 HUSB @I1@\n" +
	"1 WIFE @I2@\n" +
	"0 TRLR\n"

func TestParseBuildsRootChildrenInOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleGedcom), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	children := doc.RootChildren()
	wantTags := []string{"HEAD", "INDI", "INDI", "FAM", "TRLR"}
	if len(children) != len(wantTags) {
		t.Fatalf("got %d root children, want %d", len(children), len(wantTags))
	}
	for i, tag := range wantTags {
		if children[i].Tag() != tag {
			t.Errorf("child %d: got tag %s, want %s", i, children[i].Tag(), tag)
		}
	}
}

func TestParseRoundTripIsByteIdentical(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleGedcom), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doc.Root().ToGedcomString(true)
	if got != sampleGedcom {
		t.Fatalf("round trip mismatch:\ngot:  %q\nwant: %q", got, sampleGedcom)
	}
}

func TestParseStrictModeRejectsLevelGap(t *testing.T) {
	input := "0 HEAD\n2 SOUR Test\n"
	if _, err := Parse(strings.NewReader(input), true); err == nil {
		t.Fatal("expected a FormatError for a level gap of more than one")
	}
}

func TestParseLenientModeFoldsOrphanLineIntoConc(t *testing.T) {
	input := "0 @I5@ INDI\n1 NOTE This is a note field\nthat is continued on the next line.\n"
	doc, err := Parse(strings.NewReader(input), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	indi := doc.RootChildren()[0]
	note := indi.FirstChildWithTag("NOTE")
	if note == nil {
		t.Fatal("expected a NOTE child")
	}
	children := note.Children()
	if len(children) != 1 || children[0].Tag() != "CONC" {
		t.Fatalf("expected a single CONC child, got %+v", children)
	}
	if got := children[0].Value(); got != "that is continued on the next line." {
		t.Fatalf("got %q", got)
	}
}

func TestElementByPointerAndDictionaryLastWriterWins(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleGedcom), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	el, err := doc.ElementByPointer("@I1@")
	if err != nil {
		t.Fatalf("ElementByPointer: %v", err)
	}
	if el.Tag() != "INDI" {
		t.Fatalf("got tag %s, want INDI", el.Tag())
	}

	if _, err := doc.ElementByPointer("@MISSING@"); !errors.Is(err, ErrPointerNotFound) {
		t.Fatalf("got %v, want ErrPointerNotFound", err)
	}

	input := "0 @D@ INDI\n0 @D@ FAM\n"
	doc2, _ := Parse(strings.NewReader(input), true)
	el2, err := doc2.ElementByPointer("@D@")
	if err != nil {
		t.Fatalf("ElementByPointer: %v", err)
	}
	if el2.Tag() != "FAM" {
		t.Fatalf("got tag %s, want FAM (last writer should win)", el2.Tag())
	}
}

func TestInvalidateCacheForcesRebuild(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleGedcom), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_ = doc.ElementDictionary()

	newIndi := doc.Root().NewChild("INDI", "@I9@", "")
	_ = newIndi
	doc.InvalidateCache()

	if _, err := doc.ElementByPointer("@I9@"); err != nil {
		t.Fatalf("expected @I9@ to be found after invalidating the cache: %v", err)
	}
}
