package gedtest

import (
	"bytes"
	"testing"

	"github.com/cacack/gedcomtree/encoder"
	"github.com/cacack/gedcomtree/tree"
)

// AssertRoundTrip parses input, re-encodes it, and fails the test
// unless the re-encoded bytes are identical to input. Unlike a
// semantic comparison, this holds the parser and encoder to spec.md
// §8's byte-for-byte round-trip property: every terminator, CONC/CONT
// split, and field ordering must survive unchanged.
func AssertRoundTrip(t *testing.T, input []byte) {
	t.Helper()

	doc, err := tree.Parse(bytes.NewReader(input), true)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf, doc); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), input) {
		t.Errorf("round trip mismatch:\ngot:  %q\nwant: %q", buf.String(), string(input))
	}
}
