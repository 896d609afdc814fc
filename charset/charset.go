package charset

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies the byte-order mark found at the start of a stream.
type Encoding int

const (
	// EncodingUnknown means no recognized BOM was present; the stream is
	// assumed to already be UTF-8.
	EncodingUnknown Encoding = iota
	// EncodingUTF8 is the three-byte UTF-8 BOM (0xEF 0xBB 0xBF).
	EncodingUTF8
	// EncodingUTF16LE is the UTF-16 little-endian BOM (0xFF 0xFE).
	EncodingUTF16LE
	// EncodingUTF16BE is the UTF-16 big-endian BOM (0xFE 0xFF).
	EncodingUTF16BE
)

// ErrInvalidUTF8 reports the position of the first malformed byte
// sequence found while validating a decoded stream.
type ErrInvalidUTF8 struct {
	Line   int
	Column int
}

func (e *ErrInvalidUTF8) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at line %d, column %d", e.Line, e.Column)
}

// DetectBOM inspects the first bytes of r for a byte-order mark. It
// returns a reader that yields the stream's full content with any BOM
// consumed, plus the encoding that BOM identifies (EncodingUnknown if
// none was found).
func DetectBOM(r io.Reader) (io.Reader, Encoding, error) {
	prefix := make([]byte, 3)
	n, err := io.ReadFull(r, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, EncodingUnknown, err
	}

	encoding, skip := EncodingUnknown, 0
	switch {
	case n >= 3 && bytes.Equal(prefix, []byte{0xEF, 0xBB, 0xBF}):
		encoding, skip = EncodingUTF8, 3
	case n >= 2 && bytes.Equal(prefix[:2], []byte{0xFF, 0xFE}):
		encoding, skip = EncodingUTF16LE, 2
	case n >= 2 && bytes.Equal(prefix[:2], []byte{0xFE, 0xFF}):
		encoding, skip = EncodingUTF16BE, 2
	}

	return io.MultiReader(bytes.NewReader(prefix[skip:n]), r), encoding, nil
}

// NewReader wraps r so that it always yields well-formed UTF-8: it
// strips a leading BOM, transcodes UTF-16 to UTF-8 when the BOM calls
// for it, and fails with *ErrInvalidUTF8, naming the line and column,
// on the first malformed byte sequence.
func NewReader(r io.Reader) io.Reader {
	body, encoding, err := DetectBOM(r)
	if err != nil {
		// BOM detection failed outright (not even a short read); fall
		// back to validating the raw stream.
		return &validatingReader{src: r, line: 1, column: 1}
	}

	switch encoding {
	case EncodingUTF16LE:
		body = transform.NewReader(body, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())
	case EncodingUTF16BE:
		body = transform.NewReader(body, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder())
	}

	return &validatingReader{src: body, line: 1, column: 1}
}

// validatingReader passes decoded bytes through unchanged while tracking
// line/column position, so a malformed sequence can be reported at the
// exact spot it occurs in the source GEDCOM file.
type validatingReader struct {
	src    io.Reader
	line   int
	column int
}

func (v *validatingReader) Read(p []byte) (int, error) {
	n, err := v.src.Read(p)
	if n > 0 {
		if badErr := v.scan(p[:n]); badErr != nil {
			return 0, badErr
		}
	}
	return n, err
}

func (v *validatingReader) scan(p []byte) error {
	if utf8.Valid(p) {
		v.advance(p)
		return nil
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return &ErrInvalidUTF8{Line: v.line, Column: v.column + i}
		}
		v.advance(p[i : i+size])
		i += size
	}
	return nil
}

func (v *validatingReader) advance(p []byte) {
	for _, b := range p {
		if b == '\n' {
			v.line++
			v.column = 1
		} else {
			v.column++
		}
	}
}

// ValidateString reports whether s is well-formed UTF-8.
func ValidateString(s string) bool { return utf8.ValidString(s) }

// ValidateBytes reports whether b is well-formed UTF-8.
func ValidateBytes(b []byte) bool { return utf8.Valid(b) }
