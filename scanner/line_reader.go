package scanner

import (
	"bufio"
	"io"

	"github.com/cacack/gedcomtree/charset"
)

// LineReader splits a GEDCOM byte stream into physical lines, preserving
// the exact terminator each line used. Unlike bufio.Scanner it does not
// normalize "\r\n" and "\r" endings away, because the tree builder needs
// the original terminator to round-trip a document byte-for-byte.
type LineReader struct {
	r   *bufio.Reader
	buf []byte
}

// NewLineReader wraps r with BOM detection and UTF-8 decoding (via the
// charset package) and returns a LineReader over the decoded text.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(charset.NewReader(r))}
}

// Next returns the next physical line's text (terminator stripped) and
// the terminator itself, one of "", "\n", "\r", "\r\n". An empty
// terminator means the stream ended without one, which only happens on
// the final line of a file that doesn't end in a newline. Next returns
// io.EOF once no more lines remain.
func (lr *LineReader) Next() (text string, terminator string, err error) {
	lr.buf = lr.buf[:0]
	sawAny := false
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if !sawAny {
					return "", "", io.EOF
				}
				return string(lr.buf), "", nil
			}
			return "", "", err
		}
		sawAny = true
		switch b {
		case '\n':
			return string(lr.buf), "\n", nil
		case '\r':
			peek, perr := lr.r.Peek(1)
			if perr == nil && len(peek) == 1 && peek[0] == '\n' {
				_, _ = lr.r.ReadByte()
				return string(lr.buf), "\r\n", nil
			}
			return string(lr.buf), "\r", nil
		default:
			lr.buf = append(lr.buf, b)
		}
	}
}
