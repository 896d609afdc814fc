package tree

import (
	"context"
	"io"
	"os"

	"github.com/cacack/gedcomtree/scanner"
)

// Options configures Parse's lower-level entry point, ParseWithOptions.
type Options struct {
	// Strict enables strict parsing: any malformed line aborts the parse
	// with a *FormatError instead of being folded into the prior
	// element. A level-gap violation aborts the parse in either mode.
	Strict bool

	// Context allows cancellation and timeout control around the parse.
	Context context.Context
}

// DefaultOptions returns lenient parsing with a background context.
func DefaultOptions() *Options {
	return &Options{
		Strict:  false,
		Context: context.Background(),
	}
}

// Parse reads a GEDCOM stream from r and builds a Document. This is a
// convenience wrapper over ParseWithOptions using a background context.
func Parse(r io.Reader, strict bool) (*Document, error) {
	opts := DefaultOptions()
	opts.Strict = strict
	return ParseWithOptions(r, opts)
}

// ParseFile opens path and parses it, closing the file before returning.
func ParseFile(path string, strict bool) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, strict)
}

// ParseWithOptions reads a GEDCOM stream from r and builds a Document,
// checking opts.Context for cancellation before and after scanning.
func ParseWithOptions(r io.Reader, opts *Options) (*Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := checkContext(opts.Context); err != nil {
		return nil, err
	}

	b := newBuilder(opts.Strict)
	lr := scanner.NewLineReader(r)

	lineNo := 0
	for {
		lineNo++
		text, terminator, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := b.processLine(text, terminator, lineNo); err != nil {
			return nil, err
		}
	}

	if err := checkContext(opts.Context); err != nil {
		return nil, err
	}

	return newDocument(b.root), nil
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
