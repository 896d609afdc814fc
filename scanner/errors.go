package scanner

import "fmt"

// FormatError reports a line that failed the GEDCOM grammar in strict
// mode; the tree builder also uses it for a level gap. Context carries
// the offending line text for diagnostics.
type FormatError struct {
	Line    int
	Message string
	Context string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("gedcom: line %d: %s: %q", e.Line, e.Message, e.Context)
	}
	return fmt.Sprintf("gedcom: line %d: %s", e.Line, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
