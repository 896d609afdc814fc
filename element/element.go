package element

import (
	"strconv"
	"strings"

	"github.com/cacack/gedcomtree/tags"
)

// maxLineLength is the GEDCOM 5.5 limit on a single physical line,
// pointer, tag, and value included. SetMultiLineValue wraps long values
// into CONC/CONT children so no emitted line exceeds it.
const maxLineLength = 255

// Element is one node of a GEDCOM document tree: a level, an optional
// cross-reference pointer, a tag, a value, and the children that follow
// at one level deeper.
type Element struct {
	level      int
	pointer    string
	tag        string
	value      string
	terminator string

	kind tags.Kind

	children []*Element
	parent   *Element
}

// New constructs an Element with kind derived from the tag catalog. It
// does not split value into CONC/CONT children — callers assembling a
// tree from already-scanned physical lines (where continuations are
// already separate lines) should use New directly; callers setting a
// value programmatically should use SetMultiLineValue afterward.
func New(level int, pointer, tag, value, terminator string) *Element {
	return &Element{
		level:      level,
		pointer:    pointer,
		tag:        tag,
		value:      value,
		terminator: terminator,
		kind:       tags.KindForTag(tag),
	}
}

// Level returns the element's nesting depth. The virtual document root
// uses -1, matching spec.md's root sentinel.
func (e *Element) Level() int { return e.level }

// Pointer returns the cross-reference pointer (e.g. "@I1@"), or "" if
// this element has none.
func (e *Element) Pointer() string { return e.pointer }

// Tag returns the element's GEDCOM tag.
func (e *Element) Tag() string { return e.tag }

// Value returns the element's own value, excluding any CONC/CONT
// continuation children. Use MultiLineValue to get the reassembled
// value.
func (e *Element) Value() string { return e.value }

// SetValue replaces the element's own value without touching its
// children.
func (e *Element) SetValue(value string) { e.value = value }

// Terminator returns the line terminator recorded for this element,
// used to reproduce the source document byte-for-byte on re-encoding.
func (e *Element) Terminator() string { return e.terminator }

// Kind reports which tagged variant this element was constructed as.
func (e *Element) Kind() tags.Kind { return e.kind }

// Children returns this element's direct children, in document order.
func (e *Element) Children() []*Element { return e.children }

// Parent returns this element's parent, or nil for the document root.
func (e *Element) Parent() *Element { return e.parent }

// SetParent sets this element's parent. AddChild calls this
// automatically; direct callers should rarely need it.
func (e *Element) SetParent(parent *Element) { e.parent = parent }

// AddChild appends child to this element's children and sets its
// parent, returning child for chaining.
func (e *Element) AddChild(child *Element) *Element {
	e.children = append(e.children, child)
	child.SetParent(e)
	return child
}

// NewChild creates, attaches, and returns a new child element one level
// deeper, inheriting this element's terminator.
func (e *Element) NewChild(tag, pointer, value string) *Element {
	return e.AddChild(New(e.level+1, pointer, tag, value, e.terminator))
}

// ChildrenWithTag returns the direct children whose tag equals tag, in
// document order.
func (e *Element) ChildrenWithTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildWithTag returns the first direct child whose tag equals tag,
// or nil if there is none.
func (e *Element) FirstChildWithTag(tag string) *Element {
	for _, c := range e.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// HasTag reports whether e has a direct child with the given tag.
func (e *Element) HasTag(tag string) bool {
	return e.FirstChildWithTag(tag) != nil
}

// MultiLineValue reassembles this element's value with its CONC (no
// line break) and CONT (hard line break) continuation children folded
// back in, per the GEDCOM 5.5 long-value wrapping convention.
func (e *Element) MultiLineValue() string {
	var b strings.Builder
	b.WriteString(e.value)
	lastTerminator := e.terminator
	for _, c := range e.children {
		switch c.tag {
		case tags.Conc:
			b.WriteString(c.value)
			lastTerminator = c.terminator
		case tags.Cont:
			b.WriteString(lastTerminator)
			b.WriteString(c.value)
			lastTerminator = c.terminator
		}
	}
	return b.String()
}

// SetMultiLineValue replaces this element's value and CONC/CONT
// continuation children with ones freshly wrapped from value, splitting
// on embedded newlines (CONT) and on the 255-character line limit
// (CONC). Any existing CONC/CONT children are discarded first; other
// children are left untouched.
func (e *Element) SetMultiLineValue(value string) {
	e.value = ""

	kept := e.children[:0:0]
	for _, c := range e.children {
		if c.tag != tags.Conc && c.tag != tags.Cont {
			kept = append(kept, c)
		}
	}
	e.children = kept

	lines := splitLines(value)
	if len(lines) == 0 {
		return
	}

	first := lines[0]
	n := e.setBoundedValue(first)
	e.addConcatenation(first[n:])

	for _, line := range lines[1:] {
		n := e.addBoundedChild(tags.Cont, line)
		e.addConcatenation(line[n:])
	}
}

// splitLines splits on "\n", "\r\n", and "\r". A final terminator
// produces a trailing empty element, so SetMultiLineValue stores it as
// an empty CONT line and MultiLineValue reproduces the terminator.
func splitLines(value string) []string {
	if value == "" {
		return nil
	}
	replaced := strings.ReplaceAll(value, "\r\n", "\n")
	replaced = strings.ReplaceAll(replaced, "\r", "\n")
	return strings.Split(replaced, "\n")
}

// ownGedcomLineLength is the length of this element's own "level
// [pointer] tag [value]" line, ignoring children, as it would be
// encoded right now.
func (e *Element) ownGedcomLineLength() int {
	return len(e.ownGedcomLine())
}

func (e *Element) ownGedcomLine() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(e.level))
	if e.pointer != "" {
		b.WriteByte(' ')
		b.WriteString(e.pointer)
	}
	b.WriteByte(' ')
	b.WriteString(e.tag)
	if e.value != "" {
		b.WriteByte(' ')
		b.WriteString(e.value)
	}
	return b.String()
}

// availableCharacters returns how much of the 255-character line budget
// remains for a value, given the level/pointer/tag overhead already
// committed and the space that separates the tag from the value.
func (e *Element) availableCharacters() int {
	used := e.ownGedcomLineLength() + 1
	if used > maxLineLength {
		return 0
	}
	return maxLineLength - used
}

// lineLength returns how many leading bytes of line fit within the
// available budget, preferring to break on a trailing run of spaces
// rather than mid-word.
func (e *Element) lineLength(line string) int {
	available := e.availableCharacters()
	if len(line) <= available {
		return len(line)
	}
	spaces := 0
	for spaces < available && line[available-spaces-1] == ' ' {
		spaces++
	}
	if spaces == available {
		return available
	}
	return available - spaces
}

func (e *Element) setBoundedValue(value string) int {
	n := e.lineLength(value)
	e.SetValue(value[:n])
	return n
}

func (e *Element) addBoundedChild(tag, value string) int {
	child := e.NewChild(tag, "", "")
	return child.setBoundedValue(value)
}

// addConcatenation appends enough CONC children to e to hold the
// remainder of s, each bounded to the 255-character line limit.
func (e *Element) addConcatenation(s string) {
	for len(s) > 0 {
		n := e.addBoundedChild(tags.Conc, s)
		s = s[n:]
	}
}

// ToGedcomString renders this element as "level [pointer] tag [value]"
// followed by its terminator. If recursive is true, every descendant is
// appended in document order. The virtual document root (level < 0)
// renders as empty itself but still recurses into its children.
func (e *Element) ToGedcomString(recursive bool) string {
	var b strings.Builder
	if e.level >= 0 {
		b.WriteString(e.ownGedcomLine())
		b.WriteString(e.terminator)
	}
	if recursive {
		for _, c := range e.children {
			b.WriteString(c.ToGedcomString(true))
		}
	}
	return b.String()
}

func (e *Element) String() string {
	return e.ToGedcomString(false)
}
