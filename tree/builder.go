package tree

import (
	"fmt"

	"github.com/cacack/gedcomtree/element"
	"github.com/cacack/gedcomtree/scanner"
	"github.com/cacack/gedcomtree/tags"
)

// builder walks scanned lines and assembles them into the Element tree,
// attaching each new element under the nearest ancestor whose level is
// one less than the incoming line's level. last is the cursor: the most
// recently attached element, used both for the level-gap check and for
// lenient-mode orphan-continuation recovery.
type builder struct {
	root   *element.Element
	last   *element.Element
	strict bool
}

func newBuilder(strict bool) *builder {
	root := element.New(-1, "", "", "", "\n")
	return &builder{root: root, last: root, strict: strict}
}

// processLine scans one physical line and folds it into the tree, or
// returns a *FormatError for a strict-mode scan failure or, in either
// mode, a level gap.
func (b *builder) processLine(text, terminator string, lineNo int) error {
	res, err := scanner.Scan(text, terminator, lineNo, b.strict)
	if err != nil {
		return err
	}
	if res.Recovery == scanner.RecoveryOrphan {
		b.foldOrphan(res.Orphan)
		return nil
	}
	return b.attach(res.Line, lineNo)
}

// attach appends a normally-scanned (or no-terminator-recovered) line as
// a child of the nearest ancestor of last at level-1, after checking the
// level-gap invariant: a new level may not exceed last.Level()+1.
func (b *builder) attach(line scanner.Line, lineNo int) error {
	if line.Level > b.last.Level()+1 {
		return &scanner.FormatError{
			Line:    lineNo,
			Message: fmt.Sprintf("level %d follows level %d: gap of more than one is not allowed", line.Level, b.last.Level()),
		}
	}

	parent := b.last
	for parent.Level() >= line.Level {
		parent = parent.Parent()
	}

	newElement := element.New(line.Level, line.Pointer, line.Tag, line.Value, line.Terminator)
	parent.AddChild(newElement)
	b.last = newElement
	return nil
}

// foldOrphan implements the lenient-mode orphan-continuation recovery:
// a line that matched no grammar becomes a CONC/CONT continuation of
// the prior element. If last is itself a continuation, the orphan
// becomes a CONT sibling at last's level (preserving last's
// terminator); otherwise it becomes a CONC child one level deeper.
func (b *builder) foldOrphan(text string) {
	last := b.last
	if last.Tag() == tags.Conc || last.Tag() == tags.Cont {
		cont := element.New(last.Level(), "", tags.Cont, text, last.Terminator())
		last.Parent().AddChild(cont)
		b.last = cont
		return
	}
	b.last = last.NewChild(tags.Conc, "", text)
}
