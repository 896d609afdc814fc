package element

import "github.com/cacack/gedcomtree/tags"

// Family is a typed view over an Element known to be a FAM record.
type Family struct {
	*Element
}

// AsFamily views e as a Family. It fails with ErrNotFamily if e was not
// constructed from a FAM tag.
func AsFamily(e *Element) (*Family, error) {
	if e.Kind() != tags.KindFamily {
		return nil, ErrNotFamily
	}
	return &Family{e}, nil
}

// HasChildren reports whether this family has a CHIL child.
func (f *Family) HasChildren() bool { return f.HasTag(tags.Child) }
