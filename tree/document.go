package tree

import "github.com/cacack/gedcomtree/element"

// Document is a parsed GEDCOM tree: the virtual root, plus the two
// caches the query engine depends on. Both caches are explicit
// {fresh, stale} state rather than nil-checked lazily-populated fields,
// so a cache that's merely empty (an empty document) isn't mistaken for
// one that needs rebuilding.
type Document struct {
	root *element.Element

	elementList      []*element.Element
	elementListFresh bool

	elementDictionary      map[string]*element.Element
	elementDictionaryFresh bool
}

func newDocument(root *element.Element) *Document {
	return &Document{root: root}
}

// NewDocumentFromRoot wraps a tree assembled programmatically (via
// element.New and Element.NewChild/AddChild, rather than Parse) in a
// Document, so it gets the same lazy pointer caches a parsed document
// has.
func NewDocumentFromRoot(root *element.Element) *Document {
	return newDocument(root)
}

// Root returns the virtual document root (level -1).
func (d *Document) Root() *element.Element {
	return d.root
}

// RootChildren returns the level-0 records: HEAD, the INDI/FAM/OBJE
// records, and TRLR, in document order.
func (d *Document) RootChildren() []*element.Element {
	return d.root.Children()
}

// ElementList returns every element in the tree (excluding the virtual
// root itself) in pre-order, rebuilding the cache first if it's stale.
func (d *Document) ElementList() []*element.Element {
	if !d.elementListFresh {
		d.rebuildElementList()
	}
	return d.elementList
}

// ElementDictionary returns the pointer-to-element map, rebuilding the
// cache first if it's stale. When a pointer is reused across multiple
// elements, the last one encountered in document order wins.
func (d *Document) ElementDictionary() map[string]*element.Element {
	if !d.elementDictionaryFresh {
		d.rebuildElementDictionary()
	}
	return d.elementDictionary
}

// ElementByPointer looks up an element by its cross-reference pointer,
// returning ErrPointerNotFound if token is not in the dictionary.
func (d *Document) ElementByPointer(token string) (*element.Element, error) {
	el, ok := d.ElementDictionary()[token]
	if !ok {
		return nil, ErrPointerNotFound
	}
	return el, nil
}

// InvalidateCache marks both caches stale. Callers that mutate the tree
// directly (adding, removing, or renaming pointer-bearing elements)
// after the caches were populated must call this; the caches rebuild
// lazily on next access.
func (d *Document) InvalidateCache() {
	d.elementListFresh = false
	d.elementDictionaryFresh = false
}

func (d *Document) rebuildElementList() {
	list := make([]*element.Element, 0)
	var walk func(e *element.Element)
	walk = func(e *element.Element) {
		for _, c := range e.Children() {
			list = append(list, c)
			walk(c)
		}
	}
	walk(d.root)
	d.elementList = list
	d.elementListFresh = true
}

func (d *Document) rebuildElementDictionary() {
	dict := make(map[string]*element.Element)
	for _, e := range d.ElementList() {
		if e.Pointer() != "" {
			dict[e.Pointer()] = e
		}
	}
	d.elementDictionary = dict
	d.elementDictionaryFresh = true
}
