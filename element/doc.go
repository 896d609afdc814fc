// Package element implements the GEDCOM element model: the tagged-variant
// node type the tree builder assembles and the query engine walks.
//
// Each line of a GEDCOM file becomes one Element carrying its level,
// optional pointer, tag, value, and line terminator, linked to its
// parent and children. Kind is the read-only discriminator a factory
// assigns at construction time from the tag catalog; Individual and
// Family are thin typed wrappers over *Element that add variant-specific
// query methods, replacing what a class hierarchy would do with
// precondition errors (ErrNotIndividual, ErrNotFamily) instead of
// dynamic dispatch.
//
// Example usage:
//
//	if e.Kind() == tags.KindIndividual {
//	    person, _ := element.AsIndividual(e)
//	    given, surname := person.GetName()
//	    fmt.Printf("%s %s, born %d\n", given, surname, person.GetBirthYear())
//	}
package element
