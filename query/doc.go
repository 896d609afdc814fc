// Package query implements the relationship traversal operations that
// run over a parsed *tree.Document: resolving FAMS/FAMC pointers into
// families, walking parent/child/ancestor chains (optionally restricted
// to natural-only relationships via the _FREL/_MREL vendor sub-tags),
// and finding a path from a descendant to an ancestor.
//
// Every function takes the already-validated *element.Individual or
// *element.Family wrapper as its subject, so the "not an individual" /
// "not a family" precondition failure happens once, at the AsIndividual
// / AsFamily call site, rather than being re-checked on every query.
package query
