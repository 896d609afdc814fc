// Package scanner implements the GEDCOM line scanner: it decodes one
// physical line of a GEDCOM stream into {level, pointer, tag, value,
// terminator}, the fields the tree builder needs to reconstruct the
// record hierarchy.
//
// Scanning happens in two layers. LineReader splits a byte stream (after
// BOM detection/UTF-8 validation, delegated to the charset package) into
// physical lines, preserving whichever line terminator was actually used
// ("\n", "\r", or "\r\n") so the tree can be re-serialized byte-for-byte.
// Scan then parses one physical line against the GEDCOM line grammar,
// either in strict mode (any mismatch is a FormatError) or lenient mode
// (a line the grammar rejects is flagged for the caller to fold into an
// implicit CONC/CONT continuation of the prior record, per the GEDCOM
// convention of wrapping long or multi-line values).
package scanner
