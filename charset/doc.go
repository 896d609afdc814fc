// Package charset turns a raw GEDCOM file's bytes into a validated UTF-8
// stream: detecting and stripping a leading byte-order mark, transcoding
// UTF-16 where the BOM calls for it, and reporting the line and column
// of the first malformed UTF-8 sequence it finds. scanner.NewLineReader
// wraps every input stream with charset.NewReader before splitting it
// into GEDCOM lines, so nothing downstream has to think about encoding.
package charset
