// Package encoder writes a parsed *tree.Document back out as GEDCOM
// text.
//
// Example usage:
//
//	f, err := os.Create("output.ged")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	if err := encoder.Encode(f, doc); err != nil {
//	    log.Fatal(err)
//	}
package encoder
