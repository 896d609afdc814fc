package element

import (
	"strings"

	"github.com/cacack/gedcomtree/tags"
)

// AncestryAPID is an Ancestry.com Permanent Identifier from a _APID
// sub-tag, linking a source citation back to the record it was clipped
// from.
//
// The value is typically "1,DATABASE::RECORD", where the leading "1,"
// is a version indicator that's otherwise ignored.
type AncestryAPID struct {
	Raw      string
	Database string
	Record   string
}

// ParseAPID parses an Ancestry _APID value, or returns nil if it
// doesn't contain the "::" database/record separator.
func ParseAPID(value string) *AncestryAPID {
	if value == "" {
		return nil
	}

	sepIdx := strings.Index(value, "::")
	if sepIdx == -1 {
		return nil
	}

	apid := &AncestryAPID{Raw: value}

	apid.Record = value[sepIdx+2:]
	if apid.Record == "" {
		return nil
	}

	dbPart := value[:sepIdx]
	if commaIdx := strings.Index(dbPart, ","); commaIdx != -1 {
		apid.Database = dbPart[commaIdx+1:]
	} else {
		apid.Database = dbPart
	}
	if apid.Database == "" {
		return nil
	}

	return apid
}

// URL returns the Ancestry.com URL for this record.
func (a *AncestryAPID) URL() string {
	if a == nil || a.Database == "" || a.Record == "" {
		return ""
	}
	return "https://www.ancestry.com/discoveryui-content/view/" + a.Record + ":" + a.Database
}

// AncestryAPIDs scans this element's direct SOUR citations for _APID
// sub-tags and returns every one that parses, in document order.
func (e *Element) AncestryAPIDs() []AncestryAPID {
	var out []AncestryAPID
	for _, sour := range e.ChildrenWithTag(tags.Source) {
		for _, sub := range sour.Children() {
			if sub.Tag() != tags.AncestryPermanentID {
				continue
			}
			if apid := ParseAPID(sub.Value()); apid != nil {
				out = append(out, *apid)
			}
		}
	}
	return out
}
