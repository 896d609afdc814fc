package element

import (
	"strconv"
	"strings"
)

// DateMode selects which end of a date range GetYear returns.
type DateMode int

const (
	// DateSecond returns the later year of a range (the default).
	DateSecond DateMode = iota
	// DateFirst returns the earlier year of a range.
	DateFirst
)

// GetYear extracts a year from this element's value, intended for use
// on a DATE element. "BET <a> AND <b>" and "FROM <a> TO <b>" are treated
// as ranges, picking a or b per mode; anything else uses the last
// whitespace-separated token. The chosen token is parsed as a signed
// integer; empty input or a parse failure yields -1.
func (e *Element) GetYear(mode DateMode) int {
	value := strings.TrimSpace(e.value)

	if first, second, ok := splitDateRange(value); ok {
		if mode == DateFirst {
			value = first
		} else {
			value = second
		}
	}

	fields := strings.Fields(value)
	if len(fields) == 0 {
		return -1
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return -1
	}
	return year
}

// GetYearInDate is for an event-detail element (BIRT, DEAT, and the
// like): it returns GetYear(DateSecond) of the last direct DATE child,
// or -1 if there is none.
func (e *Element) GetYearInDate() int {
	year := -1
	for _, c := range e.children {
		if c.tag == "DATE" {
			year = c.GetYear(DateSecond)
		}
	}
	return year
}

// splitDateRange recognizes "BET <a> AND <b>" and "FROM <a> TO <b>" and
// returns the two range endpoints, unparsed.
func splitDateRange(value string) (first, second string, ok bool) {
	switch {
	case strings.HasPrefix(value, "BET ") && strings.Contains(value, " AND "):
		parts := strings.SplitN(value[len("BET "):], " AND ", 2)
		return parts[0], parts[1], true
	case strings.HasPrefix(value, "FROM ") && strings.Contains(value, " TO "):
		parts := strings.SplitN(value[len("FROM "):], " TO ", 2)
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}
