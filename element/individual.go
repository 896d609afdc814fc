package element

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cacack/gedcomtree/tags"
)

// Individual is a typed view over an Element known to be an INDI
// record, adding the person-specific query contract.
type Individual struct {
	*Element
}

// AsIndividual views e as an Individual. It fails with ErrNotIndividual
// if e was not constructed from an INDI tag.
func AsIndividual(e *Element) (*Individual, error) {
	if e.Kind() != tags.KindIndividual {
		return nil, ErrNotIndividual
	}
	return &Individual{e}, nil
}

// EventData is the (date, place, sources) triple queries like
// GetBirthData return.
type EventData struct {
	Date    string
	Place   string
	Sources []string
}

// IsDeceased reports whether this individual has a DEAT child.
func (i *Individual) IsDeceased() bool { return i.HasTag(tags.Death) }

// IsChild reports whether this individual has a FAMC child.
func (i *Individual) IsChild() bool { return i.HasTag(tags.FamilyChild) }

// IsSpouse reports whether this individual has a FAMS child.
func (i *Individual) IsSpouse() bool { return i.HasTag(tags.FamilySpouse) }

// IsPrivate reports whether this individual has a PRIV child whose
// value is exactly "Y".
func (i *Individual) IsPrivate() bool {
	for _, c := range i.ChildrenWithTag(tags.Private) {
		if c.Value() == "Y" {
			return true
		}
	}
	return false
}

// GetName returns the individual's (given, surname), from the first
// NAME child. If that child's value is non-empty it is split on "/":
// given is the text before the first slash, surname the text between
// the slashes; any suffix after the closing slash is discarded. If the
// value is empty, GIVN/SURN grandchildren are read instead; as soon as
// both have been seen, they are returned.
func (i *Individual) GetName() (given, surname string) {
	for _, nameChild := range i.ChildrenWithTag(tags.Name) {
		if v := nameChild.Value(); v != "" {
			parts := strings.SplitN(v, "/", 3)
			given = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				surname = strings.TrimSpace(parts[1])
			}
			return given, surname
		}

		var foundGiven, foundSurname bool
		for _, sub := range nameChild.Children() {
			switch sub.Tag() {
			case tags.Given:
				given = sub.Value()
				foundGiven = true
			case tags.Surname:
				surname = sub.Value()
				foundSurname = true
			}
		}
		if foundGiven && foundSurname {
			return given, surname
		}
	}
	return given, surname
}

// GetAllNames returns the raw value of every NAME child, in order.
func (i *Individual) GetAllNames() []string {
	var out []string
	for _, c := range i.ChildrenWithTag(tags.Name) {
		out = append(out, c.Value())
	}
	return out
}

// SurnameMatch reports whether query matches (case-insensitively, as a
// regular expression) the surname returned by GetName.
func (i *Individual) SurnameMatch(query string) (bool, error) {
	_, surname := i.GetName()
	return regexMatch(query, surname)
}

// GivenNameMatch reports whether query matches (case-insensitively, as
// a regular expression) the given name returned by GetName.
func (i *Individual) GivenNameMatch(query string) (bool, error) {
	given, _ := i.GetName()
	return regexMatch(query, given)
}

func regexMatch(pattern, target string) (bool, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(target), nil
}

// GetGender returns the value of the last SEX child, or "" if none.
func (i *Individual) GetGender() string {
	var gender string
	for _, c := range i.ChildrenWithTag(tags.Sex) {
		gender = c.Value()
	}
	return gender
}

// dataForDateBearingTag overlays an EventData triple across every
// direct child of i carrying tag: DATE and PLAC grandchildren overwrite
// the running value, SOUR grandchildren append.
func (i *Individual) dataForDateBearingTag(tag string) EventData {
	var data EventData
	for _, child := range i.ChildrenWithTag(tag) {
		for _, sub := range child.Children() {
			switch sub.Tag() {
			case tags.Date:
				data.Date = sub.Value()
			case tags.Place:
				data.Place = sub.Value()
			case tags.Source:
				data.Sources = append(data.Sources, sub.Value())
			}
		}
	}
	return data
}

// GetBirthData returns the overlaid (date, place, sources) across every
// BIRT child.
func (i *Individual) GetBirthData() EventData { return i.dataForDateBearingTag(tags.Birth) }

// GetDeathData returns the overlaid (date, place, sources) across every
// DEAT child.
func (i *Individual) GetDeathData() EventData { return i.dataForDateBearingTag(tags.Death) }

// GetBurialData returns the overlaid (date, place, sources) across
// every BURI child.
func (i *Individual) GetBurialData() EventData { return i.dataForDateBearingTag(tags.Burial) }

// GetCensusData returns one EventData per CENS child, unmerged.
func (i *Individual) GetCensusData() []EventData {
	var out []EventData
	for _, child := range i.ChildrenWithTag(tags.Census) {
		var data EventData
		for _, sub := range child.Children() {
			switch sub.Tag() {
			case tags.Date:
				data.Date = sub.Value()
			case tags.Place:
				data.Place = sub.Value()
			case tags.Source:
				data.Sources = append(data.Sources, sub.Value())
			}
		}
		out = append(out, data)
	}
	return out
}

// getYearInEventKind returns get_year_in_date of the last direct child
// whose kind is both an event-detail variant and equal to want (e.g.
// KindBirth). The last match wins, matching the original scan order.
func (i *Individual) getYearInEventKind(want tags.Kind) int {
	year := -1
	for _, child := range i.Children() {
		if tags.IsEventDetail(child.Kind()) && child.Kind() == want {
			year = child.GetYearInDate()
		}
	}
	return year
}

// GetBirthYear returns get_year_in_date() of the last BIRT child, or -1
// if there is none.
func (i *Individual) GetBirthYear() int { return i.getYearInEventKind(tags.KindBirth) }

// GetDeathYear returns get_year_in_date() of the last DEAT child, or -1
// if there is none.
func (i *Individual) GetDeathYear() int { return i.getYearInEventKind(tags.KindDeath) }

// GetOccupation returns the value of the last OCCU child, or "".
func (i *Individual) GetOccupation() string {
	var occupation string
	for _, c := range i.ChildrenWithTag(tags.Occu) {
		occupation = c.Value()
	}
	return occupation
}

// GetLastChangeDate returns the DATE grandchild's value under the last
// CHAN child, or "".
func (i *Individual) GetLastChangeDate() string {
	var date string
	for _, chan_ := range i.ChildrenWithTag(tags.Change) {
		if d := chan_.FirstChildWithTag(tags.Date); d != nil {
			date = d.Value()
		}
	}
	return date
}

// BirthYearMatch reports whether this individual's birth year equals
// year.
func (i *Individual) BirthYearMatch(year int) bool { return i.GetBirthYear() == year }

// BirthRangeMatch reports whether this individual's birth year falls
// within [from, to].
func (i *Individual) BirthRangeMatch(from, to int) bool {
	y := i.GetBirthYear()
	return from <= y && y <= to
}

// DeathYearMatch reports whether this individual's death year equals
// year.
func (i *Individual) DeathYearMatch(year int) bool { return i.GetDeathYear() == year }

// DeathRangeMatch reports whether this individual's death year falls
// within [from, to].
func (i *Individual) DeathRangeMatch(from, to int) bool {
	y := i.GetDeathYear()
	return from <= y && y <= to
}

// CriteriaMatch parses query as a ':'-joined list of key=value pairs
// (surname, name, birth, death, birth_range, death_range) and reports
// whether this individual satisfies all of them. A pair lacking '=', or
// any sub-match that fails to parse or fails to match, makes the whole
// query fail. Unknown keys are ignored.
func (i *Individual) CriteriaMatch(query string) bool {
	criteria := strings.Split(query, ":")
	for _, c := range criteria {
		if !strings.Contains(c, "=") {
			return false
		}
	}

	match := true
	for _, c := range criteria {
		parts := strings.SplitN(c, "=", 2)
		key, value := parts[0], parts[1]

		switch key {
		case "surname":
			if ok, err := i.SurnameMatch(value); err != nil || !ok {
				match = false
			}
		case "name":
			if ok, err := i.GivenNameMatch(value); err != nil || !ok {
				match = false
			}
		case "birth":
			year, err := strconv.Atoi(value)
			if err != nil || !i.BirthYearMatch(year) {
				match = false
			}
		case "birth_range":
			from, to, err := splitYearRange(value)
			if err != nil || !i.BirthRangeMatch(from, to) {
				match = false
			}
		case "death":
			year, err := strconv.Atoi(value)
			if err != nil || !i.DeathYearMatch(year) {
				match = false
			}
		case "death_range":
			from, to, err := splitYearRange(value)
			if err != nil || !i.DeathRangeMatch(from, to) {
				match = false
			}
		}
	}
	return match
}

func splitYearRange(value string) (from, to int, err error) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	from, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	to, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
