package arxivql

import (
	"regexp"
	"time"
)

// Open-ended range sentinels. The grammar needs both ends of a
// submittedDate range, so a missing bound is replaced by a timestamp
// before/after any real submission.
const (
	minTimestamp = "100001010000"
	maxTimestamp = "900001010000"
)

var timestampRe = regexp.MustCompile(`^[0-9]{4,14}$`)

// Layouts keyed by token length. The official format is YYYYMMDDhhmm, but
// the search engine also accepts truncated prefixes and tokens that include
// seconds (which it ignores).
var timestampLayouts = map[int]string{
	4:  "2006",
	6:  "200601",
	8:  "20060102",
	10: "2006010215",
	12: "200601021504",
	14: "20060102150405",
}

// TrySubmittedDate builds a submission date range filter,
// "submittedDate:[LOW TO HIGH]" (times in GMT).
//
// Each bound is a time.Time, a digit-only timestamp token of 4 to 14 even
// digits (truncated forms of YYYYMMDDhhmmss), or nil for an open-ended
// range. time.Time bounds are converted to UTC before formatting.
func TrySubmittedDate(start, end any) (Query, error) {
	lo, err := dateBound(start, minTimestamp)
	if err != nil {
		return Query{}, err
	}
	hi, err := dateBound(end, maxTimestamp)
	if err != nil {
		return Query{}, err
	}
	return Query{node: termNode{field: FieldSubmitted, value: "[" + lo + " TO " + hi + "]"}}, nil
}

// SubmittedDate is like TrySubmittedDate but panics on error.
func SubmittedDate(start, end any) Query {
	return mustQuery(TrySubmittedDate(start, end))
}

func dateBound(v any, sentinel string) (string, error) {
	switch t := v.(type) {
	case nil:
		return sentinel, nil
	case time.Time:
		return t.UTC().Format("200601021504"), nil
	case string:
		return validateTimestamp(t)
	default:
		return "", invalidQueryf("%s: bound must be a time.Time, string, or nil, got %T", FieldSubmitted, v)
	}
}

// validateTimestamp checks that a raw token is a digit string representing a
// real date/time prefix, and passes it through unchanged.
func validateTimestamp(s string) (string, error) {
	if !timestampRe.MatchString(s) {
		return "", invalidQueryf("%s: token must be a digit-only timestamp with 4 to 14 digits, got %q", FieldSubmitted, s)
	}
	layout, ok := timestampLayouts[len(s)]
	if !ok {
		return "", invalidQueryf("%s: timestamp token %q has an odd number of digits", FieldSubmitted, s)
	}
	if _, err := time.Parse(layout, s); err != nil {
		return "", invalidQueryf("%s: token %q is not a valid timestamp", FieldSubmitted, s)
	}
	return s, nil
}
