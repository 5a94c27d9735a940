package arxivql

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zoobzio/arxivql/taxonomy"
)

// Field values come in three shapes: a single scalar, an AnyOf sequence, or
// an AllOf sequence. A scalar is a string, a taxonomy.Category, a
// taxonomy.Archive, or any fmt.Stringer.

// AnyOf lists alternatives for a field: members render space-separated
// inside parentheses, which the grammar treats as OR.
type AnyOf []any

// AllOf lists required values for a field: members render AND-joined inside
// parentheses.
type AllOf []any

// scalarTerm renders one scalar into its grammar form. Multi-word values are
// phrase-quoted when the field allows quoting and rejected otherwise.
// Literal double quotes and parentheses break the surrounding grammar and
// are always rejected; the wildcard characters * and ? pass through.
func scalarTerm(f Field, v any, quote bool) (string, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case taxonomy.Category:
		s = x.ID
	case taxonomy.Archive:
		s = x.Wildcard()
	case fmt.Stringer:
		s = x.String()
	default:
		return "", invalidQueryf("%s: value must be a string, Category, Archive, or Stringer, got %T", f, v)
	}
	if s == "" {
		return "", invalidQueryf("%s: value is empty", f)
	}
	if strings.ContainsAny(s, `"()`) {
		return "", invalidQueryf("%s: double quotes and parentheses are forbidden in field values: %q", f, s)
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		if !quote {
			return "", invalidQueryf("%s: unquotable multi-word value %q", f, s)
		}
		s = `"` + s + `"`
	}
	return s, nil
}

// scalarTerms renders every member of a sequence.
func scalarTerms(f Field, values []any, quote bool) ([]string, error) {
	if len(values) == 0 {
		return nil, invalidQueryf("%s: sequence value is empty", f)
	}
	terms := make([]string, 0, len(values))
	for _, v := range values {
		t, err := scalarTerm(f, v, quote)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}
