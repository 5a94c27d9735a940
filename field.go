package arxivql

import "strings"

// Field is a search dimension tag: the short prefix the grammar puts before
// ':' in a term.
//
// Available prefixes per the arXiv API user manual
// (https://info.arxiv.org/help/api/user-manual.html#query_details):
//
//	ti             Title
//	au             Author
//	abs            Abstract
//	co             Comment
//	jr             Journal Reference
//	cat            Subject Category
//	rn             Report Number
//	id             Id (use the API's id_list parameter instead)
//	all            All of the above
//	submittedDate  Submission date range
type Field string

const (
	FieldTitle     Field = "ti"
	FieldAuthor    Field = "au"
	FieldAbstract  Field = "abs"
	FieldComment   Field = "co"
	FieldJournal   Field = "jr"
	FieldCategory  Field = "cat"
	FieldReport    Field = "rn"
	FieldID        Field = "id"
	FieldAll       Field = "all"
	FieldSubmitted Field = "submittedDate"
)

// TryField builds a term for an arbitrary field. The value is a scalar, an
// AnyOf, or an AllOf; quote controls whether multi-word scalars are
// phrase-quoted or rejected.
func TryField(f Field, value any, quote bool) (Query, error) {
	switch v := value.(type) {
	case AnyOf:
		terms, err := scalarTerms(f, v, quote)
		if err != nil {
			return Query{}, err
		}
		return groupTerm(f, terms, " "), nil
	case AllOf:
		terms, err := scalarTerms(f, v, quote)
		if err != nil {
			return Query{}, err
		}
		return groupTerm(f, terms, " AND "), nil
	default:
		t, err := scalarTerm(f, v, quote)
		if err != nil {
			return Query{}, err
		}
		return Query{node: termNode{field: f, value: t}}, nil
	}
}

// groupTerm renders a sequence as a parenthesized group. A one-element
// sequence is unambiguous without grouping and renders as the bare term.
func groupTerm(f Field, terms []string, sep string) Query {
	if len(terms) == 1 {
		return Query{node: termNode{field: f, value: terms[0]}}
	}
	return Query{node: termNode{field: f, value: "(" + strings.Join(terms, sep) + ")"}}
}

// TryTitle builds a title term.
func TryTitle(value any) (Query, error) { return TryField(FieldTitle, value, true) }

// Title is like TryTitle but panics on error.
func Title(value any) Query { return mustQuery(TryTitle(value)) }

// TryAuthor builds an author term.
func TryAuthor(value any) (Query, error) { return TryField(FieldAuthor, value, true) }

// Author is like TryAuthor but panics on error.
func Author(value any) Query { return mustQuery(TryAuthor(value)) }

// TryAbstract builds an abstract term.
func TryAbstract(value any) (Query, error) { return TryField(FieldAbstract, value, true) }

// Abstract is like TryAbstract but panics on error.
func Abstract(value any) Query { return mustQuery(TryAbstract(value)) }

// TryComment builds a comment term.
func TryComment(value any) (Query, error) { return TryField(FieldComment, value, true) }

// Comment is like TryComment but panics on error.
func Comment(value any) Query { return mustQuery(TryComment(value)) }

// TryJournal builds a journal reference term.
func TryJournal(value any) (Query, error) { return TryField(FieldJournal, value, true) }

// Journal is like TryJournal but panics on error.
func Journal(value any) Query { return mustQuery(TryJournal(value)) }

// TryReport builds a report number term.
func TryReport(value any) (Query, error) { return TryField(FieldReport, value, true) }

// Report is like TryReport but panics on error.
func Report(value any) Query { return mustQuery(TryReport(value)) }

// TryCategory builds a subject category term. Values may be
// taxonomy.Category, taxonomy.Archive (rendered as the archive wildcard),
// or raw strings for ad hoc patterns like "cs.?I". Quoted category phrases
// are meaningless in the grammar, so multi-word values fail with
// ErrInvalidQuery instead of being quoted.
func TryCategory(value any) (Query, error) { return TryField(FieldCategory, value, false) }

// Category is like TryCategory but panics on error.
func Category(value any) Query { return mustQuery(TryCategory(value)) }

// TryAll builds a term matching across every text field.
func TryAll(value any) (Query, error) { return TryField(FieldAll, value, true) }

// All is like TryAll but panics on error.
func All(value any) Query { return mustQuery(TryAll(value)) }

// TryID builds an id term.
//
// Deprecated: the id prefix is deprecated upstream; pass identifiers via the
// API's id_list request parameter instead.
func TryID(value any) (Query, error) { return TryField(FieldID, value, true) }

// ID is like TryID but panics on error.
//
// Deprecated: the id prefix is deprecated upstream; pass identifiers via the
// API's id_list request parameter instead.
func ID(value any) Query { return mustQuery(TryID(value)) }
