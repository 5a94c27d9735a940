package arxivql

import "strings"

// Operator is a boolean combinator of the arXiv search grammar.
type Operator string

const (
	OpAnd    Operator = "AND"
	OpOr     Operator = "OR"
	OpAndNot Operator = "ANDNOT"
)

// Query is an immutable arXiv search expression. The zero value is not a
// valid expression: build leaves with the field factories (Title, Author,
// Category, ...) and combine them with And, Or, and AndNot. Combinators
// always return new values; a built Query is never mutated.
type Query struct {
	node node
}

// node is the tagged variant behind Query: a field term, a binary
// combination, or a raw fragment.
type node interface {
	write(b *strings.Builder)
}

// termNode is a single field-scoped value. The value is stored fully
// rendered (validated, quoted, grouped) so writing it cannot fail.
type termNode struct {
	field Field
	value string
}

func (n termNode) write(b *strings.Builder) {
	b.WriteString(string(n.field))
	b.WriteByte(':')
	b.WriteString(n.value)
}

// binaryNode combines two operands with AND, OR, or ANDNOT. Construction
// goes through the combinators, which reject the shapes the grammar cannot
// express, so a binaryNode never holds a standalone or OR'd negation.
type binaryNode struct {
	op    Operator
	left  node
	right node
}

func (n binaryNode) write(b *strings.Builder) {
	b.WriteByte('(')
	n.left.write(b)
	b.WriteByte(' ')
	b.WriteString(string(n.op))
	b.WriteByte(' ')
	n.right.write(b)
	b.WriteByte(')')
}

// rawNode is an opaque pre-validated fragment, parenthesized so it combines
// safely with typed nodes.
type rawNode struct {
	text string
}

func (n rawNode) write(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.text)
	b.WriteByte(')')
}

// TryRaw wraps a pre-validated query fragment for combination with typed
// nodes. The fragment is parenthesized when rendered and never interpreted
// as a field term.
func TryRaw(fragment string) (Query, error) {
	if strings.TrimSpace(fragment) == "" {
		return Query{}, invalidQueryf("raw fragment is empty")
	}
	return Query{node: rawNode{text: fragment}}, nil
}

// Raw is like TryRaw but panics on an invalid fragment.
func Raw(fragment string) Query {
	q, err := TryRaw(fragment)
	if err != nil {
		panic(err)
	}
	return q
}

// Negation marks a query for exclusion. It is deliberately not a Query: the
// grammar has no standalone NOT, only the binary ANDNOT form, so a Negation
// is usable solely as the right operand of And (or through AndNot). Every
// other position fails with ErrUnsupportedOperation.
type Negation struct {
	query Query
}

// Not marks q for exclusion via ANDNOT.
func Not(q Query) Negation {
	return Negation{query: q}
}

// String renders the expression. See Render.
func (q Query) String() string {
	return Render(q)
}
