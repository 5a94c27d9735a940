package arxivql

// Combinators build binary nodes from operands. An operand is a Query, a
// raw string fragment, or (on the right side of And only) a Negation. All
// grammar restrictions are enforced here, at construction time, so a
// malformed tree can never be built.

// TryAnd combines two operands with AND. A Negation on the right turns the
// combination into ANDNOT; a Negation on the left is a standalone negation
// and fails with ErrUnsupportedOperation.
func TryAnd(left, right any) (Query, error) {
	l, err := operandQuery(left)
	if err != nil {
		return Query{}, err
	}
	if n, ok := right.(Negation); ok {
		if n.query.node == nil {
			return Query{}, invalidQueryf("negated operand is a zero Query")
		}
		return Query{node: binaryNode{op: OpAndNot, left: l.node, right: n.query.node}}, nil
	}
	r, err := operandQuery(right)
	if err != nil {
		return Query{}, err
	}
	return Query{node: binaryNode{op: OpAnd, left: l.node, right: r.node}}, nil
}

// And is like TryAnd but panics on error.
func And(left, right any) Query {
	return mustQuery(TryAnd(left, right))
}

// TryOr combines two operands with OR. The grammar has no OR-NOT form, so a
// Negation on either side fails with ErrUnsupportedOperation.
func TryOr(left, right any) (Query, error) {
	if _, ok := right.(Negation); ok {
		return Query{}, unsupportedf("the arXiv grammar has no ORNOT operator")
	}
	l, err := operandQuery(left)
	if err != nil {
		return Query{}, err
	}
	r, err := operandQuery(right)
	if err != nil {
		return Query{}, err
	}
	return Query{node: binaryNode{op: OpOr, left: l.node, right: r.node}}, nil
}

// Or is like TryOr but panics on error.
func Or(left, right any) Query {
	return mustQuery(TryOr(left, right))
}

// TryAndNot combines two operands with ANDNOT: results matching the right
// operand are excluded. Both operands must be plain (non-negated); ANDNOT
// of two built nodes always succeeds.
func TryAndNot(left, right any) (Query, error) {
	l, err := operandQuery(left)
	if err != nil {
		return Query{}, err
	}
	r, err := operandQuery(right)
	if err != nil {
		return Query{}, err
	}
	return Query{node: binaryNode{op: OpAndNot, left: l.node, right: r.node}}, nil
}

// AndNot is like TryAndNot but panics on error.
func AndNot(left, right any) Query {
	return mustQuery(TryAndNot(left, right))
}

// And combines q with another operand using AND; sugar over TryAnd that
// panics on error.
func (q Query) And(other any) Query {
	return mustQuery(TryAnd(q, other))
}

// Or combines q with another operand using OR; sugar over TryOr that panics
// on error.
func (q Query) Or(other any) Query {
	return mustQuery(TryOr(q, other))
}

// AndNot combines q with another operand using ANDNOT; sugar over TryAndNot
// that panics on error.
func (q Query) AndNot(other any) Query {
	return mustQuery(TryAndNot(q, other))
}

// operandQuery coerces a combinator operand into a Query.
func operandQuery(v any) (Query, error) {
	switch x := v.(type) {
	case Query:
		if x.node == nil {
			return Query{}, invalidQueryf("operand is a zero Query")
		}
		return x, nil
	case Negation:
		return Query{}, unsupportedf("the arXiv grammar has no standalone negation operator, only the binary ANDNOT")
	case string:
		return TryRaw(x)
	default:
		return Query{}, invalidQueryf("operand must be a Query, Negation, or string, got %T", v)
	}
}

func mustQuery(q Query, err error) Query {
	if err != nil {
		panic(err)
	}
	return q
}
