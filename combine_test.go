package arxivql

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryCombinators(t *testing.T) {
	a1 := Author("Ilya Sutskever")
	a2 := Author(AllOf{"Geoffrey", "Hinton"})
	c1 := Category("cs.NE")
	c2 := Category("cs.CL")

	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "and",
			query: And(a1, a2),
			want:  `(au:"Ilya Sutskever" AND au:(Geoffrey AND Hinton))`,
		},
		{
			name:  "and chain",
			query: And(a1, a2).And(c1),
			want:  `((au:"Ilya Sutskever" AND au:(Geoffrey AND Hinton)) AND cat:cs.NE)`,
		},
		{
			name:  "or",
			query: Or(c1, c2),
			want:  "(cat:cs.NE OR cat:cs.CL)",
		},
		{
			name:  "mixed and or",
			query: And(Or(a1, a2), Or(c1, c2)),
			want:  `((au:"Ilya Sutskever" OR au:(Geoffrey AND Hinton)) AND (cat:cs.NE OR cat:cs.CL))`,
		},
		{
			name:  "andnot",
			query: AndNot(a1, a2),
			want:  `(au:"Ilya Sutskever" ANDNOT au:(Geoffrey AND Hinton))`,
		},
		{
			name:  "and with negated right operand",
			query: And(a1, Not(a2)),
			want:  `(au:"Ilya Sutskever" ANDNOT au:(Geoffrey AND Hinton))`,
		},
		{
			name:  "complex query with andnot",
			query: And(a1, Title("autoencoders")).And(Not(Category("cs.AI"))),
			want:  `((au:"Ilya Sutskever" AND ti:autoencoders) ANDNOT cat:cs.AI)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.String())
		})
	}
}

func TestRawStringOperands(t *testing.T) {
	t.Run("right side", func(t *testing.T) {
		q := And(Category("cs.AI"), "machine learning")
		assert.Equal(t, "(cat:cs.AI AND (machine learning))", q.String())
	})

	t.Run("left side", func(t *testing.T) {
		q := And("neural networks", Category("cs.NE"))
		assert.Equal(t, "((neural networks) AND cat:cs.NE)", q.String())
	})

	t.Run("or with string", func(t *testing.T) {
		q := Or(Category("cs.AI"), "all:transformers")
		assert.Equal(t, "(cat:cs.AI OR (all:transformers))", q.String())
	})

	t.Run("empty string rejected", func(t *testing.T) {
		_, err := TryAnd(Category("cs.AI"), "   ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})
}

func TestNegationRestrictions(t *testing.T) {
	a1 := Author("Author1")
	a2 := Author("Author2")

	t.Run("negation on left of and is standalone", func(t *testing.T) {
		_, err := TryAnd(Not(a1), a2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOperation))
	})

	t.Run("or with negated right operand", func(t *testing.T) {
		_, err := TryOr(a1, Not(a2))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOperation))
	})

	t.Run("or with negated left operand", func(t *testing.T) {
		_, err := TryOr(Not(a1), a2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOperation))
	})

	t.Run("andnot of two plain nodes always succeeds", func(t *testing.T) {
		q, err := TryAndNot(a1, a2)
		require.NoError(t, err)
		assert.Equal(t, "(au:Author1 ANDNOT au:Author2)", q.String())
	})

	t.Run("panic sugar mirrors errors", func(t *testing.T) {
		assert.Panics(t, func() { Or(a1, Not(a2)) })
		assert.Panics(t, func() { And(Not(a1), a2) })
	})
}

func TestOperandValidation(t *testing.T) {
	t.Run("zero query rejected", func(t *testing.T) {
		_, err := TryAnd(Query{}, Author("x"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})

	t.Run("zero query in negation rejected", func(t *testing.T) {
		_, err := TryAnd(Author("x"), Not(Query{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})

	t.Run("unsupported operand type rejected", func(t *testing.T) {
		_, err := TryOr(Author("x"), 7)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})
}

func TestRenderIsDeterministic(t *testing.T) {
	q := And(Author("Tao"), Or(Category("math.NT"), Category("math.CO")))
	first := Render(q)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Render(q))
	}
	assert.Equal(t, first, q.String())
}

func TestRenderZeroQuery(t *testing.T) {
	assert.Equal(t, "", Render(Query{}))
}
