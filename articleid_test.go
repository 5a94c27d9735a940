package arxivql

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModernIdentifier(t *testing.T) {
	t.Run("with prefix and version", func(t *testing.T) {
		id, err := ParseArticleID("   arXiv:1805.12345v2 ")
		require.NoError(t, err)
		assert.Equal(t, "arXiv", id.Prefix)
		assert.Equal(t, "", id.Archive)
		assert.Equal(t, "", id.Subject)
		assert.Equal(t, 2018, id.Year)
		assert.Equal(t, 5, id.Month)
		assert.Equal(t, 12345, id.Number)
		assert.Equal(t, 2, id.Version)
		assert.Equal(t, "1805.12345", id.BaseID())
		assert.Equal(t, "arXiv:1805.12345v2", id.ID())
	})

	t.Run("bare", func(t *testing.T) {
		id, err := ParseArticleID("1805.12345")
		require.NoError(t, err)
		assert.Equal(t, "", id.Prefix)
		assert.Equal(t, 2018, id.Year)
		assert.Equal(t, 5, id.Month)
		assert.Equal(t, 12345, id.Number)
		assert.Equal(t, 0, id.Version)
		assert.Equal(t, "1805.12345", id.ID())
	})
}

func TestParseLegacyIdentifier(t *testing.T) {
	t.Run("with prefix and version", func(t *testing.T) {
		id, err := ParseArticleID("arXiv:quant-ph/0201082v1")
		require.NoError(t, err)
		assert.Equal(t, "arXiv", id.Prefix)
		assert.Equal(t, "quant-ph", id.Archive)
		assert.Equal(t, "", id.Subject)
		assert.Equal(t, 2002, id.Year)
		assert.Equal(t, 1, id.Month)
		assert.Equal(t, 82, id.Number)
		assert.Equal(t, 1, id.Version)
		assert.Equal(t, "quant-ph/0201082", id.BaseID())
		assert.Equal(t, "arXiv:quant-ph/0201082v1", id.ID())
	})

	t.Run("bare", func(t *testing.T) {
		id, err := ParseArticleID("quant-ph/0201082")
		require.NoError(t, err)
		assert.Equal(t, "", id.Prefix)
		assert.Equal(t, "quant-ph", id.Archive)
		assert.Equal(t, 2002, id.Year)
		assert.Equal(t, 1, id.Month)
		assert.Equal(t, 82, id.Number)
		assert.Equal(t, 0, id.Version)
		assert.Equal(t, "quant-ph/0201082", id.ID())
	})

	t.Run("subject class preserved", func(t *testing.T) {
		id, err := ParseArticleID("math.GT/0309136")
		require.NoError(t, err)
		assert.Equal(t, "math", id.Archive)
		assert.Equal(t, "GT", id.Subject)
		assert.Equal(t, 2003, id.Year)
		assert.Equal(t, 9, id.Month)
		assert.Equal(t, 136, id.Number)
	})

	t.Run("nineties epoch", func(t *testing.T) {
		id, err := ParseArticleID("cmp-lg/9404001")
		require.NoError(t, err)
		assert.Equal(t, 1994, id.Year)
		assert.Equal(t, 4, id.Month)
		assert.Equal(t, 1, id.Number)
	})
}

// Reconstruction must be format-preserving: the canonical id of a parsed
// identifier is byte-identical to its normalized input.
func TestReconstruction(t *testing.T) {
	ids := []string{
		// Modern format with 5-digit sequences (2015 onward).
		"1805.12345",
		"1805.12345v1",
		"1805.12345v2",
		"arXiv:1805.12345",
		"arXiv:1805.12345v2",
		// Last 4-digit sequences (through 2014-12).
		"1412.8770",
		"1412.8770v1",
		"arXiv:1412.8770",
		"arXiv:1412.8770v1",
		// Legacy format with a subject class.
		"math.GT/0309136",
		"math.GT/0309136v1",
		"arXiv:math.GT/0309136",
		"arXiv:math.GT/0309136v1",
		// Assorted legacy archives.
		"cmp-lg/9404001",
		"cs/0411052",
		"q-bio/0703067",
		"quant-ph/0201082v1",
		"physics/9403001v1",
	}

	for _, raw := range ids {
		t.Run(raw, func(t *testing.T) {
			id, err := ParseArticleID(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, id.ID())
		})
	}
}

func TestSequenceWidthByYear(t *testing.T) {
	// 2014 and earlier zero-pad to 4 digits, 2015 onward to 5.
	id, err := ParseArticleID("1412.0001")
	require.NoError(t, err)
	assert.Equal(t, "1412.0001", id.ID())

	id, err = ParseArticleID("1501.00001")
	require.NoError(t, err)
	assert.Equal(t, "1501.00001", id.ID())
}

func TestMalformedIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"random text", "not an id"},
		{"modern with bad month", "1813.12345"},
		{"legacy with bad month", "quant-ph/0213082"},
		{"modern sequence too short", "1805.123"},
		{"modern sequence too long", "1805.123456"},
		{"legacy sequence wrong width", "quant-ph/02010823"},
		{"slash without numeric part", "quant-ph/"},
		{"version only", "v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArticleID(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedIdentifier))
		})
	}

	t.Run("must form panics", func(t *testing.T) {
		assert.Panics(t, func() { MustParseArticleID("nope nope") })
	})
}
