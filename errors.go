package arxivql

import (
	"github.com/cockroachdb/errors"

	"github.com/zoobzio/arxivql/taxonomy"
)

// Error taxonomy. Every failure is raised at construction or parse time and
// carries exactly one of these sentinels; check with errors.Is. Render never
// fails on a tree that was successfully built.
var (
	// ErrInvalidQuery marks structurally disallowed field values: forbidden
	// characters, unquotable multi-word values, empty terms, or a value of
	// an unsupported type.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnsupportedOperation marks constructions the arXiv grammar cannot
	// express: a standalone negation and OR with a negated operand. Only
	// the binary ANDNOT form exists.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUnknownCategory marks a taxonomy catalog lookup miss.
	ErrUnknownCategory = taxonomy.ErrUnknownCategory

	// ErrMalformedIdentifier marks an article identifier string that
	// matches neither the legacy nor the modern format.
	ErrMalformedIdentifier = errors.New("malformed identifier")
)

func invalidQueryf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidQuery)
}

func unsupportedf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnsupportedOperation)
}

func malformedIDf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrMalformedIdentifier)
}
