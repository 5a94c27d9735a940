// Package arxivql builds syntactically valid arXiv search-query strings
// from composable, immutable expression trees.
//
// The package models the fielded boolean grammar of the arXiv search API:
// field-prefixed terms, AND/OR/ANDNOT combination, parenthesized scoping,
// phrase quoting, wildcards, and date-range filters. It never issues
// network calls; correctness means reproducing the external grammar's
// surface syntax exactly, quirks included.
//
// # Basic Usage
//
// Leaves come from field factories, trees from the combinators:
//
//	q := arxivql.And(
//		arxivql.Author("Ilya Sutskever"),
//		arxivql.Title("autoencoders"),
//	)
//	// q.String(): (au:"Ilya Sutskever" AND ti:autoencoders)
//
// Sequence values use the AnyOf (implicit OR) and AllOf (explicit AND)
// wrappers:
//
//	arxivql.Author(arxivql.AllOf{"Geoffrey", "Hinton"}) // au:(Geoffrey AND Hinton)
//	arxivql.Author(arxivql.AnyOf{"Geoffrey", "Hinton"}) // au:(Geoffrey Hinton)
//
// Exclusion uses the binary ANDNOT form, either directly or through Not on
// the right side of And; the grammar has no standalone negation:
//
//	arxivql.And(arxivql.Author("Tao"), arxivql.Not(arxivql.Category("math.NT")))
//	// (au:Tao ANDNOT cat:math.NT)
//
// Category terms accept values from the taxonomy subpackage, which models
// the full arXiv category catalog:
//
//	cs, _ := taxonomy.Default().Archive("cs")
//	arxivql.Category(cs) // cat:cs.*
//
// # Validation
//
// Every grammar restriction is checked when nodes are built, never at
// render time: each constructor has a TryX form returning an error marked
// with one of the package sentinels (ErrInvalidQuery,
// ErrUnsupportedOperation, ErrUnknownCategory, ErrMalformedIdentifier) and
// a panicking X form for values known to be well-formed. A Query that was
// successfully built always renders.
package arxivql
