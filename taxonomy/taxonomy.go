// Package taxonomy models the arXiv category taxonomy: a fixed hierarchy of
// Group → Archive → Category entities built once from an embedded table.
//
// The catalog is exhaustive over every category id that appears in the full
// arXiv metadata snapshot, including retired ("legacy") ids that are no
// longer open for submission but still tag historical articles. Lookups go
// through Default():
//
//	cat, err := taxonomy.Default().Category("astro-ph.HE")
//	cs, err := taxonomy.Default().Archive("cs")
//
// All entities are immutable after construction and safe to share across
// goroutines without locking.
package taxonomy

// Category is a single arXiv subject category.
//
// The id is the canonical string used by the search grammar: either
// "archive.SUFFIX" (e.g. "astro-ph.HE") or a bare archive id for
// single-category archives (e.g. "hep-th") and legacy general categories
// (e.g. "astro-ph"). Equality and ordering are by ID.
type Category struct {
	ID          string
	Name        string
	GroupName   string
	ArchiveID   string
	ArchiveName string
	Description string

	// Legacy is true for ids retired from primary use that still appear
	// on historical article metadata.
	Legacy bool
}

// String returns the category id, making Category usable directly as a
// query term value.
func (c Category) String() string { return c.ID }

// Archive is a named group of one or more categories sharing an archive id.
// An archive with exactly one member still behaves as a one-element
// collection.
type Archive struct {
	ID        string
	Name      string
	GroupName string

	categories []Category
	legacy     int // index of the bare-id legacy member, -1 when absent
}

// Categories returns the member categories in table order. The returned
// slice is shared and must not be modified.
func (a Archive) Categories() []Category { return a.categories }

// Len reports the number of member categories.
func (a Archive) Len() int { return len(a.categories) }

// LegacyCategory returns the distinguished legacy member whose id equals
// the archive's bare id, for the archives that retain one (astro-ph,
// cond-mat, q-bio).
func (a Archive) LegacyCategory() (Category, bool) {
	if a.legacy < 0 {
		return Category{}, false
	}
	return a.categories[a.legacy], true
}

// Wildcard returns the pattern that matches every category of the archive
// in the search grammar:
//
//	cs        → "cs.*"       (dotted subject classes only)
//	astro-ph  → "astro-ph*"  (dotted classes plus the bare legacy id)
//	hep-th    → "hep-th"     (single-category archive, the id is exact)
func (a Archive) Wildcard() string {
	if len(a.categories) == 1 && a.categories[0].ID == a.ID {
		return a.ID
	}
	if a.legacy >= 0 {
		return a.ID + "*"
	}
	return a.ID + ".*"
}

// String returns the archive's wildcard pattern, making Archive usable
// directly as a category term value.
func (a Archive) String() string { return a.Wildcard() }

// Group is a top-level subject group holding one or more archives.
type Group struct {
	Name string

	archives []Archive
}

// Archives returns the group's archives in table order. The returned slice
// is shared and must not be modified.
func (g Group) Archives() []Archive { return g.archives }
