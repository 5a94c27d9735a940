package arxivql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ArticleID is a parsed arXiv article identifier, covering both the legacy
// "archive[.subject]/YYMMNNN" form (used through 2007-03) and the modern
// "YYMM.NNNNN" form. Built once by ParseArticleID and immutable thereafter.
//
// The format variants are documented at
// https://info.arxiv.org/help/arxiv_identifier.html.
type ArticleID struct {
	// Prefix is the literal text before ':' in the input, usually "arXiv".
	// Empty when the input had no prefix.
	Prefix string

	// Archive is the archive segment of a legacy identifier ("quant-ph" in
	// "quant-ph/0201082"). Empty for modern identifiers.
	Archive string

	// Subject is the legacy subject class ("GT" in "math.GT/0309136").
	// Current metadata snapshots refer to that article as "math/0309136",
	// but parsed input may still carry the subject segment.
	Subject string

	Year   int
	Month  int
	Number int

	// Version is the numeric version suffix; 0 when the identifier carries
	// no version.
	Version int
}

var (
	// Lazy base group so a trailing v<digits> lands in the version group
	// instead of being folded into the identifier.
	articleIDRe = regexp.MustCompile(`^(.+?)(?:v([0-9]+))?$`)

	modernIDRe = regexp.MustCompile(`^([0-9]{4})\.([0-9]{4,5})$`)
	legacyIDRe = regexp.MustCompile(`^([\w.-]+)/([0-9]{7})$`)
)

// ParseArticleID parses an arXiv identifier in either format, with optional
// surrounding whitespace, "arXiv:" prefix, and "vN" version suffix. Input
// matching neither format fails with ErrMalformedIdentifier. Whether a
// parsed version actually exists upstream is not checked here.
func ParseArticleID(raw string) (ArticleID, error) {
	s := strings.TrimSpace(raw)

	prefix := ""
	if i := strings.Index(s, ":"); i >= 0 {
		prefix = s[:i]
		s = strings.TrimSpace(s[i+1:])
	}

	m := articleIDRe.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return ArticleID{}, malformedIDf("invalid arXiv identifier: %q", raw)
	}
	base := m[1]

	version := 0
	if m[2] != "" {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			return ArticleID{}, malformedIDf("invalid version in arXiv identifier: %q", raw)
		}
		version = v
	}

	id := ArticleID{Prefix: prefix, Version: version}
	var err error
	if strings.Contains(base, "/") {
		err = id.parseLegacy(base)
	} else {
		err = id.parseModern(base)
	}
	if err != nil {
		return ArticleID{}, err
	}
	return id, nil
}

// MustParseArticleID is like ParseArticleID but panics on error.
func MustParseArticleID(raw string) ArticleID {
	id, err := ParseArticleID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (a *ArticleID) parseModern(base string) error {
	m := modernIDRe.FindStringSubmatch(base)
	if m == nil {
		return malformedIDf("invalid new-style arXiv identifier: %q", base)
	}
	yy, _ := strconv.Atoi(m[1][:2])
	mm, _ := strconv.Atoi(m[1][2:4])
	if mm < 1 || mm > 12 {
		return malformedIDf("invalid month in arXiv identifier: %q", base)
	}
	a.Year = 2000 + yy
	a.Month = mm
	a.Number, _ = strconv.Atoi(m[2])
	return nil
}

func (a *ArticleID) parseLegacy(base string) error {
	m := legacyIDRe.FindStringSubmatch(base)
	if m == nil {
		return malformedIDf("invalid legacy arXiv identifier: %q", base)
	}
	numeric := m[2]
	yy, _ := strconv.Atoi(numeric[:2])
	mm, _ := strconv.Atoi(numeric[2:4])
	if mm < 1 || mm > 12 {
		return malformedIDf("invalid month in arXiv identifier: %q", base)
	}
	// Legacy numbering started in 1991 and ended 2007-03, so two-digit
	// years from 90 up are 19xx.
	if yy >= 90 {
		a.Year = 1900 + yy
	} else {
		a.Year = 2000 + yy
	}
	a.Month = mm
	a.Number, _ = strconv.Atoi(numeric[4:])

	category := m[1]
	if i := strings.Index(category, "."); i >= 0 {
		a.Archive = category[:i]
		a.Subject = category[i+1:]
	} else {
		a.Archive = category
	}
	return nil
}

// BaseID reconstructs the identifier without prefix and version,
// format-preserving: legacy ids keep their archive[.subject] segment and
// 3-digit sequence padding; modern ids use the 5-digit sequence width from
// 2015-01 onward and 4 digits before, matching the external numbering
// convention.
func (a ArticleID) BaseID() string {
	if a.Archive != "" {
		category := a.Archive
		if a.Subject != "" {
			category = a.Archive + "." + a.Subject
		}
		return fmt.Sprintf("%s/%02d%02d%03d", category, a.Year%100, a.Month, a.Number)
	}
	width := 4
	if a.Year >= 2015 {
		width = 5
	}
	return fmt.Sprintf("%02d%02d.%0*d", a.Year%100, a.Month, width, a.Number)
}

// ID reconstructs the full canonical identifier, including the prefix and
// version when present.
func (a ArticleID) ID() string {
	var b strings.Builder
	if a.Prefix != "" {
		b.WriteString(a.Prefix)
		b.WriteByte(':')
	}
	b.WriteString(a.BaseID())
	if a.Version > 0 {
		fmt.Fprintf(&b, "v%d", a.Version)
	}
	return b.String()
}

// String returns the canonical identifier.
func (a ArticleID) String() string { return a.ID() }
