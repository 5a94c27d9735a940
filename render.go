package arxivql

import "strings"

// Render serializes a query tree to the arXiv search grammar. It is a pure
// function of the tree and deterministic; every grammar restriction is
// enforced when nodes are built, so any Query constructed by this package
// renders without error. A zero Query renders as the empty string.
func Render(q Query) string {
	if q.node == nil {
		return ""
	}
	var b strings.Builder
	q.node.write(&b)
	return b.String()
}
