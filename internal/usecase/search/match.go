package search

import (
	"strings"

	"github.com/fitlocal/classdex/internal/domain/search/result"
)

// textMatches is a case-insensitive literal substring test against the
// item's derived title and subtitle. An empty query matches everything.
// No tokenization or fuzzy scoring: a coarse, deterministic filter.
func textMatches(query string, it result.Item) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(it.Title()), q) ||
		strings.Contains(strings.ToLower(it.Subtitle()), q)
}
