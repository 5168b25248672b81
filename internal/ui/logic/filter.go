package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"codesearch/internal/domain"
)

// FilterProjects narrows a registry snapshot to the entries that fuzzy-match
// query, keeping registry order. The NoProject sentinel always stays listed
// so the user can clear the selection.
func FilterProjects(registry []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]string(nil), registry...)
	}

	out := make([]string, 0, len(registry))
	for _, id := range registry {
		if id == domain.NoProject || fuzzy.MatchNormalizedFold(query, id) {
			out = append(out, id)
		}
	}
	return out
}

// IndexOf returns the position of id in ids, or -1
func IndexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
