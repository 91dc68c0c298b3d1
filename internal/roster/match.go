package roster

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// Match filters names down to those resembling query, keeping input order.
// A name matches when it contains the query (case-insensitive) or when its
// edit distance to the query is within a tolerance that grows with query length.
// An empty query matches everything.
func Match(names []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]string(nil), names...)
	}
	tol := tolerance(q)
	return lo.Filter(names, func(name string, _ int) bool {
		n := strings.ToLower(name)
		if strings.Contains(n, q) {
			return true
		}
		if tol == 0 {
			return false
		}
		return levenshtein.ComputeDistance(n, q) <= tol
	})
}

func tolerance(q string) int {
	switch n := len([]rune(q)); {
	case n < 3:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}
