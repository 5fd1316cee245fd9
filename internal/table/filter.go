package table

import "strings"

// Filter keeps the rows where any field contains term, ignoring case.
// An empty term returns rows itself. Null fields never match.
func Filter(rows []Row, term string) []Row {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if rowMatches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func rowMatches(r Row, needle string) bool {
	for _, v := range r {
		if v.IsNull() {
			continue
		}
		if strings.Contains(strings.ToLower(v.Plain()), needle) {
			return true
		}
	}
	return false
}
