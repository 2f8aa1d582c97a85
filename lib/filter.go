package lib

import (
	"strings"
)

// Filter returns the records matching a free-text query, preserving order.
// An empty query returns the input untouched. Otherwise a record matches
// when the lowercased query is a substring of its person name, its label
// (missing labels match as if empty), its amount's decimal string form, or
// its mode name. Plain substring matching only; the fuzzy matcher used for
// autocompletion is deliberately not used here so that results are
// predictable.
func Filter(rs RecordSet, query string) RecordSet {
	if query == "" {
		return rs
	}

	q := strings.ToLower(query)
	out := RecordSet{}

	for i := range rs {
		if recordMatches(&rs[i], q) {
			out = append(out, rs[i])
		}
	}

	return out
}

func recordMatches(r *PaymentRecord, q string) bool {
	if strings.Contains(strings.ToLower(r.Person), q) {
		return true
	}

	if strings.Contains(strings.ToLower(r.LabelText()), q) {
		return true
	}

	if strings.Contains(r.Amount.String(), q) {
		return true
	}

	return strings.Contains(strings.ToLower(r.Mode), q)
}
