package domain

import (
	"sort"
	"strings"
)

// PreferenceSet is an order-independent set of key/value trip options
// (dietary constraints, pace, and similar).
type PreferenceSet map[string]string

// Canonical returns a deterministic key-sorted encoding of the set, so that
// semantically identical preference sets always serialize identically
// regardless of construction order.
func (p PreferenceSet) Canonical() string {
	if len(p) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p[k])
	}
	return b.String()
}
