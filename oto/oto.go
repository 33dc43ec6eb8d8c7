// Package oto defines the sample-dictionary boundary used during lyric
// resolution: the Lookup capability the resolver probes, the Oto record a
// probe returns, and an in-memory Map implementation for hosts, tools, and
// tests. The singer library's own storage format is out of scope; Map is
// populated programmatically or from a YAML inventory.
package oto

// Oto is a named acoustic sample: the alias text the resolver selects,
// plus the sample's own voice-color tag (empty when uncolored).
type Oto struct {
	Alias string
	Color string
}

// Lookup is the capability a sample dictionary exposes to the resolver.
// Find is a case-sensitive exact-string probe: zero or one sample per
// (alias, tone, color) query. The color argument is a preference hint;
// the returned sample may carry a different color tag, and how a
// dictionary orders multiple internal matches for one alias is its own
// concern. Absence is the normal negative case, not an error.
type Lookup interface {
	Find(alias string, tone int, color string) (Oto, bool)
}
