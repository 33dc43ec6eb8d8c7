package oto

import "sort"

// Entry is one sample registration in a Map: an alias, an optional color
// tag, and an optional inclusive tone range. A zero MinTone or MaxTone
// leaves that side of the range open.
type Entry struct {
	Alias   string `yaml:"alias"`
	Color   string `yaml:"color,omitempty"`
	MinTone int    `yaml:"min_tone,omitempty"`
	MaxTone int    `yaml:"max_tone,omitempty"`
}

// covers reports whether the entry's tone range includes tone.
func (e Entry) covers(tone int) bool {
	if e.MinTone != 0 && tone < e.MinTone {
		return false
	}
	if e.MaxTone != 0 && tone > e.MaxTone {
		return false
	}
	return true
}

// Map is an in-memory, alias-indexed sample dictionary.
// It is built once and read-only during resolution.
type Map struct {
	entries map[string][]Entry
	aliases []string // insertion order, for deterministic listing
}

// NewMap creates an empty sample dictionary.
func NewMap() *Map {
	return &Map{entries: make(map[string][]Entry)}
}

// Add registers a sample entry. Entries for the same alias keep their
// insertion order, which decides ties in Find.
func (m *Map) Add(e Entry) {
	if _, seen := m.entries[e.Alias]; !seen {
		m.aliases = append(m.aliases, e.Alias)
	}
	m.entries[e.Alias] = append(m.entries[e.Alias], e)
}

// Find returns the sample mapped to alias at the given tone. Among entries
// covering the tone, one whose color tag equals the requested color wins;
// otherwise the first covering entry is returned regardless of color.
func (m *Map) Find(alias string, tone int, color string) (Oto, bool) {
	entries := m.entries[alias]
	var fallback *Entry
	for i := range entries {
		e := &entries[i]
		if !e.covers(tone) {
			continue
		}
		if e.Color == color {
			return Oto{Alias: e.Alias, Color: e.Color}, true
		}
		if fallback == nil {
			fallback = e
		}
	}
	if fallback != nil {
		return Oto{Alias: fallback.Alias, Color: fallback.Color}, true
	}
	return Oto{}, false
}

// Len returns the number of registered entries.
func (m *Map) Len() int {
	n := 0
	for _, es := range m.entries {
		n += len(es)
	}
	return n
}

// Aliases returns all distinct aliases in insertion order.
func (m *Map) Aliases() []string {
	out := make([]string, len(m.aliases))
	copy(out, m.aliases)
	return out
}

// Colors returns all distinct color tags, sorted, excluding the empty tag.
func (m *Map) Colors() []string {
	seen := make(map[string]bool)
	for _, es := range m.entries {
		for _, e := range es {
			if e.Color != "" {
				seen[e.Color] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ToneRange returns the lowest MinTone and highest MaxTone among
// tone-bounded entries. ok is false when every entry covers all tones;
// lo or hi is 0 when that side is open on every bounded entry.
func (m *Map) ToneRange() (lo, hi int, ok bool) {
	for _, es := range m.entries {
		for _, e := range es {
			if e.MinTone == 0 && e.MaxTone == 0 {
				continue
			}
			ok = true
			if e.MinTone != 0 && (lo == 0 || e.MinTone < lo) {
				lo = e.MinTone
			}
			if e.MaxTone != 0 && e.MaxTone > hi {
				hi = e.MaxTone
			}
		}
	}
	return lo, hi, ok
}
