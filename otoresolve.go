// Package otoresolve maps Japanese kana lyrics to the sample aliases of a
// singer's voicebank. It builds prioritized candidate aliases per note
// (VCV context, hints, bare-vowel substitution), probes a sample
// dictionary, and picks the best match under a voice-color tie-break.
package otoresolve

import (
	"fmt"

	"github.com/ieee0824/otoresolve-go/oto"
	"github.com/ieee0824/otoresolve-go/resolver"
)

// Resolver is the top-level lyric-to-alias resolver, bound to one
// voicebank dictionary.
type Resolver struct {
	Bank oto.Lookup

	defaults *resolver.Attribute // applied to notes carrying no attributes
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaultAttributes sets voice attributes (color, tone shift,
// alternate tag) applied to any note that carries none of its own. A
// note's explicit index-0 attribute always wins.
func WithDefaultAttributes(attr resolver.Attribute) Option {
	return func(r *Resolver) {
		attr.Index = 0
		r.defaults = &attr
	}
}

// New creates a Resolver over an already-built sample dictionary.
func New(bank oto.Lookup, opts ...Option) *Resolver {
	r := &Resolver{Bank: bank}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromFile creates a Resolver from a YAML voicebank inventory file.
func NewFromFile(path string, opts ...Option) (*Resolver, error) {
	bank, err := oto.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load voicebank: %w", err)
	}
	return New(bank, opts...), nil
}

// Phonemize resolves a single note, with prev as its previous neighbour
// (nil when the note starts the phrase).
func (r *Resolver) Phonemize(note resolver.Note, prev *resolver.Note) resolver.Result {
	return resolver.Process(r.Bank, r.withDefaults(note), prev)
}

// PhonemizeSequence resolves a connected phrase, threading each note as
// its successor's previous neighbour. Rests are not modeled; callers
// split disconnected phrases into separate sequences.
func (r *Resolver) PhonemizeSequence(notes []resolver.Note) []resolver.Result {
	results := make([]resolver.Result, len(notes))
	for i := range notes {
		var prev *resolver.Note
		if i > 0 {
			prev = &notes[i-1]
		}
		results[i] = r.Phonemize(notes[i], prev)
	}
	return results
}

func (r *Resolver) withDefaults(note resolver.Note) resolver.Note {
	if r.defaults != nil && len(note.Attributes) == 0 {
		note.Attributes = []resolver.Attribute{*r.defaults}
	}
	return note
}
