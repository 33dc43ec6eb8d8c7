package resolver

import (
	"github.com/ieee0824/otoresolve-go/internal/textutil"
	"github.com/ieee0824/otoresolve-go/oto"
)

// Resolve probes candidates in order against the sample inventory and
// returns the chosen sample. Each candidate is probed at the shifted
// pitch, with the alternate-tagged form tried before the plain one. All
// hits are collected so that a later candidate whose entry carries the
// exact requested color can win over an earlier plain hit; with no
// color-exact hit the earliest hit stands.
func Resolve(dict oto.Lookup, candidates []string, tone, toneShift int, color, alternate string) (oto.Oto, bool) {
	pitch := tone + toneShift

	var hits []oto.Oto
	for _, c := range candidates {
		if alternate != "" {
			if o, ok := dict.Find(c+alternate, pitch, color); ok {
				hits = append(hits, o)
				continue
			}
		}
		if o, ok := dict.Find(c, pitch, color); ok {
			hits = append(hits, o)
		}
	}
	if len(hits) == 0 {
		return oto.Oto{}, false
	}
	for _, h := range hits {
		if h.Color == color {
			return h, true
		}
	}
	return hits[0], true
}

// Process resolves one note against the inventory. The phonetic hint, if
// present, is probed verbatim first and short-circuits the whole chain on
// a hit; on a miss it replaces the lyric for the rest of resolution. The
// result always carries a usable alias: when nothing in the inventory
// matches, the (possibly substituted) lyric itself is returned so the
// caller still has something to render.
func Process(dict oto.Lookup, note Note, prev *Note) Result {
	attr := note.attr0()
	current := textutil.NFC(note.Lyric)

	if hint := textutil.NFC(note.PhoneticHint); hint != "" {
		if o, ok := Resolve(dict, []string{hint}, note.Tone, attr.ToneShift, attr.VoiceColor, attr.Alternate); ok {
			return Result{Alias: o.Alias, Oto: &o, Candidates: []string{hint}}
		}
		current = hint
	}

	cands, current := buildCandidates(dict, current, prev, note.Tone, attr.ToneShift, attr.VoiceColor, attr.Alternate)
	if o, ok := Resolve(dict, cands, note.Tone, attr.ToneShift, attr.VoiceColor, attr.Alternate); ok {
		return Result{Alias: o.Alias, Oto: &o, Candidates: cands}
	}
	return Result{Alias: current, Candidates: cands}
}
