package resolver

import (
	"github.com/ieee0824/otoresolve-go/internal/textutil"
	"github.com/ieee0824/otoresolve-go/kana"
	"github.com/ieee0824/otoresolve-go/oto"
)

// defaultCandidates is the neighbourless probe order: the utterance-initial
// dash form first, then the plain lyric.
func defaultCandidates(lyric string) []string {
	return []string{"- " + lyric, lyric}
}

// substituteBareVowel rewrites a bare-vowel lyric to its romanized form.
// The last cluster must carry a vowel class and appear in the substitute
// table itself, so plain CV syllables like な pass through untouched and
// only bare vowel glyphs (あ, ア, ぃ, ...) collapse to a, i, u, e, o, n.
func substituteBareVowel(lyric string) (string, bool) {
	last := textutil.Last(lyric)
	if _, ok := kana.VowelClass(last); !ok {
		return "", false
	}
	return kana.BareVowelSubstitute(last)
}

// buildCandidates computes the probe order for a lyric. The default
// candidates are probed mid-build: on a total miss the lyric falls back to
// its bare-vowel substitute before the neighbour context is applied. With
// a previous neighbour whose trailing vowel classifies as V, the VCV form
// "V lyric" leads, then the generic "* lyric", then the plain and dash
// forms. Returns the candidates and the (possibly substituted) lyric.
func buildCandidates(dict oto.Lookup, lyric string, prev *Note, tone, toneShift int, color, alternate string) ([]string, string) {
	cands := defaultCandidates(lyric)
	if _, ok := Resolve(dict, cands, tone, toneShift, color, alternate); !ok {
		if sub, ok := substituteBareVowel(lyric); ok {
			lyric = textutil.NFC(sub)
			cands = defaultCandidates(lyric)
		}
	}

	if prev != nil {
		if v, ok := kana.VowelClass(textutil.Last(prev.effectiveLyric())); ok {
			cands = []string{v + " " + lyric, "* " + lyric, lyric, "- " + lyric}
		}
	}
	return cands, lyric
}
