package resolver

import "github.com/ieee0824/otoresolve-go/oto"

// Result holds the outcome of resolving one note. Every note yields
// exactly one alias; on a total miss the alias is the (possibly
// hint- or substitution-mutated) lyric text itself.
type Result struct {
	Alias      string
	Oto        *oto.Oto // matched sample; nil when Alias is the literal fallback
	Candidates []string // candidate strings in the order they were probed
}

// Matched reports whether the alias came from the dictionary rather than
// the literal-lyric fallback.
func (r Result) Matched() bool {
	return r.Oto != nil
}
