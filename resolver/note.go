// Package resolver selects one sample alias per sung note: it builds the
// prioritized candidate strings for a note's lyric, probes a sample
// dictionary with them, and applies the voice-color tie-break.
package resolver

import "github.com/ieee0824/otoresolve-go/internal/textutil"

// Note is one sung note as supplied by the host.
type Note struct {
	Lyric        string
	PhoneticHint string // explicit pronunciation override; empty = absent
	Tone         int    // pitch index
	Attributes   []Attribute
}

// Attribute carries per-phoneme voice attributes. Resolution reads only
// the Index 0 entry; a missing entry means all defaults.
type Attribute struct {
	Index      int
	VoiceColor string
	ToneShift  int
	Alternate  string // alternate-sample tag appended to candidates
}

// attr0 returns the index-0 attribute, or a zero Attribute when absent.
func (n Note) attr0() Attribute {
	for _, a := range n.Attributes {
		if a.Index == 0 {
			return a
		}
	}
	return Attribute{}
}

// effectiveLyric is the hint when present, else the lyric, NFC-normalized.
// Used when the note acts as a previous neighbour.
func (n Note) effectiveLyric() string {
	if n.PhoneticHint != "" {
		return textutil.NFC(n.PhoneticHint)
	}
	return textutil.NFC(n.Lyric)
}
