package textutil

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// NFC returns s in Unicode Normalization Form C.
// Lyrics and hints are normalized before any table lookup so that
// precomposed and decomposed kana (か vs か+゙) compare equal.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Clusters splits s into grapheme clusters (user-perceived characters).
// The empty string yields nil.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Last returns the last grapheme cluster of s, or "" if s is empty.
func Last(s string) string {
	var last string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last = g.Str()
	}
	return last
}
