// Package kana classifies kana glyphs for sample-alias resolution.
// Three tables are built once at init and never mutated: trailing-vowel
// class, leading-consonant class, and bare-vowel substitutes.
package kana

import "strings"

// vowelTable maps each kana glyph to its trailing-vowel class.
// Line format: class=glyph,glyph,... (inverted into glyph→class at init).
var vowelTable = []string{
	// あ段（ひらがな・カタカナ、小書き含む）
	"a=ぁ,あ,か,が,さ,ざ,た,だ,な,は,ば,ぱ,ま,ゃ,や,ら,わ,ゎ,ゕ,ァ,ア,カ,ガ,サ,ザ,タ,ダ,ナ,ハ,バ,パ,マ,ャ,ヤ,ラ,ワ,ヮ,ヵ",
	// い段
	"i=ぃ,い,き,ぎ,し,じ,ち,ぢ,に,ひ,び,ぴ,み,り,ゐ,ィ,イ,キ,ギ,シ,ジ,チ,ヂ,ニ,ヒ,ビ,ピ,ミ,リ,ヰ",
	// う段（促音・ゔ含む）
	"u=ぅ,う,く,ぐ,す,ず,っ,つ,づ,ぬ,ふ,ぶ,ぷ,む,ゅ,ゆ,る,ゔ,ゥ,ウ,ク,グ,ス,ズ,ッ,ツ,ヅ,ヌ,フ,ブ,プ,ム,ュ,ユ,ル,ヴ",
	// え段
	"e=ぇ,え,け,げ,せ,ぜ,て,で,ね,へ,べ,ぺ,め,れ,ゑ,ゖ,ェ,エ,ケ,ゲ,セ,ゼ,テ,デ,ネ,ヘ,ベ,ペ,メ,レ,ヱ,ヶ",
	// お段
	"o=ぉ,お,こ,ご,そ,ぞ,と,ど,の,ほ,ぼ,ぽ,も,ょ,よ,ろ,を,ォ,オ,コ,ゴ,ソ,ゾ,ト,ド,ノ,ホ,ボ,ポ,モ,ョ,ヨ,ロ,ヲ",
	// 撥音
	"n=ん,ン",
}

// consonantTable maps kana syllables (single glyphs and yōon clusters) to
// their leading-consonant class. Not consulted during resolution; exposed
// for callers that classify onsets.
var consonantTable = []string{
	// 拗音・特殊子音
	"ch=ち,ちぇ,ちゃ,ちゅ,ちょ",
	"sh=し,しぇ,しゃ,しゅ,しょ",
	"ts=つ,つぁ,つぃ,つぇ,つぉ",
	"j=じ,じぇ,じゃ,じゅ,じょ",
	"f=ふ,ふぁ,ふぃ,ふぇ,ふぉ",
	"v=ゔ,ゔぁ,ゔぃ,ゔぇ,ゔぉ",
	"ky=き,きぇ,きゃ,きゅ,きょ",
	"gy=ぎ,ぎぇ,ぎゃ,ぎゅ,ぎょ",
	"ny=に,にぇ,にゃ,にゅ,にょ",
	"hy=ひ,ひぇ,ひゃ,ひゅ,ひょ",
	"by=び,びぇ,びゃ,びゅ,びょ",
	"py=ぴ,ぴぇ,ぴゃ,ぴゅ,ぴょ",
	"my=み,みぇ,みゃ,みゅ,みょ",
	"ry=り,りぇ,りゃ,りゅ,りょ",
	"ty=てぃ,てゅ",
	"dy=でぃ,でゅ",
	// 直音
	"k=か,く,け,こ",
	"g=が,ぐ,げ,ご",
	"s=さ,す,せ,そ",
	"z=ざ,ず,ぜ,ぞ",
	"t=た,て,と,とぅ",
	"d=だ,で,ど,どぅ",
	"n=な,ぬ,ね,の",
	"h=は,へ,ほ",
	"b=ば,ぶ,べ,ぼ",
	"p=ぱ,ぷ,ぺ,ぽ",
	"m=ま,む,め,も",
	"y=や,ゆ,よ,いぇ",
	"r=ら,る,れ,ろ",
	"w=わ,うぃ,うぇ,うぉ,を",
}

// substituteTable maps bare-vowel forms to their romanized substitute.
// Each class lists the romanized letter itself plus the bare kana, so
// both あ and an already-romanized a resolve to a. CV syllables are
// deliberately absent: substitution applies to bare vowels only.
var substituteTable = []string{
	"a=a,ぁ,あ,ァ,ア",
	"i=i,ぃ,い,ィ,イ",
	"u=u,ぅ,う,ゥ,ウ",
	"e=e,ぇ,え,ェ,エ",
	"o=o,ぉ,お,ォ,オ",
	"n=n,ん,ン",
}

var (
	vowelLookup      map[string]string
	consonantLookup  map[string]string
	substituteLookup map[string]string
)

func init() {
	vowelLookup = invert(vowelTable)
	consonantLookup = invert(consonantTable)
	substituteLookup = invert(substituteTable)
}

// invert turns class=g1,g2,... lines into a glyph→class map.
// Duplicate glyphs overwrite; keeping each glyph in one class is the
// table author's responsibility.
func invert(table []string) map[string]string {
	m := make(map[string]string)
	for _, line := range table {
		class, glyphs, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		for _, g := range strings.Split(glyphs, ",") {
			m[g] = class
		}
	}
	return m
}

// VowelClass returns the trailing-vowel class of a kana glyph.
// Unknown glyphs report ok=false; callers pass the lyric through unchanged.
func VowelClass(glyph string) (class string, ok bool) {
	class, ok = vowelLookup[glyph]
	return class, ok
}

// ConsonantClass returns the leading-consonant class of a kana syllable
// (single glyph or yōon cluster such as きゃ).
func ConsonantClass(cluster string) (class string, ok bool) {
	class, ok = consonantLookup[cluster]
	return class, ok
}

// BareVowelSubstitute returns the romanized substitute for a bare-vowel
// form (あ→a, ア→a, a→a).
func BareVowelSubstitute(glyph string) (sub string, ok bool) {
	sub, ok = substituteLookup[glyph]
	return sub, ok
}
