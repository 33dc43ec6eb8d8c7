package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/otoresolve-go/internal/textutil"
	"github.com/ieee0824/otoresolve-go/kana"
)

var classifyCmd = &cobra.Command{
	Use:   "classify GLYPH...",
	Short: "Show vowel/consonant/substitute classes for kana glyphs",
	Long: `Print how each glyph or cluster classifies in the resolution tables.

Single glyphs carry a trailing-vowel class, syllables (single glyphs or
clusters such as きゃ) a leading-consonant class, and bare vowels a
romanized substitute. A dash marks a table miss.

Examples:
  otoresolve classify な きゃ あ ん`,
	Args: cobra.MinimumNArgs(1),
	Run:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		g := textutil.NFC(arg)
		v, vok := kana.VowelClass(g)
		c, cok := kana.ConsonantClass(g)
		s, sok := kana.BareVowelSubstitute(g)
		fmt.Printf("%s\t%s %s\t%s %s\t%s %s\n",
			styles.Label.Render(g),
			styles.Help.Render("vowel"), classOrDash(v, vok),
			styles.Help.Render("consonant"), classOrDash(c, cok),
			styles.Help.Render("substitute"), classOrDash(s, sok),
		)
	}
}

func classOrDash(class string, ok bool) string {
	if !ok {
		return "-"
	}
	return class
}
