package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	otoresolve "github.com/ieee0824/otoresolve-go"
	"github.com/ieee0824/otoresolve-go/oto"
	"github.com/ieee0824/otoresolve-go/resolver"
)

var (
	resolveDict      string
	resolveTone      int
	resolveShift     int
	resolveColor     string
	resolveAlternate string
	resolveHint      string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve -d FILE LYRIC...",
	Short: "Resolve a kana lyric sequence to sample aliases",
	Long: `Resolve kana lyrics against a voicebank inventory, one alias per line.

The lyrics form one connected phrase: each lyric acts as the previous
neighbour of the next, so the second and later notes prefer VCV forms
built from the preceding trailing vowel. A lyric that matches nothing
falls back to its literal text and, when the inventory is close, prints
nearest-alias suggestions.

Examples:
  otoresolve resolve -d bank.yaml か な た
  otoresolve resolve -d bank.yaml --color power --tone 64 な
  otoresolve resolve -d bank.yaml --hint "a な" か な`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveDict, "dict", "d", "", "voicebank inventory file (YAML)")
	resolveCmd.Flags().IntVar(&resolveTone, "tone", 60, "note tone (MIDI pitch index)")
	resolveCmd.Flags().IntVar(&resolveShift, "shift", 0, "tone shift applied when probing")
	resolveCmd.Flags().StringVar(&resolveColor, "color", "", "preferred voice color")
	resolveCmd.Flags().StringVar(&resolveAlternate, "alternate", "", "alternate-sample tag")
	resolveCmd.Flags().StringVar(&resolveHint, "hint", "", "phonetic hint for the last lyric")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolveDict == "" {
		return fmt.Errorf("--dict is required")
	}

	r, err := otoresolve.NewFromFile(resolveDict, otoresolve.WithDefaultAttributes(resolver.Attribute{
		VoiceColor: resolveColor,
		ToneShift:  resolveShift,
		Alternate:  resolveAlternate,
	}))
	if err != nil {
		return err
	}

	notes := make([]resolver.Note, len(args))
	for i, lyric := range args {
		notes[i] = resolver.Note{Lyric: lyric, Tone: resolveTone}
	}
	if resolveHint != "" {
		notes[len(notes)-1].PhoneticHint = resolveHint
	}

	for i, res := range r.PhonemizeSequence(notes) {
		slog.Debug("resolved",
			"lyric", args[i],
			"candidates", strings.Join(res.Candidates, " | "),
			"matched", res.Matched(),
		)
		if res.Matched() {
			fmt.Println(styles.Alias.Render(res.Alias))
			continue
		}
		line := styles.Fallback.Render(res.Alias)
		if bank, ok := r.Bank.(*oto.Map); ok {
			if near := bank.Nearest(res.Alias, 3); len(near) > 0 {
				line += styles.Help.Render("  (near: " + strings.Join(near, ", ") + ")")
			}
		}
		fmt.Println(line)
	}
	return nil
}
