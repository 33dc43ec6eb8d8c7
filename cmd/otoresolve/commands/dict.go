package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ieee0824/otoresolve-go/oto"
)

var (
	dictFind  string
	dictTone  int
	dictColor string
)

var dictCmd = &cobra.Command{
	Use:   "dict FILE",
	Short: "Inspect a voicebank inventory file",
	Long: `Load a voicebank inventory and print a summary.

With --find, probe a single alias at a tone and color the way the
resolver does, printing the matched sample or the nearest aliases.

Examples:
  otoresolve dict bank.yaml
  otoresolve dict bank.yaml --find "a な" --tone 64 --color power`,
	Args: cobra.ExactArgs(1),
	RunE: runDict,
}

func init() {
	dictCmd.Flags().StringVar(&dictFind, "find", "", "probe one alias")
	dictCmd.Flags().IntVar(&dictTone, "tone", 60, "tone for --find")
	dictCmd.Flags().StringVar(&dictColor, "color", "", "color for --find")
	rootCmd.AddCommand(dictCmd)
}

func runDict(cmd *cobra.Command, args []string) error {
	bank, err := oto.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	if dictFind != "" {
		o, ok := bank.Find(dictFind, dictTone, dictColor)
		if !ok {
			fmt.Println(styles.Fallback.Render("no match"))
			if near := bank.Nearest(dictFind, 3); len(near) > 0 {
				fmt.Println(styles.Help.Render("near: " + strings.Join(near, ", ")))
			}
			return nil
		}
		if o.Color != "" {
			fmt.Printf("%s  %s\n", styles.Alias.Render(o.Alias), styles.Help.Render("color="+o.Color))
		} else {
			fmt.Println(styles.Alias.Render(o.Alias))
		}
		return nil
	}

	fmt.Printf("%s %d\n", styles.Label.Render("samples:"), bank.Len())
	fmt.Printf("%s %d\n", styles.Label.Render("aliases:"), len(bank.Aliases()))
	if colors := bank.Colors(); len(colors) > 0 {
		fmt.Printf("%s %s\n", styles.Label.Render("colors:"), strings.Join(colors, ", "))
	}
	if lo, hi, ok := bank.ToneRange(); ok {
		fmt.Printf("%s %s\n", styles.Label.Render("tones:"), formatToneRange(lo, hi))
	}
	if IsVerbose() {
		for _, a := range bank.Aliases() {
			fmt.Println(styles.Help.Render("  " + a))
		}
	}
	return nil
}

// formatToneRange renders a bounded tone span, leaving open ends blank
// (e.g. "40..70", "..70", "40..").
func formatToneRange(lo, hi int) string {
	s := ".."
	if lo != 0 {
		s = fmt.Sprintf("%d..", lo)
	}
	if hi != 0 {
		s += fmt.Sprintf("%d", hi)
	}
	return s
}
