package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "otoresolve",
	Short: "Resolve kana lyrics to voicebank sample aliases",
	Long: `otoresolve - map sung kana lyrics onto a singer's oto sample aliases.

Each lyric is resolved against a voicebank inventory through a prioritized
candidate chain: the previous note's trailing vowel builds VCV forms
("a な"), utterance-initial notes get the dash form ("- な"), and bare
vowels fall back to their romanized substitutes. Within the candidates
that match, a sample in the requested voice color wins.

The inventory is a YAML file listing sample aliases with optional color
tags and tone ranges:

  samples:
    - alias: "- あ"
    - alias: "a な"
      color: power
      min_tone: 40
      max_tone: 70

Examples:
  # Resolve a phrase; each lyric is the next one's previous neighbour
  otoresolve resolve -d bank.yaml か な た

  # Probe with a voice color and a pitch shift
  otoresolve resolve -d bank.yaml --color power --shift 2 な

  # Show how glyphs classify
  otoresolve classify な きゃ あ

  # Summarize an inventory and probe one alias
  otoresolve dict bank.yaml --find "a な" --tone 60`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (per-note candidate trace on stderr)")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// initLogging routes diagnostics to stderr, at debug level under
// --verbose. Resolved aliases go to stdout only.
func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
