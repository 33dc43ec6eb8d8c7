// Package main provides the otoresolve CLI tool.
//
// Usage:
//
//	otoresolve <command> [flags] [args]
//
// Commands:
//
//	resolve  - Resolve a kana lyric sequence to voicebank sample aliases
//	classify - Show vowel/consonant/substitute classes for kana glyphs
//	dict     - Inspect a voicebank inventory file
package main

import (
	"fmt"
	"os"

	"github.com/ieee0824/otoresolve-go/cmd/otoresolve/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
