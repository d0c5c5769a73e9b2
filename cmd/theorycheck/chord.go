package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-theory/internal/logger"
	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
	"github.com/Conceptual-Machines/magda-theory/pkg/voicing"
)

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Resolve a chord symbol and show its voicings",
	Long: `Parses a chord symbol ("F#m7b5/A", "Cmaj7", "Bb7b9"), resolves its quality
through the alias table, and prints the voicings the library would serve,
including any enharmonic or transposition fallback.`,
	Args: cobra.ExactArgs(1),
	Run:  runChord,
}

func init() {
	rootCmd.AddCommand(chordCmd)
}

func runChord(cmd *cobra.Command, args []string) {
	symbol := args[0]

	sym, err := theory.ParseChordSymbol(symbol)
	if err != nil {
		fmt.Printf("%q: %v\n", symbol, err)
	} else {
		fmt.Printf("root: %s (pitch class %d)\n", theory.NormalizeRoot(sym.RootName), sym.Root)
		if alt, ok := theory.EnharmonicAlternative(sym.RootName); ok {
			fmt.Printf("also spelled: %s\n", alt)
		}
		fmt.Printf("quality: %s", sym.Quality)
		if !sym.Recognized {
			fmt.Print(" (unrecognized input, defaulted)")
			logger.Warn("unrecognized chord quality, using major", logger.Fields{
				"symbol": symbol,
			})
		}
		fmt.Println()
		fmt.Printf("intervals: %v\n", theory.Intervals(sym.Quality))
		if sym.Bass != nil {
			fmt.Printf("bass: %s (pitch class %d)\n", sym.BassName, *sym.Bass)
		}
	}

	for i, v := range voicing.GetVoicings(symbol) {
		frets := make([]string, len(v.Frets))
		for s, f := range v.Frets {
			frets[s] = f.String()
		}
		line := fmt.Sprintf("voicing %d: [%s]", i+1, strings.Join(frets, " "))
		if v.FirstFret > 1 {
			line += fmt.Sprintf(" (fret %d)", v.FirstFret)
		}
		if voicing.IsMutedVoicing(v) {
			line += " (placeholder)"
		}
		fmt.Println(line)
	}
}
