package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-theory/internal/logger"
	"github.com/Conceptual-Machines/magda-theory/pkg/scale"
)

var scalePosition int

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <name>",
	Short: "Show a scale's notes, mode profile, and a fingering position",
	Long: `Normalizes a scale or mode name ("Natural Minor", "ionian"), prints its
notes from the given root, its mode profile when it belongs to the major
system, and the fingering pattern for the requested position.`,
	Args: cobra.MinimumNArgs(2),
	Run:  runScale,
}

func init() {
	scaleCmd.Flags().IntVar(&scalePosition, "position", 0, "Fingering position index (wraps past the last position)")
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) {
	root := args[0]
	name := strings.Join(args[1:], " ")

	canonical, recognized := scale.NormalizeName(name)
	fmt.Printf("scale: %s", canonical)
	if !recognized {
		fmt.Print(" (unrecognized input, defaulted)")
		logger.Warn("unrecognized scale name, using major", logger.Fields{
			"input": name,
		})
	}
	fmt.Println()
	fmt.Printf("intervals: %v\n", scale.Intervals(canonical))
	fmt.Printf("notes: %s\n", strings.Join(scale.Notes(root, name), " "))

	if profile, ok := scale.ModeProfileFor(name); ok {
		fmt.Printf("mode: degree %s, formula %s, relative major %s\n",
			profile.Degree, profile.Formula, profile.RelativeMajor(root))
	}

	fmt.Printf("positions: %d\n", scale.Positions(name))
	fingering := scale.Fingering(name, root, scalePosition)
	for s, frets := range fingering {
		fmt.Printf("string %d: %v\n", s+1, frets)
	}

	res := scale.ValidateFingeringNotes(fingering, root, name)
	fmt.Printf("valid: %t, coverage: %.2f\n", res.IsValid, res.Coverage)
}
