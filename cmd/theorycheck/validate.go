package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-theory/internal/logger"
	"github.com/Conceptual-Machines/magda-theory/pkg/scale"
	"github.com/Conceptual-Machines/magda-theory/pkg/voicing"
)

var validateRoots []string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the curated voicing library and generated fingerings",
	Long: `Checks every curated voicing against its chord quality's interval set and
the playable-range ceiling (MAX_FRET), and every generated scale fingering
against its scale's pitch classes. Exits nonzero if any voicing sounds a
foreign note or leaves the neck, or any fingering escapes its scale.`,
	Run: runValidate,
}

func init() {
	validateCmd.Flags().StringSliceVar(&validateRoots, "roots", []string{"C", "E", "G", "A", "Bb", "F#"},
		"Roots to generate fingerings for during the scale check")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	failed := false

	report := voicing.ValidateChordLibrary()
	if report.OK() {
		fmt.Printf("chord library: ok (%d entries, %d voicings checked)\n",
			report.EntriesChecked, report.VoicingsChecked)
	} else {
		failed = true
		fmt.Println(report.String())
		logger.Error("chord library validation failed", fmt.Errorf("%d issues", len(report.Issues)), logger.Fields{
			"issues": len(report.Issues),
		})
	}

	rangeReport := voicing.ValidatePlayableRange(cfg.MaxFret)
	if rangeReport.OK() {
		fmt.Printf("playable range: ok (ceiling fret %d)\n", cfg.MaxFret)
	} else {
		failed = true
		fmt.Println(rangeReport.String())
		logger.Error("playable-range validation failed", fmt.Errorf("%d issues", len(rangeReport.Issues)), logger.Fields{
			"max_fret": cfg.MaxFret,
			"issues":   len(rangeReport.Issues),
		})
	}

	checked, bad := 0, 0
	for _, name := range scale.Names() {
		for _, root := range validateRoots {
			for p := 0; p < scale.Positions(string(name)); p++ {
				f := scale.Fingering(string(name), root, p)
				res := scale.ValidateFingeringNotes(f, root, string(name))
				checked++
				if !res.IsValid {
					bad++
					failed = true
					fmt.Printf("fingering %s %s position %d: foreign notes %v (coverage %.2f)\n",
						root, name, p, res.InvalidNotes, res.Coverage)
				}
			}
		}
	}
	if bad == 0 {
		fmt.Printf("scale fingerings: ok (%d patterns checked)\n", checked)
	}

	if failed {
		os.Exit(1)
	}
	logger.Info("validation passed", logger.Fields{
		"entries":    report.EntriesChecked,
		"voicings":   report.VoicingsChecked,
		"fingerings": checked,
		"max_fret":   cfg.MaxFret,
	})
}
