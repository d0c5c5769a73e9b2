package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Conceptual-Machines/magda-theory/pkg/cachekey"
)

var (
	cachekeyTensions    bool
	cachekeyChordCount  int
	cachekeyProgression string
	cachekeyStyle       string
)

var cachekeyCmd = &cobra.Command{
	Use:   "cachekey <key> <mode>",
	Short: "Build the deterministic progression cache token",
	Long: `Builds the cache token the progression generator keys its responses on.
Enharmonic keys and mode aliases collapse: "Db Ionian" and "C# major" yield
the same token.`,
	Args: cobra.ExactArgs(2),
	Run:  runCachekey,
}

func init() {
	cachekeyCmd.Flags().BoolVar(&cachekeyTensions, "tensions", false, "Include tension extensions")
	cachekeyCmd.Flags().IntVar(&cachekeyChordCount, "chords", 4, "Number of chords")
	cachekeyCmd.Flags().StringVar(&cachekeyProgression, "progression", "", "Progression selector, e.g. I-V-vi-IV")
	cachekeyCmd.Flags().StringVar(&cachekeyStyle, "style", "", "Style or difficulty token")
	rootCmd.AddCommand(cachekeyCmd)
}

func runCachekey(cmd *cobra.Command, args []string) {
	fmt.Println(cachekey.Build(cachekey.Params{
		Key:             args[0],
		Mode:            args[1],
		IncludeTensions: cachekeyTensions,
		ChordCount:      cachekeyChordCount,
		Progression:     cachekeyProgression,
		Style:           cachekeyStyle,
	}))
}
