package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "theorycheck",
	Short: "Inspect and verify the guitar theory engine's curated data",
	Long: `theorycheck exercises the magda-theory resolution engine from the command
line: it validates the curated voicing library and generated scale fingerings,
and resolves chord symbols, scales, and cache keys the way the API would.`,
	Version: releaseVersion,
}

func init() {
	rootCmd.SetVersionTemplate("theorycheck version {{.Version}}\n")
}
