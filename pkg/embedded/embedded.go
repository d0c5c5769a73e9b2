// Package embedded carries the curated theory data files compiled into the
// binary. The voicing library parses these once at first use; nothing here
// is written at runtime.
package embedded

import (
	_ "embed"
)

// Embed curated fretboard data files
//
//go:embed data/voicings.yaml
var VoicingsYAML []byte
