// Package cachekey builds the deterministic token the progression-generation
// service keys its response cache on. The token must be stable across every
// spelling of the same musical request, so the key and mode pass through the
// same normalizers the engine uses: "Db Ionian" and "C# major" produce the
// same token.
package cachekey

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/pkg/scale"
	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

// Params are the generation parameters that distinguish cached progressions.
type Params struct {
	Key             string // tonic, any enharmonic spelling
	Mode            string // scale/mode name or alias
	IncludeTensions bool
	ChordCount      int
	Progression     string // progression selector, e.g. "I-V-vi-IV"
	Style           string // difficulty/style token, e.g. "jazz", "beginner"
}

// Build returns the cache token for p. Equal musical requests yield equal
// tokens regardless of input spelling; unknown keys or modes fall back the
// same way the engine does, so they still produce a usable (shared) bucket.
func Build(p Params) string {
	mode, _ := scale.NormalizeName(p.Mode)
	return strings.Join([]string{
		theory.NormalizeRoot(p.Key),
		string(mode),
		fmt.Sprintf("tensions=%t", p.IncludeTensions),
		fmt.Sprintf("chords=%d", p.ChordCount),
		normalizeToken(p.Progression),
		normalizeToken(p.Style),
	}, "|")
}

// normalizeToken lowercases and collapses whitespace so free-text selectors
// hash consistently.
func normalizeToken(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
