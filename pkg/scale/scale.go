// Package scale implements scale-name normalization, interval tables,
// multi-position fretboard fingerings, and major-system mode metadata.
// All tables are fixed at init; per-request values are plain copies the
// caller owns.
package scale

import (
	"sort"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

// Name is a canonical scale identifier from the closed set below. Raw user
// strings stop at NormalizeName.
type Name string

const (
	Major           Name = "major"
	Minor           Name = "minor"
	HarmonicMinor   Name = "harmonic_minor"
	MelodicMinor    Name = "melodic_minor"
	Dorian          Name = "dorian"
	Phrygian        Name = "phrygian"
	Lydian          Name = "lydian"
	Mixolydian      Name = "mixolydian"
	Locrian         Name = "locrian"
	MajorPentatonic Name = "major_pentatonic"
	MinorPentatonic Name = "minor_pentatonic"
	Blues           Name = "blues"
	WholeTone       Name = "whole_tone"
	Diminished      Name = "diminished"
)

// scaleIntervals holds ascending semitone offsets from the root, first
// always 0, strictly increasing within the octave.
var scaleIntervals = map[Name][]int{
	Major:           {0, 2, 4, 5, 7, 9, 11},
	Minor:           {0, 2, 3, 5, 7, 8, 10},
	HarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	MelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	Dorian:          {0, 2, 3, 5, 7, 9, 10},
	Phrygian:        {0, 1, 3, 5, 7, 8, 10},
	Lydian:          {0, 2, 4, 6, 7, 9, 11},
	Mixolydian:      {0, 2, 4, 5, 7, 9, 10},
	Locrian:         {0, 1, 3, 5, 6, 8, 10},
	MajorPentatonic: {0, 2, 4, 7, 9},
	MinorPentatonic: {0, 3, 5, 7, 10},
	Blues:           {0, 3, 5, 6, 7, 10},
	WholeTone:       {0, 2, 4, 6, 8, 10},
	Diminished:      {0, 2, 3, 5, 6, 8, 9, 11},
}

// nameAliases maps folded free-text names (historical and modal spellings
// included) to canonical keys.
var nameAliases = map[string]Name{
	"major":                 Major,
	"ionian":                Major,
	"minor":                 Minor,
	"natural minor":         Minor,
	"aeolian":               Minor,
	"harmonic minor":        HarmonicMinor,
	"melodic minor":         MelodicMinor,
	"jazz minor":            MelodicMinor,
	"dorian":                Dorian,
	"phrygian":              Phrygian,
	"lydian":                Lydian,
	"mixolydian":            Mixolydian,
	"locrian":               Locrian,
	"major pentatonic":      MajorPentatonic,
	"pentatonic major":      MajorPentatonic,
	"pentatonic":            MajorPentatonic,
	"minor pentatonic":      MinorPentatonic,
	"pentatonic minor":      MinorPentatonic,
	"blues":                 Blues,
	"minor blues":           Blues,
	"whole tone":            WholeTone,
	"whole-tone":            WholeTone,
	"wholetone":             WholeTone,
	"diminished":            Diminished,
	"whole-half diminished": Diminished,
	"whole half diminished": Diminished,
	"octatonic":             Diminished,
}

// NormalizeName maps a free-text scale or mode name to a canonical key:
// case-folded, whitespace-collapsed, with a trailing "scale" word stripped
// ("Natural Minor Scale" -> minor). Unrecognized input defaults to major
// with ok=false; normalization never fails.
func NormalizeName(input string) (Name, bool) {
	folded := strings.ToLower(strings.TrimSpace(input))
	folded = strings.Join(strings.Fields(folded), " ")
	folded = strings.TrimSuffix(folded, " scale")
	if n, ok := nameAliases[folded]; ok {
		return n, true
	}
	return Major, false
}

// Intervals returns a copy of the interval set for a canonical key.
// Unknown keys fall back to the major scale.
func Intervals(n Name) []int {
	iv, ok := scaleIntervals[n]
	if !ok {
		iv = scaleIntervals[Major]
	}
	out := make([]int, len(iv))
	copy(out, iv)
	return out
}

// Notes renders the scale starting from root. The first element preserves
// the caller's root spelling (so "Bb minor" stays rooted on "Bb"); the
// rest use canonical sharp spellings. Unrecognized roots fall back to C,
// the only place that closed-fail is applied.
func Notes(rootName, nameOrAlias string) []string {
	root, ok := theory.NoteToValue(rootName)
	if !ok {
		root = 0
		rootName = theory.ValueToNote(root)
	}
	key, _ := NormalizeName(nameOrAlias)

	iv := Intervals(key)
	out := make([]string, len(iv))
	for i, offset := range iv {
		out[i] = theory.ValueToNote(theory.PitchClass((int(root) + offset) % 12))
	}
	out[0] = theory.NormalizeSpelling(rootName)
	return out
}

// Names returns every canonical scale key, for tooling that iterates the
// closed set.
func Names() []Name {
	out := make([]Name, 0, len(scaleIntervals))
	for n := range scaleIntervals {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
