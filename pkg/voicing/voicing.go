// Package voicing resolves chord symbols against the curated fretboard
// voicing library. Lookups never fail: enharmonic spellings collapse onto
// the canonical entry, and missing data degrades through mathematical
// transposition and finally a muted placeholder, so callers always get at
// least one voicing back.
package voicing

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

// Muted marks a string that is not played.
const Muted Fret = -1

// Fret is a single string entry in a voicing: a non-negative fret number
// (0 = open) or Muted. Curated YAML spells muted strings as "x".
type Fret int

// UnmarshalYAML accepts either an integer fret or the "x" muted marker.
func (f *Fret) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		if n < 0 {
			return fmt.Errorf("negative fret %d", n)
		}
		*f = Fret(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("fret must be a number or \"x\": %w", err)
	}
	if s != "x" && s != "X" {
		return fmt.Errorf("unrecognized fret marker %q", s)
	}
	*f = Muted
	return nil
}

// IsMuted reports whether the string is not played.
func (f Fret) IsMuted() bool { return f == Muted }

func (f Fret) String() string {
	if f.IsMuted() {
		return "x"
	}
	return fmt.Sprintf("%d", int(f))
}

// ChordVoicing is one concrete fingering of a chord, low string first.
// When FirstFret is set the shape is a movable pattern and fret numbers are
// pattern-relative; otherwise they are absolute (0 = open).
type ChordVoicing struct {
	Frets     []Fret `yaml:"frets"`
	FirstFret int    `yaml:"firstFret,omitempty"`
}

// EffectiveFret returns the absolute fret sounded on string i, resolving
// the movable-pattern offset: firstFret + fret - 1 when FirstFret > 1,
// the raw fret otherwise.
func (v ChordVoicing) EffectiveFret(i int) Fret {
	f := v.Frets[i]
	if f.IsMuted() {
		return Muted
	}
	if v.FirstFret > 1 {
		return Fret(v.FirstFret) + f - 1
	}
	return f
}

// RealizedPitchClasses evaluates the pattern against standard tuning and
// returns the distinct pitch classes it sounds, unordered.
func (v ChordVoicing) RealizedPitchClasses() []theory.PitchClass {
	seen := make(map[theory.PitchClass]bool)
	var out []theory.PitchClass
	for i := range v.Frets {
		f := v.EffectiveFret(i)
		if f.IsMuted() {
			continue
		}
		pc := theory.PitchClass((int(theory.OpenStrings[i]) + int(f)) % 12)
		if !seen[pc] {
			seen[pc] = true
			out = append(out, pc)
		}
	}
	return out
}

// position is the lowest sounded absolute fret, used to order fallback
// candidates toward the nut. Fully muted voicings sort last.
func (v ChordVoicing) position() int {
	pos := theory.MaxFret + 1
	for i := range v.Frets {
		f := v.EffectiveFret(i)
		if f.IsMuted() {
			continue
		}
		if int(f) < pos {
			pos = int(f)
		}
	}
	return pos
}

// IsMutedVoicing reports whether every string entry is the muted marker,
// i.e. the voicing is the generic placeholder from the fallback chain.
func IsMutedVoicing(v ChordVoicing) bool {
	if len(v.Frets) == 0 {
		return false
	}
	for _, f := range v.Frets {
		if !f.IsMuted() {
			return false
		}
	}
	return true
}

func mutedPlaceholder() ChordVoicing {
	frets := make([]Fret, theory.NumStrings)
	for i := range frets {
		frets[i] = Muted
	}
	return ChordVoicing{Frets: frets}
}
