package scale

import (
	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

// ModeProfile carries the metadata shown for modes of the major system:
// the scale degree the mode starts on, its step formula, and where its
// relative major sits relative to the mode's tonic.
type ModeProfile struct {
	// Degree is the roman numeral of the mode within its parent major
	// scale (lowercase for minor-flavored modes).
	Degree string
	// Formula is the whole/half step pattern from the tonic.
	Formula string
	// relativeMajorOffset is the semitone distance up to the relative
	// major tonic, mod 12.
	relativeMajorOffset int
}

// Only the seven modes derived from the major scale carry a profile.
// Pentatonic, blues, and the symmetric scales have no major-system degree.
var modeProfiles = map[Name]ModeProfile{
	Major:      {Degree: "I", Formula: "W-W-H-W-W-W-H", relativeMajorOffset: 0},
	Dorian:     {Degree: "ii", Formula: "W-H-W-W-W-H-W", relativeMajorOffset: 10},
	Phrygian:   {Degree: "iii", Formula: "H-W-W-W-H-W-W", relativeMajorOffset: 8},
	Lydian:     {Degree: "IV", Formula: "W-W-W-H-W-W-H", relativeMajorOffset: 7},
	Mixolydian: {Degree: "V", Formula: "W-W-H-W-W-H-W", relativeMajorOffset: 5},
	Minor:      {Degree: "vi", Formula: "W-H-W-W-H-W-W", relativeMajorOffset: 3},
	Locrian:    {Degree: "vii°", Formula: "H-W-W-H-W-W-W", relativeMajorOffset: 1},
}

// ModeProfileFor resolves a free-text mode name to its major-system
// profile. Names outside the seven modes (including every recognized
// non-modal scale) return ok=false.
func ModeProfileFor(modeName string) (ModeProfile, bool) {
	key, recognized := NormalizeName(modeName)
	if !recognized {
		return ModeProfile{}, false
	}
	p, ok := modeProfiles[key]
	return p, ok
}

// RelativeMajor renders the relative major tonic for the mode rooted at
// rootName ("A" Aeolian -> "C", "D" Dorian -> "C").
func (p ModeProfile) RelativeMajor(rootName string) string {
	root, ok := theory.NoteToValue(rootName)
	if !ok {
		root = 0
	}
	return theory.ValueToNote(theory.PitchClass((int(root) + p.relativeMajorOffset) % 12))
}
