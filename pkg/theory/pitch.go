// Package theory implements the pitch-class and chord-symbol layer of the
// MAGDA theory engine: note-name normalization, chord quality resolution,
// and chord symbol parsing. Everything here is pure and table-driven; the
// tables are fixed at init and never mutated.
package theory

import "strings"

// PitchClass is one of the 12 equal-tempered note identities, octave
// independent. 0 = C.
type PitchClass int

// NumStrings is the string count of the standard instrument, low to high.
const NumStrings = 6

// MaxFret is the highest absolute fret the voicing library considers playable.
const MaxFret = 15

// OpenStrings holds the open-string pitch classes of standard tuning,
// low E to high E.
var OpenStrings = [NumStrings]PitchClass{4, 9, 2, 7, 11, 4}

// Canonical spellings prefer sharps. ValueToNote always renders from this
// table; flats only exist on the input side.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flatToSharp maps every flat (and the odd theoretical spelling) to the
// sharp canonical form sharing its pitch class.
var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

var noteValues map[string]PitchClass

func init() {
	noteValues = make(map[string]PitchClass, len(noteNames)+len(flatToSharp))
	for v, name := range noteNames {
		noteValues[name] = PitchClass(v)
	}
	for spelling, sharp := range flatToSharp {
		noteValues[spelling] = noteValues[sharp]
	}
}

// capitalizeNote normalizes casing so lookups are case-insensitive:
// letter upper-cased, accidental kept as written ('#' or lower 'b').
func capitalizeNote(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	out := strings.ToUpper(name[:1])
	if len(name) > 1 {
		acc := name[1:]
		if strings.EqualFold(acc, "b") {
			acc = "b"
		}
		out += acc
	}
	return out
}

// NoteToValue maps a note spelling to its pitch class. It accepts every
// sharp, flat, and natural spelling in the tables above, case-insensitively.
// The boolean reports whether the spelling was recognized; callers that need
// a total function fall back to 0 themselves (see scale.Notes).
func NoteToValue(name string) (PitchClass, bool) {
	v, ok := noteValues[capitalizeNote(name)]
	return v, ok
}

// ValueToNote returns the canonical sharp-preferring spelling for v mod 12.
func ValueToNote(v PitchClass) string {
	i := (int(v)%12 + 12) % 12
	return noteNames[i]
}

// NormalizeRoot collapses any recognized spelling to its canonical sharp
// form: Db -> C#, Gb -> F#. Sharp spellings are fixed points. Unrecognized
// input is returned unchanged (trimmed) so callers can surface it.
func NormalizeRoot(name string) string {
	if v, ok := NoteToValue(name); ok {
		return ValueToNote(v)
	}
	return strings.TrimSpace(name)
}

// NormalizeSpelling fixes the casing of a note spelling without changing
// which enharmonic the caller chose ("bb" -> "Bb", "c#" -> "C#").
func NormalizeSpelling(name string) string {
	return capitalizeNote(name)
}

// enharmonicPairs holds the five accidental pitch classes that carry two
// common spellings. Naturals have no alternative.
var enharmonicPairs = map[string]string{
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
	"A#": "Bb", "Bb": "A#",
}

// EnharmonicAlternative returns the other common spelling of the same pitch
// class (C# <-> Db).
func EnharmonicAlternative(name string) (string, bool) {
	alt, ok := enharmonicPairs[capitalizeNote(name)]
	return alt, ok
}
