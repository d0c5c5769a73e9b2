package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

func TestFingering_Shape(t *testing.T) {
	f := Fingering("major", "C", 0)
	require.Len(t, f, theory.NumStrings)
	for s, frets := range f {
		assert.NotEmpty(t, frets, "string %d has no frets", s)
		assert.LessOrEqual(t, len(frets), maxFretsPerString)
		for _, fret := range frets {
			assert.GreaterOrEqual(t, fret, 0, "string %d has a negative fret", s)
		}
		for i := 1; i < len(frets); i++ {
			assert.Greater(t, frets[i], frets[i-1], "string %d frets must ascend", s)
		}
	}
}

func TestFingering_AllNotesInScale(t *testing.T) {
	roots := []string{"C", "E", "G", "A", "Bb", "F#"}
	scales := []string{"major", "minor", "dorian", "blues", "minor pentatonic", "whole tone", "harmonic minor"}

	for _, root := range roots {
		for _, name := range scales {
			for p := 0; p < Positions(name); p++ {
				f := Fingering(name, root, p)
				res := ValidateFingeringNotes(f, root, name)
				assert.True(t, res.IsValid,
					"%s %s position %d sounds foreign notes %v", root, name, p, res.InvalidNotes)
				assert.Equal(t, 1.0, res.Coverage)
			}
		}
	}
}

func TestFingering_PositionWraps(t *testing.T) {
	// Whole tone has 6 positions; index 7 wraps to the second position the
	// way a 7-position heptatonic caller would expect.
	require.Equal(t, 6, Positions("whole tone"))
	assert.Equal(t, Fingering("whole tone", "C", 1), Fingering("whole tone", "C", 7))

	// Pentatonic has 5.
	require.Equal(t, 5, Positions("minor pentatonic"))
	assert.Equal(t, Fingering("minor pentatonic", "A", 0), Fingering("minor pentatonic", "A", 5))

	// Negative indexes wrap as well instead of erroring.
	assert.Equal(t, Fingering("major", "C", 6), Fingering("major", "C", -1))
}

func TestFingering_LowestPositionShift(t *testing.T) {
	// Shifting toward the nut must win when both modulo-12 candidates are
	// playable: the G pattern sits lower than the C reference pattern.
	cPattern := Fingering("major", "C", 0)
	gPattern := Fingering("major", "G", 0)

	assert.Less(t, minFret(gPattern), minFret(cPattern))
	assert.GreaterOrEqual(t, minFret(gPattern), 0)
}

func TestFingering_UnknownInputsDegrade(t *testing.T) {
	// Unknown scale falls back to major, unknown root to C.
	assert.Equal(t, Fingering("major", "C", 0), Fingering("mystery", "C", 0))
	assert.Equal(t, Fingering("major", "C", 0), Fingering("major", "??", 0))
}

func TestValidateFingeringNotes(t *testing.T) {
	valid := Fingering("major", "C", 0)
	res := ValidateFingeringNotes(valid, "C", "major")
	assert.True(t, res.IsValid)
	assert.Equal(t, 1.0, res.Coverage)
	assert.Empty(t, res.InvalidNotes)

	// Poison one fret: C major position 0 has no C# anywhere.
	poisoned := Fingering("major", "C", 0)
	poisoned[0] = append([]int{}, poisoned[0]...)
	poisoned[0][0] = 9 // low E fret 9 = C#
	res = ValidateFingeringNotes(poisoned, "C", "major")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.InvalidNotes, "C#")
	assert.Less(t, res.Coverage, 1.0)
	assert.Greater(t, res.Coverage, 0.0)
}

func TestValidateFingeringNotes_Empty(t *testing.T) {
	res := ValidateFingeringNotes(emptyFingering(), "C", "major")
	assert.True(t, res.IsValid)
	assert.Equal(t, 0.0, res.Coverage)
}

func minFret(f [][]int) int {
	min := -1
	for _, frets := range f {
		for _, fret := range frets {
			if min < 0 || fret < min {
				min = fret
			}
		}
	}
	return min
}
