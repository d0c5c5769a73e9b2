package scale

import (
	"sync"

	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

// fingering templates are generated once per scale for the reference root C
// and shifted per request. One position per scale degree; each position
// covers a five-fret window anchored where that degree falls on the low E
// string, at most three frets per string.
const (
	positionWindow    = 5
	maxFretsPerString = 3
)

var (
	templateMu    sync.Mutex
	templateCache = map[Name][][][]int{}
)

// Positions returns how many fingering positions the scale has (one per
// degree: 7 for heptatonic scales, 6 for whole tone, 5 for pentatonics).
func Positions(nameOrAlias string) int {
	key, _ := NormalizeName(nameOrAlias)
	return len(Intervals(key))
}

// Fingering returns the per-string fret lists (6 entries, low E to high E)
// for the scale at the requested root and position. Position indexes beyond
// the scale's position count wrap modulo the count, so callers switching
// between scales with different position counts degrade gracefully instead
// of erroring. The whole pattern is shifted from the reference root to the
// requested one, choosing the modulo-12 shift that lands lowest on the neck.
func Fingering(nameOrAlias, rootName string, position int) [][]int {
	key, _ := NormalizeName(nameOrAlias)
	root, ok := theory.NoteToValue(rootName)
	if !ok {
		root = 0
	}

	templates := templatesFor(key)
	n := len(templates)
	if n == 0 {
		return emptyFingering()
	}
	idx := ((position % n) + n) % n

	return shiftFingering(templates[idx], int(root))
}

// templatesFor builds (or returns the cached) reference-root templates.
func templatesFor(key Name) [][][]int {
	templateMu.Lock()
	defer templateMu.Unlock()
	if t, ok := templateCache[key]; ok {
		return t
	}

	iv := Intervals(key)
	inScale := make(map[int]bool, len(iv))
	for _, offset := range iv {
		inScale[offset%12] = true
	}

	templates := make([][][]int, len(iv))
	for p := range iv {
		// Anchor the position where its degree falls on the low E string.
		anchor := ((iv[p] - int(theory.OpenStrings[0])) % 12 + 12) % 12
		pos := make([][]int, theory.NumStrings)
		for s := 0; s < theory.NumStrings; s++ {
			open := int(theory.OpenStrings[s])
			var frets []int
			for f := anchor; f < anchor+positionWindow; f++ {
				if inScale[(open+f)%12] {
					frets = append(frets, f)
					if len(frets) == maxFretsPerString {
						break
					}
				}
			}
			pos[s] = frets
		}
		templates[p] = pos
	}
	templateCache[key] = templates
	return templates
}

// shiftFingering transposes a template by the semitone distance from the
// reference root C to the requested root. Of the two modulo-12 candidates
// (shift and shift-12), the one keeping every fret non-negative and closest
// to the nut wins.
func shiftFingering(template [][]int, shift int) [][]int {
	shift = ((shift % 12) + 12) % 12

	min := -1
	for _, frets := range template {
		for _, f := range frets {
			if min < 0 || f < min {
				min = f
			}
		}
	}
	if min >= 0 && min+shift-12 >= 0 {
		shift -= 12
	}

	out := make([][]int, len(template))
	for s, frets := range template {
		out[s] = make([]int, len(frets))
		for i, f := range frets {
			out[s][i] = f + shift
		}
	}
	return out
}

// ValidationResult reports how a fingering pattern relates to its scale's
// note set. Missing scale notes are tolerated (Coverage < 1 alone does not
// invalidate); any foreign note does.
type ValidationResult struct {
	IsValid      bool
	Coverage     float64
	InvalidNotes []string
}

// ValidateFingeringNotes realizes every fret in the pattern against
// standard tuning and compares the result with the scale's note set at the
// given root. Test/CI tooling; the lookup path only ever serves generated,
// in-scale patterns.
func ValidateFingeringNotes(fingering [][]int, rootName, scaleName string) ValidationResult {
	expected := make(map[theory.PitchClass]bool)
	for _, note := range Notes(rootName, scaleName) {
		if v, ok := theory.NoteToValue(note); ok {
			expected[v] = true
		}
	}

	res := ValidationResult{IsValid: true}
	total, valid := 0, 0
	for s, frets := range fingering {
		if s >= theory.NumStrings {
			break
		}
		open := int(theory.OpenStrings[s])
		for _, f := range frets {
			total++
			pc := theory.PitchClass(((open + f) % 12 + 12) % 12)
			if expected[pc] {
				valid++
				continue
			}
			res.IsValid = false
			res.InvalidNotes = append(res.InvalidNotes, theory.ValueToNote(pc))
		}
	}
	if total > 0 {
		res.Coverage = float64(valid) / float64(total)
	}
	return res
}

func emptyFingering() [][]int {
	out := make([][]int, theory.NumStrings)
	for i := range out {
		out[i] = []int{}
	}
	return out
}
