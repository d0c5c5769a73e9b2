package voicing

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Conceptual-Machines/magda-theory/pkg/embedded"
	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

type entryKey struct {
	root    string
	quality theory.Quality
}

type chordEntry struct {
	Root     string         `yaml:"root"`
	Quality  theory.Quality `yaml:"quality"`
	Voicings []ChordVoicing `yaml:"voicings"`
}

type libraryFile struct {
	Chords []chordEntry `yaml:"chords"`
}

var (
	loadOnce sync.Once
	table    map[entryKey][]ChordVoicing
	entries  []chordEntry
)

// load parses the embedded curated library exactly once. The data ships
// inside the binary, so a parse failure is a build defect, not a runtime
// condition.
func load() {
	loadOnce.Do(func() {
		var f libraryFile
		if err := yaml.Unmarshal(embedded.VoicingsYAML, &f); err != nil {
			panic(fmt.Sprintf("voicing: embedded library is malformed: %v", err))
		}
		entries = f.Chords
		table = make(map[entryKey][]ChordVoicing, len(entries))
		for _, e := range entries {
			table[entryKey{theory.NormalizeRoot(e.Root), e.Quality}] = e.Voicings
		}
	})
}

// GetVoicings resolves a chord-symbol string to an ordered, never-empty
// voicing list. The lookup keys on the canonical root spelling, so every
// pitch-class-equivalent spelling (Db, and the theoretical Cb/Fb/E#/B#)
// lands on the same curated entry. Missing pairs fall through to
// transposition of a curated shape for the same quality, then a fully
// muted placeholder.
func GetVoicings(symbol string) []ChordVoicing {
	sym, err := theory.ParseChordSymbol(symbol)
	if err != nil {
		return []ChordVoicing{mutedPlaceholder()}
	}
	load()

	if vs, ok := table[entryKey{theory.NormalizeRoot(sym.RootName), sym.Quality}]; ok {
		return cloneVoicings(vs)
	}
	if v, ok := transposedVoicing(sym.Root, sym.Quality); ok {
		return []ChordVoicing{v}
	}
	return []ChordVoicing{mutedPlaceholder()}
}

// transposedVoicing shifts curated shapes of the same quality from any
// other root to the requested one and keeps the lowest-position candidate
// whose frets stay within the playable range.
func transposedVoicing(target theory.PitchClass, quality theory.Quality) (ChordVoicing, bool) {
	var best ChordVoicing
	bestPos := -1

	for _, e := range entries {
		if e.Quality != quality {
			continue
		}
		src, ok := theory.NoteToValue(e.Root)
		if !ok {
			continue
		}
		delta := (int(target) - int(src) + 12) % 12
		if delta == 0 {
			continue
		}
		for _, v := range e.Voicings {
			for _, d := range []int{delta, delta - 12} {
				shifted, ok := shiftVoicing(v, d)
				if !ok {
					continue
				}
				if pos := shifted.position(); bestPos < 0 || pos < bestPos {
					best = shifted
					bestPos = pos
				}
			}
		}
	}
	return best, bestPos >= 0
}

// shiftVoicing transposes a shape by d semitones. Movable patterns shift
// via FirstFret; open shapes shift every fretted string. Candidates whose
// effective frets leave [0, MaxFret] are rejected.
func shiftVoicing(v ChordVoicing, d int) (ChordVoicing, bool) {
	out := ChordVoicing{Frets: make([]Fret, len(v.Frets)), FirstFret: v.FirstFret}
	copy(out.Frets, v.Frets)

	if v.FirstFret > 0 {
		out.FirstFret = v.FirstFret + d
		if out.FirstFret < 1 {
			return ChordVoicing{}, false
		}
	} else {
		for i, f := range out.Frets {
			if f.IsMuted() {
				continue
			}
			out.Frets[i] = f + Fret(d)
		}
	}

	for i := range out.Frets {
		ef := out.EffectiveFret(i)
		if ef.IsMuted() {
			continue
		}
		if ef < 0 || int(ef) > theory.MaxFret {
			return ChordVoicing{}, false
		}
	}
	return out, true
}

func cloneVoicings(vs []ChordVoicing) []ChordVoicing {
	out := make([]ChordVoicing, len(vs))
	for i, v := range vs {
		out[i] = ChordVoicing{Frets: make([]Fret, len(v.Frets)), FirstFret: v.FirstFret}
		copy(out[i].Frets, v.Frets)
	}
	return out
}
