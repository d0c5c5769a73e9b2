package voicing

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/pkg/theory"
)

// IssueKind classifies library-integrity findings.
type IssueKind string

const (
	// IssueWrongNote: a voicing sounds a pitch class foreign to its
	// chord's interval set. The one genuine defect class.
	IssueWrongNote IssueKind = "wrong_note"
	// IssueBadFormat: structural problems (wrong string count, negative
	// frets, movable pattern with no fretted note).
	IssueBadFormat IssueKind = "bad_format"
	// IssueBadRoot: an entry root spelling the pitch model does not know.
	IssueBadRoot IssueKind = "bad_root"
	// IssueOutOfRange: a voicing reaches past the playable-range ceiling.
	IssueOutOfRange IssueKind = "out_of_range"
)

// Issue is one finding against a curated entry.
type Issue struct {
	Root         string
	Quality      theory.Quality
	VoicingIndex int
	Kind         IssueKind
	ForeignNotes []string
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s%s voicing %d: %s", i.Root, i.Quality, i.VoicingIndex, i.Kind)
	if len(i.ForeignNotes) > 0 {
		s += " (" + strings.Join(i.ForeignNotes, ", ") + ")"
	}
	return s
}

// Report is the outcome of a full library integrity check.
type Report struct {
	EntriesChecked  int
	VoicingsChecked int
	Issues          []Issue
}

// OK reports whether the library passed with zero findings.
func (r Report) OK() bool { return len(r.Issues) == 0 }

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "checked %d entries, %d voicings, %d issues",
		r.EntriesChecked, r.VoicingsChecked, len(r.Issues))
	for _, issue := range r.Issues {
		b.WriteString("\n  " + issue.String())
	}
	return b.String()
}

// ValidateVoicingFormat is the structural check: exactly six string
// entries, no negative fret numbers, and a movable pattern must fret at
// least one string. Boolean by design; it never panics on bad data.
func ValidateVoicingFormat(v ChordVoicing) bool {
	if len(v.Frets) != theory.NumStrings {
		return false
	}
	if v.FirstFret < 0 {
		return false
	}
	fretted := false
	for _, f := range v.Frets {
		if f != Muted && f < 0 {
			return false
		}
		if f > 0 {
			fretted = true
		}
	}
	if v.FirstFret > 0 && !fretted {
		return false
	}
	return true
}

// ValidateChordLibrary checks every curated entry: each voicing's realized
// pitch-class set must be a subset of the quality's interval set transposed
// to the entry root. Partial and rootless voicings pass; any foreign pitch
// class is a wrong-note error. Used by theorycheck and the tests, never by
// the request path.
// ValidatePlayableRange reports curated voicings whose effective frets
// exceed maxFret. theorycheck runs this with the configured ceiling, so
// lowering MAX_FRET flags shapes a shorter neck cannot reach.
func ValidatePlayableRange(maxFret int) Report {
	load()
	var r Report

	for _, e := range entries {
		r.EntriesChecked++
		for i, v := range e.Voicings {
			r.VoicingsChecked++
			for s := range v.Frets {
				ef := v.EffectiveFret(s)
				if ef.IsMuted() {
					continue
				}
				if int(ef) > maxFret {
					r.Issues = append(r.Issues, Issue{
						Root: e.Root, Quality: e.Quality, VoicingIndex: i, Kind: IssueOutOfRange,
					})
					break
				}
			}
		}
	}
	return r
}

func ValidateChordLibrary() Report {
	load()
	var r Report

	for _, e := range entries {
		r.EntriesChecked++
		root, ok := theory.NoteToValue(e.Root)
		if !ok {
			r.Issues = append(r.Issues, Issue{
				Root: e.Root, Quality: e.Quality, VoicingIndex: -1, Kind: IssueBadRoot,
			})
			continue
		}

		expected := make(map[theory.PitchClass]bool)
		for _, offset := range theory.Intervals(e.Quality) {
			expected[theory.PitchClass((int(root)+offset)%12)] = true
		}

		for i, v := range e.Voicings {
			r.VoicingsChecked++
			if !ValidateVoicingFormat(v) {
				r.Issues = append(r.Issues, Issue{
					Root: e.Root, Quality: e.Quality, VoicingIndex: i, Kind: IssueBadFormat,
				})
				continue
			}
			var foreign []string
			for _, pc := range v.RealizedPitchClasses() {
				if !expected[pc] {
					foreign = append(foreign, theory.ValueToNote(pc))
				}
			}
			if len(foreign) > 0 {
				r.Issues = append(r.Issues, Issue{
					Root: e.Root, Quality: e.Quality, VoicingIndex: i,
					Kind: IssueWrongNote, ForeignNotes: foreign,
				})
			}
		}
	}
	return r
}
