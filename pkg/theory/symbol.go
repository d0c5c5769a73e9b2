package theory

import (
	"fmt"
	"strings"
)

// ChordSymbol is the parsed form of a chord-symbol string such as
// "F#m7b5/A". Instances are built only by ParseChordSymbol and treated as
// immutable by every consumer.
type ChordSymbol struct {
	// Root is the chord root pitch class.
	Root PitchClass
	// RootName preserves the spelling the caller used (case-normalized),
	// so enharmonic context survives lookup and rendering.
	RootName string
	// Quality is the canonical quality id.
	Quality Quality
	// Recognized is false when the quality token fell back to major.
	Recognized bool
	// Bass is the slash-bass pitch class, if any.
	Bass *PitchClass
	// BassName is the slash-bass spelling as written, if any.
	BassName string
}

// ParseChordSymbol splits a chord symbol into root, quality, and optional
// slash bass. The root is the longest valid note-name prefix (two characters
// when an accidental follows). The quality never fails to resolve; only an
// unparseable root returns an error, which is a client input-validation
// concern rather than an engine fallback case.
func ParseChordSymbol(s string) (ChordSymbol, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ChordSymbol{}, fmt.Errorf("empty chord symbol")
	}

	rootName, rest := splitRoot(trimmed)
	root, ok := NoteToValue(rootName)
	if !ok {
		return ChordSymbol{}, fmt.Errorf("invalid chord root in %q", s)
	}

	sym := ChordSymbol{
		Root:     root,
		RootName: capitalizeNote(rootName),
	}

	qualityToken := rest
	// A slash segment is a bass note only when it actually parses as one;
	// "Cm/maj7" keeps its slash inside the quality token.
	if idx := strings.Index(rest, "/"); idx >= 0 {
		candidate := strings.TrimSpace(rest[idx+1:])
		if bass, ok := NoteToValue(candidate); ok {
			qualityToken = rest[:idx]
			sym.Bass = &bass
			sym.BassName = capitalizeNote(candidate)
		}
	}

	res := ResolveQuality(qualityToken)
	sym.Quality = res.Normalized
	sym.Recognized = res.Recognized
	return sym, nil
}

// splitRoot peels the note-name prefix off a chord symbol: two characters
// when a sharp or flat accidental follows the letter, otherwise one.
func splitRoot(s string) (root, rest string) {
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		return s[:2], s[2:]
	}
	return s[:1], s[1:]
}
