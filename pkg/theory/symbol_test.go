package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChordSymbol(t *testing.T) {
	tests := []struct {
		name       string
		symbol     string
		root       int
		rootName   string
		quality    Quality
		recognized bool
		bass       int // -1 when absent
	}{
		{"plain major", "C", 0, "C", QualityMajor, true, -1},
		{"minor", "Em", 4, "E", QualityMinor, true, -1},
		{"sharp root", "F#m7b5", 6, "F#", QualityMin7b5, true, -1},
		{"flat root keeps spelling", "Bbmaj7", 10, "Bb", QualityMaj7, true, -1},
		{"slash bass", "F#m7b5/A", 6, "F#", QualityMin7b5, true, 9},
		{"slash bass on triad", "C/G", 0, "C", QualityMajor, true, 7},
		{"slash quality is not bass", "Cm/maj7", 0, "C", QualityMinMaj7, true, -1},
		{"unknown quality falls back", "Cxyz", 0, "C", QualityMajor, false, -1},
		{"lowercase root", "gm7", 7, "G", QualityMin7, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, err := ParseChordSymbol(tt.symbol)
			require.NoError(t, err)

			assert.Equal(t, PitchClass(tt.root), sym.Root)
			assert.Equal(t, tt.rootName, sym.RootName)
			assert.Equal(t, tt.quality, sym.Quality)
			assert.Equal(t, tt.recognized, sym.Recognized)

			if tt.bass < 0 {
				assert.Nil(t, sym.Bass)
			} else {
				require.NotNil(t, sym.Bass)
				assert.Equal(t, PitchClass(tt.bass), *sym.Bass)
			}
		})
	}
}

func TestParseChordSymbol_InvalidRoot(t *testing.T) {
	for _, symbol := range []string{"", "   ", "H7", "#m", "1maj7"} {
		_, err := ParseChordSymbol(symbol)
		assert.Error(t, err, "expected error for %q", symbol)
	}
}
