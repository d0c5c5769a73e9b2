package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveQuality(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		normalized Quality
		recognized bool
	}{
		{"empty is major", "", QualityMajor, true},
		{"bare m", "m", QualityMinor, true},
		{"min alias", "min", QualityMinor, true},
		{"dash minor", "-", QualityMinor, true},
		{"dominant", "7", QualityDom7, true},
		{"maj7", "maj7", QualityMaj7, true},
		{"delta glyph", "∆", QualityMaj7, true},
		{"delta seven", "∆7", QualityMaj7, true},
		{"greek delta folds", "Δ7", QualityMaj7, true},
		{"half diminished glyph", "ø", QualityMin7b5, true},
		{"half diminished spelled", "m7b5", QualityMin7b5, true},
		{"diminished glyph", "°", QualityDim, true},
		{"dim7 glyph", "°7", QualityDim7, true},
		{"slash maj7", "min/maj7", QualityMinMaj7, true},
		{"paren maj7", "m(maj7)", QualityMinMaj7, true},
		{"uppercase folds", "MAJ7", QualityMaj7, true},
		{"spaced", "  sus4 ", QualitySus4, true},
		{"aug plus", "+", QualityAug, true},
		{"altered dominant", "7#9", QualityDom7Sh9, true},
		{"unknown token", "mystery", QualityMajor, false},
		{"unknown symbolic", "?!", QualityMajor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveQuality(tt.token)
			assert.Equal(t, tt.normalized, res.Normalized)
			assert.Equal(t, tt.recognized, res.Recognized)
		})
	}
}

func TestResolveQuality_AlterationOrderIndependent(t *testing.T) {
	pairs := [][2]string{
		{"7#9b13", "7b13#9"},
		{"7#5b9", "7b9#5"},
	}

	for _, pair := range pairs {
		a := ResolveQuality(pair[0])
		b := ResolveQuality(pair[1])
		require.True(t, a.Recognized, "expected %q to resolve", pair[0])
		require.True(t, b.Recognized, "expected %q to resolve", pair[1])
		assert.Equal(t, a.Normalized, b.Normalized,
			"%q and %q should normalize identically", pair[0], pair[1])
	}
}

func TestIntervals(t *testing.T) {
	require.Equal(t, []int{0, 4, 7}, Intervals(QualityMajor))
	require.Equal(t, []int{0, 3, 6, 9}, Intervals(QualityDim7))
	require.Equal(t, []int{0, 3, 6, 10}, Intervals(QualityMin7b5))

	// Unknown hand-built quality falls back to the major triad.
	require.Equal(t, []int{0, 4, 7}, Intervals(Quality("nonsense")))
}

func TestEveryQualityHasIntervals(t *testing.T) {
	for _, q := range Qualities() {
		iv := Intervals(q)
		require.NotEmpty(t, iv, "quality %q has no intervals", q)
		assert.Equal(t, 0, iv[0], "quality %q must start at the root", q)
		for _, offset := range iv {
			assert.GreaterOrEqual(t, offset, 0, "quality %q has a negative offset", q)
		}
	}
}

func TestIntervalsReturnsCopy(t *testing.T) {
	iv := Intervals(QualityMajor)
	iv[0] = 99
	require.Equal(t, []int{0, 4, 7}, Intervals(QualityMajor))
}
