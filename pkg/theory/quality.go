package theory

import (
	"regexp"
	"sort"
	"strings"
)

// Quality is a canonical chord quality identifier. Downstream code (the
// voicing library, the cache key builder) only ever sees values from this
// closed set; raw user tokens stop at ResolveQuality.
type Quality string

const (
	QualityMajor      Quality = "major"
	QualityMinor      Quality = "minor"
	QualityDom7       Quality = "7"
	QualityMaj7       Quality = "maj7"
	QualityMin7       Quality = "m7"
	QualityMin7b5     Quality = "m7b5"
	QualityDim        Quality = "dim"
	QualityDim7       Quality = "dim7"
	QualityAug        Quality = "aug"
	QualitySus2       Quality = "sus2"
	QualitySus4       Quality = "sus4"
	Quality7Sus4      Quality = "7sus4"
	QualityMaj6       Quality = "6"
	QualityMin6       Quality = "m6"
	QualityDom9       Quality = "9"
	QualityMaj9       Quality = "maj9"
	QualityMin9       Quality = "m9"
	QualityDom11      Quality = "11"
	QualityMin11      Quality = "m11"
	QualityDom13      Quality = "13"
	QualityAdd9       Quality = "add9"
	QualityMinMaj7    Quality = "minmaj7"
	QualityDom7Sh9    Quality = "7#9"
	QualityDom7Fl9    Quality = "7b9"
	QualityDom7Sh5    Quality = "7#5"
	QualityDom7Fl5    Quality = "7b5"
	QualityDom7Sh5b9  Quality = "7#5b9"
	QualityDom7Sh9b13 Quality = "7#9b13"
)

// qualityIntervals maps each canonical quality to its semitone offsets from
// the root. Offset 0 is always present. Extended qualities omit the fifth
// where common practice does.
var qualityIntervals = map[Quality][]int{
	QualityMajor:      {0, 4, 7},
	QualityMinor:      {0, 3, 7},
	QualityDom7:       {0, 4, 7, 10},
	QualityMaj7:       {0, 4, 7, 11},
	QualityMin7:       {0, 3, 7, 10},
	QualityMin7b5:     {0, 3, 6, 10},
	QualityDim:        {0, 3, 6},
	QualityDim7:       {0, 3, 6, 9},
	QualityAug:        {0, 4, 8},
	QualitySus2:       {0, 2, 7},
	QualitySus4:       {0, 5, 7},
	Quality7Sus4:      {0, 5, 7, 10},
	QualityMaj6:       {0, 4, 7, 9},
	QualityMin6:       {0, 3, 7, 9},
	QualityDom9:       {0, 4, 7, 10, 2},
	QualityMaj9:       {0, 4, 7, 11, 2},
	QualityMin9:       {0, 3, 7, 10, 2},
	QualityDom11:      {0, 4, 7, 10, 2, 5},
	QualityMin11:      {0, 3, 7, 10, 2, 5},
	QualityDom13:      {0, 4, 7, 10, 2, 9},
	QualityAdd9:       {0, 4, 7, 2},
	QualityMinMaj7:    {0, 3, 7, 11},
	QualityDom7Sh9:    {0, 4, 7, 10, 3},
	QualityDom7Fl9:    {0, 4, 7, 10, 1},
	QualityDom7Sh5:    {0, 4, 8, 10},
	QualityDom7Fl5:    {0, 4, 6, 10},
	QualityDom7Sh5b9:  {0, 4, 8, 10, 1},
	QualityDom7Sh9b13: {0, 4, 10, 3, 8},
}

// qualityAliases maps case-folded input tokens to canonical qualities.
// Compound alteration tokens are stored pre-canonicalized (see
// canonicalizeAlterations); input goes through the same canonicalization
// before lookup, so "7b13#9" and "7#9b13" land on the same entry.
var qualityAliases = map[string]Quality{
	"":          QualityMajor,
	"major":     QualityMajor,
	"maj":       QualityMajor,
	"m":         QualityMinor,
	"min":       QualityMinor,
	"minor":     QualityMinor,
	"-":         QualityMinor,
	"7":         QualityDom7,
	"dom7":      QualityDom7,
	"dominant7": QualityDom7,
	"maj7":      QualityMaj7,
	"major7":    QualityMaj7,
	"∆":         QualityMaj7,
	"∆7":        QualityMaj7,
	"δ":         QualityMaj7,
	"δ7":        QualityMaj7,
	"m7":        QualityMin7,
	"min7":      QualityMin7,
	"minor7":    QualityMin7,
	"-7":        QualityMin7,
	"m7b5":      QualityMin7b5,
	"min7b5":    QualityMin7b5,
	"ø":         QualityMin7b5,
	"ø7":        QualityMin7b5,
	"dim":       QualityDim,
	"°":         QualityDim,
	"dim7":      QualityDim7,
	"°7":        QualityDim7,
	"o7":        QualityDim7,
	"aug":       QualityAug,
	"+":         QualityAug,
	"sus2":      QualitySus2,
	"sus":       QualitySus4,
	"sus4":      QualitySus4,
	"7sus":      Quality7Sus4,
	"7sus4":     Quality7Sus4,
	"6":         QualityMaj6,
	"maj6":      QualityMaj6,
	"m6":        QualityMin6,
	"min6":      QualityMin6,
	"9":         QualityDom9,
	"maj9":      QualityMaj9,
	"∆9":        QualityMaj9,
	"δ9":        QualityMaj9,
	"m9":        QualityMin9,
	"min9":      QualityMin9,
	"11":        QualityDom11,
	"m11":       QualityMin11,
	"min11":     QualityMin11,
	"13":        QualityDom13,
	"add9":      QualityAdd9,
	"add2":      QualityAdd9,
	"mmaj7":     QualityMinMaj7,
	"m(maj7)":   QualityMinMaj7,
	"minmaj7":   QualityMinMaj7,
	"min/maj7":  QualityMinMaj7,
	"m/maj7":    QualityMinMaj7,
	"-∆":        QualityMinMaj7,
	"7#9":       QualityDom7Sh9,
	"7(#9)":     QualityDom7Sh9,
	"7b9":       QualityDom7Fl9,
	"7(b9)":     QualityDom7Fl9,
	"7#5":       QualityDom7Sh5,
	"aug7":      QualityDom7Sh5,
	"7+5":       QualityDom7Sh5,
	"7b5":       QualityDom7Fl5,
	"7-5":       QualityDom7Fl5,
	"7#5b9":     QualityDom7Sh5b9,
	"7#9b13":    QualityDom7Sh9b13,
}

// Resolution is the outcome of quality normalization. Normalized is always
// usable; Recognized tells callers whether the token was actually known so
// they can hint at the fallback without interrupting the flow.
type Resolution struct {
	Normalized Quality
	Recognized bool
}

// ResolveQuality normalizes a chord-quality token. Unrecognized tokens fall
// back to major with Recognized=false; this never fails.
func ResolveQuality(token string) Resolution {
	folded := strings.ToLower(strings.TrimSpace(token))
	folded = canonicalizeAlterations(folded)
	if q, ok := qualityAliases[folded]; ok {
		return Resolution{Normalized: q, Recognized: true}
	}
	return Resolution{Normalized: QualityMajor, Recognized: false}
}

// Intervals returns a copy of the semitone offsets for a canonical quality.
// Unknown values (which only arise from hand-built Quality strings, never
// from ResolveQuality) get the major triad.
func Intervals(q Quality) []int {
	iv, ok := qualityIntervals[q]
	if !ok {
		iv = qualityIntervals[QualityMajor]
	}
	out := make([]int, len(iv))
	copy(out, iv)
	return out
}

// Qualities returns every canonical quality id, sorted, for tooling that
// iterates the closed set.
func Qualities() []Quality {
	out := make([]Quality, 0, len(qualityIntervals))
	for q := range qualityIntervals {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var alterationRun = regexp.MustCompile(`^((?:[#b]\d{1,2})+)$`)
var singleAlteration = regexp.MustCompile(`[#b]\d{1,2}`)

// canonicalizeAlterations rewrites a trailing run of stacked alterations
// into a fixed order (ascending degree, flat before sharp on ties) so that
// "7b13#9" and "7#9b13" resolve identically. Tokens without a stacked run
// pass through untouched.
func canonicalizeAlterations(token string) string {
	// Find the shortest suffix that is purely an alteration run of two or
	// more entries; single alterations ("m7b5", "7#9") are already in the
	// alias table as written.
	for i := 0; i < len(token); i++ {
		suffix := token[i:]
		if !alterationRun.MatchString(suffix) {
			continue
		}
		alts := singleAlteration.FindAllString(suffix, -1)
		if len(alts) < 2 {
			return token
		}
		sort.Slice(alts, func(a, b int) bool {
			da, db := altDegree(alts[a]), altDegree(alts[b])
			if da != db {
				return da < db
			}
			return alts[a][0] == 'b' && alts[b][0] == '#'
		})
		return token[:i] + strings.Join(alts, "")
	}
	return token
}

func altDegree(alt string) int {
	n := 0
	for _, r := range alt[1:] {
		n = n*10 + int(r-'0')
	}
	return n
}
