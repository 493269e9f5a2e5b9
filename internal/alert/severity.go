package alert

import "strconv"

// RankUnknown is the rank of a JMA intensity label outside the scale.
// An event carrying an unknown label never reaches any threshold.
const RankUnknown = -1

// jmaRanks orders the JMA intensity scale from weakest to strongest. The
// 弱/強 (lower/upper) steps of levels 5 and 6 are distinct ranks.
var jmaRanks = map[string]int{
	"0":  0,
	"1":  1,
	"2":  2,
	"3":  3,
	"4":  4,
	"5弱": 5,
	"5強": 6,
	"6弱": 7,
	"6強": 8,
	"7":  9,
}

// Severity is the source-specific strength classification of an event.
// There are exactly two concrete representations: Intensity for the JMA
// ordinal scale and EpiIntensity for the CEA continuous scale. The
// evaluator switches on them per source; no severity value is ever compared
// across scales.
type Severity interface {
	String() string
}

// Intensity is a JMA seismic intensity label ("4", "5弱", "7", ...).
type Intensity string

// Rank maps the label onto the ordinal scale, RankUnknown if unmapped.
// Labels are compared by rank, never lexically.
func (i Intensity) Rank() int {
	if r, ok := jmaRanks[string(i)]; ok {
		return r
	}
	return RankUnknown
}

func (i Intensity) String() string { return string(i) }

// KnownIntensity reports whether label is on the JMA scale. Config
// validation uses it to reject thresholds that could never match.
func KnownIntensity(label string) bool {
	_, ok := jmaRanks[label]
	return ok
}

// EpiIntensity is a CEA estimated epicentral intensity.
type EpiIntensity float64

func (e EpiIntensity) String() string {
	return strconv.FormatFloat(float64(e), 'f', -1, 64)
}
