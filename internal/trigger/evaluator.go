package trigger

import "github.com/OfkoloBai/Osenotify/internal/alert"

// Thresholds holds the per-source trigger levels, fixed at startup.
type Thresholds struct {
	// JMA is the minimum intensity label that triggers.
	JMA alert.Intensity

	// CEA is the minimum estimated epicentral intensity that triggers.
	CEA float64
}

// Evaluator decides whether an event's severity reaches its source's
// configured threshold. It has no state beyond the thresholds and no side
// effects; gating is the Gate's job.
type Evaluator struct {
	jmaRank int
	cea     float64
}

// NewEvaluator builds an Evaluator from validated thresholds.
func NewEvaluator(t Thresholds) *Evaluator {
	return &Evaluator{jmaRank: t.JMA.Rank(), cea: t.CEA}
}

// Qualifies reports whether ev meets its source's threshold.
//
// JMA severities compare by ordinal rank; a label outside the scale never
// qualifies. CEA severities compare numerically, boundary inclusive. Test
// events always qualify so the synthetic path exercises the gate itself.
// A severity of the wrong representation for the source never qualifies.
func (e *Evaluator) Qualifies(ev alert.Event) bool {
	switch ev.Source {
	case alert.SourceJMA:
		sev, ok := ev.Severity.(alert.Intensity)
		if !ok {
			return false
		}
		r := sev.Rank()
		return r != alert.RankUnknown && r >= e.jmaRank

	case alert.SourceCEA:
		sev, ok := ev.Severity.(alert.EpiIntensity)
		if !ok {
			return false
		}
		return float64(sev) >= e.cea

	case alert.SourceTest:
		return true

	default:
		return false
	}
}
