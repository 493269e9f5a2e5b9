package alert

// Source identifies one upstream seismic alert feed.
type Source int

const (
	// SourceJMA is the Japan Meteorological Agency early-warning feed.
	SourceJMA Source = iota
	// SourceCEA is the China Earthquake Administration early-warning feed.
	SourceCEA
	// SourceTest is the synthetic feed behind the ops test endpoint.
	SourceTest
)

// String returns the short feed name used in logs and metric labels.
func (s Source) String() string {
	switch s {
	case SourceJMA:
		return "jma"
	case SourceCEA:
		return "cea"
	case SourceTest:
		return "test"
	default:
		return "unknown"
	}
}

// DisplayName returns the long name used in notification text.
func (s Source) DisplayName() string {
	switch s {
	case SourceJMA:
		return "Japan Meteorological Agency (JMA)"
	case SourceCEA:
		return "China Earthquake Administration (CEA)"
	case SourceTest:
		return "Manual test"
	default:
		return "Unknown source"
	}
}

// Event is one normalized seismic alert. Events are value types and never
// mutated after decoding. ID may be empty when the upstream frame carries
// none; duplicate suppression then degrades to cooldown-only gating.
//
// Display fields stay strings end to end. The upstream feeds disagree on
// formats (and sometimes on types) for magnitude, depth and timestamps, and
// nothing downstream does arithmetic on them.
type Event struct {
	Source      Source
	ID          string
	Severity    Severity
	Place       string
	Magnitude   string
	Depth       string
	OccurredAt  string
	AnnouncedAt string
}
