package feed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// jmaMessage mirrors the JMA early-warning wire format. Tags follow the
// upstream JSON byte for byte, including its "Magunitude" spelling. Value
// fields are typed any because the feed switches between strings and
// numbers across report revisions.
type jmaMessage struct {
	IsCancel      bool `json:"isCancel"`
	IsTraining    bool `json:"isTraining"`
	IsAssumption  bool `json:"isAssumption"`
	MaxIntensity  any  `json:"MaxIntensity"`
	Hypocenter    any  `json:"Hypocenter"`
	Magnitude     any  `json:"Magunitude"`
	Depth         any  `json:"Depth"`
	AnnouncedTime any  `json:"AnnouncedTime"`
	EventID       any  `json:"EventID"`
}

// DecodeJMA normalizes one JMA frame. Cancellations, drills and
// assumption-only reports are skipped, not errors.
func DecodeJMA(raw []byte) (alert.Event, bool, error) {
	var m jmaMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return alert.Event{}, false, fmt.Errorf("jma: parse: %w", err)
	}
	if m.IsCancel || m.IsTraining || m.IsAssumption {
		return alert.Event{}, false, nil
	}

	label := strings.TrimSpace(asString(m.MaxIntensity))
	return alert.Event{
		Source:      alert.SourceJMA,
		ID:          asString(m.EventID),
		Severity:    alert.Intensity(label),
		Place:       asString(m.Hypocenter),
		Magnitude:   asString(m.Magnitude),
		Depth:       asString(m.Depth),
		AnnouncedAt: asString(m.AnnouncedTime),
	}, true, nil
}
