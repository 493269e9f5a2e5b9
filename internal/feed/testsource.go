package feed

import (
	"encoding/json"
	"fmt"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// testMessage is the synthetic frame accepted by the ops test endpoint.
// Every field is optional; an empty body exercises the bare trigger path.
type testMessage struct {
	Place     string `json:"place"`
	Magnitude any    `json:"magnitude"`
	Depth     any    `json:"depth"`
	Intensity any    `json:"intensity"`
	EventID   string `json:"event_id"`
}

// DecodeTest normalizes a synthetic frame. Test events always qualify at
// the evaluator, so the decoded severity is informational only.
func DecodeTest(raw []byte) (alert.Event, bool, error) {
	m := testMessage{Place: "synthetic test"}
	if err := json.Unmarshal(raw, &m); err != nil {
		return alert.Event{}, false, fmt.Errorf("test: parse: %w", err)
	}
	return alert.Event{
		Source:    alert.SourceTest,
		ID:        m.EventID,
		Severity:  alert.EpiIntensity(asFloat(m.Intensity)),
		Place:     m.Place,
		Magnitude: asString(m.Magnitude),
		Depth:     asString(m.Depth),
	}, true, nil
}
