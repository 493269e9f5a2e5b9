package feed

import (
	"encoding/json"
	"fmt"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// ceaMessage mirrors the CEA wire format: the alert payload sits under a
// Data key, which status and heartbeat frames omit or send empty.
type ceaMessage struct {
	Data *ceaData `json:"Data"`
}

type ceaData struct {
	PlaceName    any `json:"placeName"`
	Magnitude    any `json:"magnitude"`
	Depth        any `json:"depth"`
	ShockTime    any `json:"shockTime"`
	EventID      any `json:"eventId"`
	EpiIntensity any `json:"epiIntensity"`
}

// DecodeCEA normalizes one CEA frame. A frame whose Data payload is absent
// or empty is a heartbeat, not an error. A non-numeric epiIntensity becomes
// 0, so it can never reach a positive threshold.
func DecodeCEA(raw []byte) (alert.Event, bool, error) {
	var m ceaMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return alert.Event{}, false, fmt.Errorf("cea: parse: %w", err)
	}
	if m.Data == nil || *m.Data == (ceaData{}) {
		return alert.Event{}, false, nil
	}

	d := m.Data
	return alert.Event{
		Source:     alert.SourceCEA,
		ID:         asString(d.EventID),
		Severity:   alert.EpiIntensity(asFloat(d.EpiIntensity)),
		Place:      asString(d.PlaceName),
		Magnitude:  asString(d.Magnitude),
		Depth:      asString(d.Depth),
		OccurredAt: asString(d.ShockTime),
	}, true, nil
}
