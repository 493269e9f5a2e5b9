package notify

import (
	"fmt"
	"strings"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// AlertPriority marks earthquake warnings as intrusive on Gotify clients.
const AlertPriority = 10

// Notification is one push message, consumed exactly once by the dispatcher.
// The JSON layout is the Gotify message body.
type Notification struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// ForEvent renders the notification for an accepted trigger.
func ForEvent(ev alert.Event) Notification {
	lines := []string{
		"Source: " + ev.Source.DisplayName(),
		"Place: " + ev.Place,
		severityLine(ev),
		fmt.Sprintf("Magnitude: M%s   Depth: %s km", ev.Magnitude, ev.Depth),
		timeLine(ev),
		"Event ID: " + ev.ID,
	}
	return Notification{
		Title:    "⚠️ Strong earthquake warning",
		Message:  strings.Join(lines, "\n"),
		Priority: AlertPriority,
	}
}

func severityLine(ev alert.Event) string {
	switch ev.Source {
	case alert.SourceJMA:
		return "Max intensity: " + ev.Severity.String()
	default:
		return "Estimated intensity: " + ev.Severity.String()
	}
}

// timeLine prefers the announcement time; the CEA feed only carries the
// origin time.
func timeLine(ev alert.Event) string {
	if ev.AnnouncedAt != "" {
		return "Announced: " + ev.AnnouncedAt
	}
	return "Origin time: " + ev.OccurredAt
}
