package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "osenotify"

var (
	// MessagesReceived counts raw frames read from each feed.
	MessagesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_received_total",
		Help:      "Raw messages read from each upstream feed.",
	}, []string{"source"})

	// ParseErrors counts frames that failed to decode.
	ParseErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parse_errors_total",
		Help:      "Messages that could not be decoded.",
	}, []string{"source"})

	// EventsSkipped counts well-formed frames that carry no actionable
	// alert: cancellations, drills and keepalive payloads.
	EventsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_skipped_total",
		Help:      "Valid messages skipped as non-alerts (cancels, drills, keepalives).",
	}, []string{"source"})

	// EventsBelowThreshold counts normalized events under their source's
	// trigger level.
	EventsBelowThreshold = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_below_threshold_total",
		Help:      "Events whose severity did not reach the configured threshold.",
	}, []string{"source"})

	// Triggers counts accepted triggers.
	Triggers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "triggers_total",
		Help:      "Qualifying events accepted by the trigger gate.",
	}, []string{"source"})

	// TriggersDenied counts qualifying events the gate turned away, by reason.
	TriggersDenied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "triggers_denied_total",
		Help:      "Qualifying events denied by the trigger gate.",
	}, []string{"source", "reason"})

	// NotificationsSent counts successfully delivered notifications.
	NotificationsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Notifications delivered to the push endpoint.",
	})

	// NotificationFailures counts notifications dropped after the retry budget.
	NotificationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Notifications abandoned after exhausting delivery attempts.",
	})

	// NotificationsDropped counts notifications evicted from a full queue.
	NotificationsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Notifications dropped because the dispatch queue was full.",
	})

	// Reconnects counts feed reconnection attempts after a lost connection.
	Reconnects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_reconnects_total",
		Help:      "Reconnections after a feed connection was lost.",
	}, []string{"source"})

	// FeedConnected reports per-feed connection state (1 connected, 0 not).
	FeedConnected = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_connected",
		Help:      "Whether the feed connection is currently established.",
	}, []string{"source"})

	// MonitoringEnabled reports the gate's pause switch (1 running, 0 paused).
	MonitoringEnabled = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "monitoring_enabled",
		Help:      "Whether triggering is currently enabled.",
	})
)

func init() {
	prometheus.MustRegister(
		MessagesReceived,
		ParseErrors,
		EventsSkipped,
		EventsBelowThreshold,
		Triggers,
		TriggersDenied,
		NotificationsSent,
		NotificationFailures,
		NotificationsDropped,
		Reconnects,
		FeedConnected,
		MonitoringEnabled,
	)
}
