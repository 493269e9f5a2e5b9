package monitor

import (
	"log/slog"

	"github.com/OfkoloBai/Osenotify/internal/alert"
	"github.com/OfkoloBai/Osenotify/internal/feed"
	"github.com/OfkoloBai/Osenotify/internal/metrics"
	"github.com/OfkoloBai/Osenotify/internal/notify"
	"github.com/OfkoloBai/Osenotify/internal/trigger"
)

// Enqueuer queues a notification for asynchronous delivery.
type Enqueuer interface {
	Enqueue(n notify.Notification)
}

// Pipeline runs one inbound frame through normalize, evaluate and gate, and
// enqueues a notification for every accepted trigger. One Pipeline serves
// all feeds: per-source ordering comes from each connector's read loop, and
// cross-source consistency from the gate's single critical section.
type Pipeline struct {
	evaluator  *trigger.Evaluator
	gate       *trigger.Gate
	dispatcher Enqueuer
}

// NewPipeline creates a Pipeline.
func NewPipeline(ev *trigger.Evaluator, gate *trigger.Gate, d Enqueuer) *Pipeline {
	return &Pipeline{evaluator: ev, gate: gate, dispatcher: d}
}

// Handle is installed as every connector's frame handler. The returned
// error reports decode failures only; the connector logs it and keeps the
// connection.
func (p *Pipeline) Handle(src alert.Source, raw []byte) error {
	// While paused, skip decode work entirely. The gate would deny anyway;
	// this keeps a noisy feed out of the logs during maintenance.
	if !p.gate.Enabled() {
		return nil
	}

	ev, ok, err := feed.DecoderFor(src)(raw)
	if err != nil {
		metrics.ParseErrors.WithLabelValues(src.String()).Inc()
		return err
	}
	if !ok {
		metrics.EventsSkipped.WithLabelValues(src.String()).Inc()
		slog.Debug("pipeline: frame skipped", "source", src.String())
		return nil
	}

	if !p.evaluator.Qualifies(ev) {
		metrics.EventsBelowThreshold.WithLabelValues(src.String()).Inc()
		slog.Info("pipeline: below threshold",
			"source", src.String(),
			"severity", ev.Severity.String(),
			"place", ev.Place,
			"event_id", ev.ID,
		)
		return nil
	}

	p.fire(ev)
	return nil
}

// TestFire pushes one synthetic frame through decode and the gate and
// reports the decision. It deliberately skips the pause short-circuit so a
// paused system answers the ops test endpoint with the paused denial.
func (p *Pipeline) TestFire(body []byte) (trigger.Decision, error) {
	ev, _, err := feed.DecodeTest(body)
	if err != nil {
		return 0, err
	}
	return p.fire(ev), nil
}

// fire offers a qualifying event to the gate and dispatches on acceptance.
func (p *Pipeline) fire(ev alert.Event) trigger.Decision {
	d := p.gate.TryAccept(ev)
	if d != trigger.Accepted {
		metrics.TriggersDenied.WithLabelValues(ev.Source.String(), d.String()).Inc()
		slog.Info("pipeline: trigger denied",
			"source", ev.Source.String(),
			"reason", d.String(),
			"event_id", ev.ID,
		)
		return d
	}

	metrics.Triggers.WithLabelValues(ev.Source.String()).Inc()
	slog.Warn("pipeline: trigger accepted",
		"source", ev.Source.String(),
		"severity", ev.Severity.String(),
		"place", ev.Place,
		"event_id", ev.ID,
	)
	p.dispatcher.Enqueue(notify.ForEvent(ev))
	return trigger.Accepted
}
