package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/OfkoloBai/Osenotify/internal/feed"
	"github.com/OfkoloBai/Osenotify/internal/metrics"
	"github.com/OfkoloBai/Osenotify/internal/trigger"
)

// State is the supervisor's lifecycle state.
type State int

const (
	// StateRunning means feeds are connected and triggering is live.
	StateRunning State = iota

	// StatePaused means feeds stay connected but nothing triggers.
	StatePaused

	// StateStopping means shutdown has begun. It is terminal.
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Supervisor owns every long-running piece of the pipeline: one connector
// per feed plus the periodic housekeeping task. Pausing flips the trigger
// gate's switch while the feed connections stay up, so no upstream frames
// are lost during maintenance. Stopping is cooperative through context
// cancellation and cannot be reversed.
type Supervisor struct {
	gate       *trigger.Gate
	connectors []*feed.Connector
	housekeep  func()
	interval   time.Duration

	mu    sync.Mutex
	state State
}

// New creates a Supervisor in the running state. housekeep may be nil when
// no periodic task is configured; interval is ignored then.
func New(gate *trigger.Gate, connectors []*feed.Connector, housekeep func(), interval time.Duration) *Supervisor {
	metrics.MonitoringEnabled.Set(1)
	return &Supervisor{
		gate:       gate,
		connectors: connectors,
		housekeep:  housekeep,
		interval:   interval,
		state:      StateRunning,
	}
}

// Run starts every connector and the housekeeping ticker, then blocks until
// ctx is cancelled and all of them have wound down.
func (s *Supervisor) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, c := range s.connectors {
		wg.Add(1)
		go func(c *feed.Connector) {
			defer wg.Done()
			c.Run(ctx)
		}(c)
	}

	if s.housekeep != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runHousekeeping(ctx)
		}()
	}

	<-ctx.Done()
	s.mu.Lock()
	s.state = StateStopping
	s.mu.Unlock()
	slog.Info("supervisor: stopping")

	wg.Wait()
}

// Pause suspends triggering until Resume. A pause during shutdown is a
// no-op.
func (s *Supervisor) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	s.gate.SetEnabled(false)
	metrics.MonitoringEnabled.Set(0)
	slog.Info("supervisor: monitoring paused")
}

// Resume lifts a pause. Any other state is a no-op.
func (s *Supervisor) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused {
		return
	}
	s.state = StateRunning
	s.gate.SetEnabled(true)
	metrics.MonitoringEnabled.Set(1)
	slog.Info("supervisor: monitoring resumed")
}

// State reports the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) runHousekeeping(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.housekeep()
		}
	}
}
