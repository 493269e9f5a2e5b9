package trigger

import (
	"sync"
	"time"

	"github.com/OfkoloBai/Osenotify/internal/alert"
)

// Decision is the gate's verdict for one qualifying event.
type Decision int

const (
	// Accepted means the trigger may be dispatched. Gate state was updated.
	Accepted Decision = iota

	// DeniedPaused means monitoring is switched off.
	DeniedPaused

	// DeniedDuplicate means this event ID has already triggered.
	DeniedDuplicate

	// DeniedCooldown means an earlier trigger's quiet window is still open.
	DeniedCooldown
)

// String returns the label used in logs and the denial-reason metric.
func (d Decision) String() string {
	switch d {
	case Accepted:
		return "accepted"
	case DeniedPaused:
		return "paused"
	case DeniedDuplicate:
		return "duplicate"
	case DeniedCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Gate is the arbiter every ingestion path consults before dispatching a
// notification. One Gate is shared across all sources: an accepted trigger
// on any source opens the cooldown window for all of them.
//
// Gate is safe for concurrent use. One lock covers the checks and the state
// update together, so two concurrent evaluations can never both observe a
// closed window or an unseen event ID. No I/O happens under the lock;
// dispatch is the caller's business.
type Gate struct {
	cooldown time.Duration

	mu          sync.Mutex
	enabled     bool
	lastTrigger time.Time
	seen        *seenSet
	now         func() time.Time // injectable clock for tests
}

// NewGate creates a Gate with monitoring enabled and no triggers on record.
// Duplicate suppression remembers event IDs for ttl, capped at maxEntries.
func NewGate(cooldown, ttl time.Duration, maxEntries int) *Gate {
	return &Gate{
		cooldown: cooldown,
		enabled:  true,
		seen:     newSeenSet(maxEntries, ttl),
		now:      time.Now,
	}
}

// TryAccept decides whether ev may trigger. Checks run in fixed order:
// pause switch, duplicate ID, cooldown window. On Accepted the window
// restarts and a non-empty event ID is marked in the same critical section
// as the decision. An empty ID is never marked, so unidentified events are
// bounded by cooldown alone.
func (g *Gate) TryAccept(ev alert.Event) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	switch {
	case !g.enabled:
		return DeniedPaused
	case ev.ID != "" && g.seen.contains(ev.ID, now):
		return DeniedDuplicate
	case now.Sub(g.lastTrigger) < g.cooldown:
		return DeniedCooldown
	}

	g.lastTrigger = now
	if ev.ID != "" {
		g.seen.mark(ev.ID, now)
	}
	return Accepted
}

// SetEnabled flips the monitoring switch consulted first by TryAccept.
func (g *Gate) SetEnabled(v bool) {
	g.mu.Lock()
	g.enabled = v
	g.mu.Unlock()
}

// Enabled reports whether the gate currently accepts triggers.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}
