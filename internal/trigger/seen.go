package trigger

import (
	"container/list"
	"time"
)

// seenSet is a tiny TTL-bound LRU of triggered event IDs. Entries expire
// after the TTL and the capacity is capped, so the set cannot grow for the
// life of the process. Feeds repeat an event's frames for minutes at most,
// well inside both bounds.
//
// The gate lock serializes all access; seenSet has no lock of its own.
type seenSet struct {
	cap   int
	ttl   time.Duration
	ll    *list.List               // most-recent at front
	items map[string]*list.Element // id -> element
}

type seenEntry struct {
	id  string
	exp time.Time
}

func newSeenSet(maxEntries int, ttl time.Duration) *seenSet {
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &seenSet{
		cap:   maxEntries,
		ttl:   ttl,
		ll:    list.New(),
		items: make(map[string]*list.Element, maxEntries),
	}
}

// contains reports whether id is still marked, dropping it if expired.
func (s *seenSet) contains(id string, now time.Time) bool {
	el, ok := s.items[id]
	if !ok {
		return false
	}
	en := el.Value.(seenEntry)
	if now.Before(en.exp) {
		// touch LRU
		s.ll.MoveToFront(el)
		return true
	}
	s.ll.Remove(el)
	delete(s.items, id)
	return false
}

// mark records id as triggered, refreshing its expiry if already present.
func (s *seenSet) mark(id string, now time.Time) {
	if el, ok := s.items[id]; ok {
		en := el.Value.(seenEntry)
		en.exp = now.Add(s.ttl)
		el.Value = en
		s.ll.MoveToFront(el)
		return
	}
	s.items[id] = s.ll.PushFront(seenEntry{id: id, exp: now.Add(s.ttl)})

	// evict if over cap
	for s.ll.Len() > s.cap {
		tail := s.ll.Back()
		if tail == nil {
			break
		}
		s.ll.Remove(tail)
		delete(s.items, tail.Value.(seenEntry).id)
	}
	// soft cleanup of expired entries at the tail
	for {
		tail := s.ll.Back()
		if tail == nil || now.Before(tail.Value.(seenEntry).exp) {
			break
		}
		s.ll.Remove(tail)
		delete(s.items, tail.Value.(seenEntry).id)
	}
}

// len reports the number of tracked IDs, counting expired entries not yet
// swept out.
func (s *seenSet) len() int { return s.ll.Len() }
