package viewer

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jasonacox/vibescape/internal/metrics"
)

const (
	// SessionTTL is how long a session counts as connected after its
	// last request.
	SessionTTL = 5 * time.Minute

	// MaxSessions caps tracked sessions; beyond it the least recently
	// seen session is evicted.
	MaxSessions = 1000
)

// SessionID derives a stable identifier from the client host and user
// agent, so a reconnecting browser keeps its identity.
func SessionID(host, userAgent string) string {
	if host == "" {
		host = "unknown"
	}
	if userAgent == "" {
		userAgent = "unknown"
	}
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(host+":"+userAgent)).String()
}

// Tracker counts connected viewers by session with TTL-based expiry.
type Tracker struct {
	mu           sync.Mutex
	sessions     map[string]time.Time // session id -> last seen
	peak         int
	lastActivity time.Time

	ttl time.Duration
	max int
	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		sessions: make(map[string]time.Time),
		ttl:      SessionTTL,
		max:      MaxSessions,
		now:      time.Now,
	}
}

// Touch registers activity for a session and returns the connected
// count.
func (t *Tracker) Touch(id string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	_, known := t.sessions[id]
	t.sessions[id] = now
	t.lastActivity = now

	if !known {
		for len(t.sessions) > t.max {
			t.evictOldest()
		}
	}

	if n := len(t.sessions); n > t.peak {
		t.peak = n
		metrics.PeakViewers.Set(float64(n))
	}
	metrics.ConnectedViewers.Set(float64(len(t.sessions)))
	return len(t.sessions)
}

// evictOldest removes the least recently seen session. Caller holds
// the lock.
func (t *Tracker) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, seen := range t.sessions {
		if oldestID == "" || seen.Before(oldest) {
			oldestID = id
			oldest = seen
		}
	}
	if oldestID != "" {
		delete(t.sessions, oldestID)
		log.Printf("viewer: session limit reached, evicting oldest session %s", shortID(oldestID))
	}
}

// Disconnect removes a session and returns the remaining count.
func (t *Tracker) Disconnect(id string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.sessions, id)
	metrics.ConnectedViewers.Set(float64(len(t.sessions)))
	return len(t.sessions)
}

func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

func (t *Tracker) Peak() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.peak
}

// LastActivity returns the time of the most recent Touch, if any.
func (t *Tracker) LastActivity() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastActivity, !t.lastActivity.IsZero()
}

// Sweep drops sessions idle past the TTL and returns how many were
// removed.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-t.ttl)
	removed := 0
	for id, seen := range t.sessions {
		if seen.Before(cutoff) {
			delete(t.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.ConnectedViewers.Set(float64(len(t.sessions)))
		log.Printf("viewer: cleaned up %d stale sessions", removed)
	}
	return removed
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
