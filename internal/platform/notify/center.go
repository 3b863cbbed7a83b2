// internal/platform/notify/center.go
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a notice stays visible before it expires.
const DefaultTTL = 3 * time.Second

// Notice is a single transient message.
type Notice struct {
	Message  string
	PostedAt time.Time
}

// Center collects transient notices. Notices expire after a fixed TTL;
// Active prunes expired entries on read, so an idle center costs nothing.
type Center struct {
	mu      sync.Mutex
	notices []Notice
	ttl     time.Duration
	now     func() time.Time
}

func NewCenter() *Center {
	return &Center{ttl: DefaultTTL, now: time.Now}
}

// NewCenterWithClock fixes the clock and TTL, for tests.
func NewCenterWithClock(ttl time.Duration, now func() time.Time) *Center {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: now}
}

// Show posts a notice. Implements the usecases' Notifier port.
func (c *Center) Show(msg string) {
	if c == nil || msg == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, Notice{Message: msg, PostedAt: c.now()})
}

// Active returns the not-yet-expired notices, oldest first, and drops
// the expired ones.
func (c *Center) Active() []Notice {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl)
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.PostedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	c.notices = kept

	out := make([]Notice, len(kept))
	copy(out, kept)
	return out
}

// Messages is Active flattened to strings.
func (c *Center) Messages() []string {
	active := c.Active()
	if len(active) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(active))
	for _, n := range active {
		msgs = append(msgs, n.Message)
	}
	return msgs
}
