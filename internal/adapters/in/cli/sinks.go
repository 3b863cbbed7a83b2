// internal/adapters/in/cli/sinks.go
package cli

import "sync"

// navRecorder implements the Navigator port. The runtime does no routing;
// the recorded target is printed after the command finishes, the way the
// address bar would change.
type navRecorder struct {
	mu     sync.Mutex
	target string
	set    bool
}

func (n *navRecorder) Navigate(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.target = location
	n.set = true
}

func (n *navRecorder) Target() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target, n.set
}

// badgeRecorder implements the BadgeSink port and keeps the latest
// projected cart count for the footer line.
type badgeRecorder struct {
	mu    sync.Mutex
	count int
	set   bool
}

func (b *badgeRecorder) SetCount(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count = n
	b.set = true
}

func (b *badgeRecorder) Count() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count, b.set
}
