// Package testutil provides deterministic test doubles for the notifier
// and navigator collaborators.
package testutil

import "sync"

// RecordingNotifier captures notification messages for assertion.
//
// Thread-safety: safe for concurrent use via internal mutex, though the
// engines themselves are single-owner.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

// Notify implements cart.Notifier.
func (n *RecordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

// Messages returns the captured messages in delivery order.
func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

// Last returns the most recent message, or "" if none was delivered.
func (n *RecordingNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) == 0 {
		return ""
	}
	return n.messages[len(n.messages)-1]
}

// Reset discards all captured messages.
func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = nil
}
