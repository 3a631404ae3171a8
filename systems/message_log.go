package systems

import "sync"

// MessageLog keeps the most recent game messages for the on-screen overlay.
// Safe for concurrent use: the simulation writes, the presentation layer reads.
type MessageLog struct {
	mu          sync.Mutex
	messages    []string
	maxMessages int
}

// NewMessageLog creates a log holding at most maxMessages entries
func NewMessageLog(maxMessages int) *MessageLog {
	return &MessageLog{maxMessages: maxMessages}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.messages = append(ml.messages, message)

	// Truncate if we have too many messages
	if len(ml.messages) > ml.maxMessages {
		ml.messages = ml.messages[len(ml.messages)-ml.maxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.messages) {
		n = len(ml.messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.messages[len(ml.messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.messages = nil
}
