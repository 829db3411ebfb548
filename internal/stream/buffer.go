package stream

import "sync"

// SeenBuffer tracks execution ids already handled in this session. The WS
// feed redelivers events after a reconnect, and the REST watermark cannot
// protect a live stream, so duplicate suppression happens here.
type SeenBuffer struct {
	mu   sync.Mutex
	seen map[int64]struct{}
}

func NewSeenBuffer() *SeenBuffer {
	return &SeenBuffer{
		seen: make(map[int64]struct{}),
	}
}

// MarkSeen records the id and reports whether it was new.
func (b *SeenBuffer) MarkSeen(executionID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.seen[executionID]; ok {
		return false
	}
	b.seen[executionID] = struct{}{}
	return true
}

// Count returns the number of distinct executions handled so far.
func (b *SeenBuffer) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.seen)
}
