// Package history is documented in types.go (HistoryElement, HistoryPacket)
// and queue.go (Queue, BoundedQueue).
package history
