package history

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Queue is the external collaborator a Simulation pushes completed
// HistoryPackets to. It is the sole synchronization boundary between
// concurrently running, independently seeded Simulations: Push is the one
// operation that may block, and the driver treats it as uninterruptible.
type Queue interface {
	// Push enqueues packet, blocking with backoff until it fits.
	Push(packet HistoryPacket) error

	// TryPop dequeues the oldest packet without blocking. Used by the
	// external persistence collaborator draining the queue; ok is false
	// when the queue is currently empty.
	TryPop() (packet HistoryPacket, ok bool)
}

// BoundedQueue is the default Queue: a fixed-capacity multi-producer,
// multi-consumer ring buffer. Independent Simulation goroutines share one
// BoundedQueue as their only point of contention.
type BoundedQueue struct {
	q lfq.Queue[HistoryPacket]
}

// NewBoundedQueue allocates a BoundedQueue holding up to capacity
// in-flight packets.
func NewBoundedQueue(capacity int) *BoundedQueue {
	return &BoundedQueue{q: lfq.NewMPMC[HistoryPacket](capacity)}
}

// Push implements Queue: retries with an exponential backoff until the
// packet is accepted, per the core's "insert_history never fails, it
// waits" concurrency policy.
func (b *BoundedQueue) Push(packet HistoryPacket) error {
	backoff := iox.Backoff{}
	for {
		err := b.q.Enqueue(&packet)
		if err == nil {
			return nil
		}
		if !lfq.IsWouldBlock(err) {
			return err
		}
		backoff.Wait()
	}
}

// TryPop implements Queue.
func (b *BoundedQueue) TryPop() (HistoryPacket, bool) {
	packet, err := b.q.Dequeue()
	if err != nil {
		return HistoryPacket{}, false
	}
	return *packet, true
}
