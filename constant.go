package ember

import "time"

const (
	// defaultRingCapacity is rounded up to a power of two by ring.New; 4096
	// comfortably covers the burst scenario of spec.md §8 scenario 4 (1000
	// records across 10 producers).
	defaultRingCapacity = 4096

	// defaultMaxFileSize is the rotation threshold when no WithMaxFileSize
	// option is given.
	defaultMaxFileSize = 100 << 20 // 100 MiB

	// defaultBatchSize bounds how many records the drain loop moves out of
	// the ring under queueMu before releasing it, per spec.md §4.4's
	// batching rationale. Unbounded draining under a single producer burst
	// would hold queueMu longer than necessary; bounding it lets producers
	// make progress between batches.
	defaultBatchSize = 256
)

// defaultHeartbeatInterval is used when heartbeats are enabled via
// WithHeartbeat without an explicit interval.
const defaultHeartbeatInterval = 30 * time.Second
