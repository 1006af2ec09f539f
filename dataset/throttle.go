package dataset

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Throttle bounds the concurrency and aggregate bandwidth of shard
// downloads so a Prepare run does not starve a co-located benchmark target.
type Throttle struct {
	slots   *semaphore.Weighted
	limiter *rate.Limiter // nil if unlimited
}

// NewThrottle creates a throttle allowing maxConcurrent parallel fetches
// and bytesPerSec aggregate throughput. maxConcurrent <= 0 defaults to 1;
// bytesPerSec <= 0 means unlimited bandwidth.
func NewThrottle(maxConcurrent, bytesPerSec int64) *Throttle {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	t := &Throttle{
		slots: semaphore.NewWeighted(maxConcurrent),
	}
	if bytesPerSec > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}
	return t
}

// Acquire reserves a download slot, blocking until one is free or ctx is
// canceled.
func (t *Throttle) Acquire(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.slots.Acquire(ctx, 1)
}

// Release frees a download slot.
func (t *Throttle) Release() {
	if t == nil {
		return
	}
	t.slots.Release(1)
}

// WaitBytes blocks until the bandwidth budget admits n more bytes.
// Requests larger than the limiter burst are split.
func (t *Throttle) WaitBytes(ctx context.Context, n int64) error {
	if t == nil || t.limiter == nil || n <= 0 {
		return nil
	}

	burst := int64(t.limiter.Burst())
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := t.limiter.WaitN(ctx, int(chunk)); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
