package services

import (
	"time"
)

// Pacer spaces out consecutive upstream calls. This is a politeness policy
// toward the upstream rate limiter, not a correctness requirement; tests
// inject NoDelayPacer to run without real delays.
type Pacer interface {
	// Pace is called between consecutive calls of a run that issues
	// segmentCount requests in total.
	Pace(segmentCount int)
}

// FixedDelayPacer sleeps a fixed delay between calls once a run is large
// enough to risk upstream rate-limiting.
type FixedDelayPacer struct {
	Threshold int // segment counts above this trigger the delay
	Delay     time.Duration
}

// NewFixedDelayPacer constructs a FixedDelayPacer.
func NewFixedDelayPacer(threshold int, delay time.Duration) *FixedDelayPacer {
	return &FixedDelayPacer{Threshold: threshold, Delay: delay}
}

func (p *FixedDelayPacer) Pace(segmentCount int) {
	if segmentCount > p.Threshold {
		time.Sleep(p.Delay)
	}
}

// NoDelayPacer never waits.
type NoDelayPacer struct{}

func (NoDelayPacer) Pace(segmentCount int) {}
