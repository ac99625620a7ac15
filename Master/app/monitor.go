package master

import (
	pb "crunch/crunch"
	"time"
)

// AwaitResult is the outcome of waiting on an in-flight receive.
type AwaitResult int

const (
	Arrived AwaitResult = iota
	TimedOut
)

func (r AwaitResult) String() string {
	if r == Arrived {
		return "arrived"
	}
	return "timed-out"
}

// HeartbeatMonitor bounds how long the dispatcher waits on an in-flight
// receive. This is a pure liveness heuristic: a merely slow worker is
// indistinguishable from a dead one, and the caller must Cancel the receive
// after TimedOut so a stray late reply cannot be misread as a later round's
// answer.
type HeartbeatMonitor struct {
	PollInterval time.Duration
}

// AwaitWithDeadline polls the pending receive at the configured interval
// until a message arrives or the wall-clock deadline elapses.
func (m *HeartbeatMonitor) AwaitWithDeadline(pending *PendingReceive, deadline time.Time) (*pb.WireChunk, AwaitResult) {
	interval := m.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	if msg, ok := pending.Poll(); ok {
		return msg, Arrived
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	expired := time.NewTimer(time.Until(deadline))
	defer expired.Stop()

	for {
		select {
		case <-ticker.C:
			if msg, ok := pending.Poll(); ok {
				return msg, Arrived
			}
		case <-expired.C:
			// One last poll closes the race between arrival and expiry.
			if msg, ok := pending.Poll(); ok {
				return msg, Arrived
			}
			return nil, TimedOut
		}
	}
}
