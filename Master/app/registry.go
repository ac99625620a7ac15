package master

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// registry hands out dense worker ranks (1..max, rank 0 is the master) as
// sessions join and releases the full roster once every expected worker has
// arrived. It is the bootstrap collaborator: role and rank assignment, and
// nothing else.
type registry struct {
	mu    sync.Mutex
	max   int
	links []*sessionLink
	full  chan struct{}
}

func newRegistry(max int) *registry {
	return &registry{max: max, full: make(chan struct{})}
}

// join admits one session. Returns nil when every slot is taken; extra
// workers are turned away rather than silently queued.
func (r *registry) join(instance string, threads int32) *sessionLink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.links) >= r.max {
		return nil
	}
	link := newSessionLink(uint32(len(r.links)+1), instance, threads)
	r.links = append(r.links, link)
	if len(r.links) == r.max {
		close(r.full)
	}
	return link
}

// WaitForWorkers blocks until the expected number of workers has joined.
func (r *registry) WaitForWorkers(ctx context.Context, joinTimeout time.Duration) ([]*sessionLink, error) {
	timer := time.NewTimer(joinTimeout)
	defer timer.Stop()
	select {
	case <-r.full:
		r.mu.Lock()
		defer r.mu.Unlock()
		out := make([]*sessionLink, len(r.links))
		copy(out, r.links)
		return out, nil
	case <-timer.C:
		r.mu.Lock()
		joined := len(r.links)
		r.mu.Unlock()
		return nil, fmt.Errorf("timed out waiting for workers: %d of %d joined after %s", joined, r.max, joinTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
