package master

import (
	"errors"
	"sync"

	pb "crunch/crunch"
)

var errLinkClosed = errors.New("worker link closed")

// PendingReceive is a future for one in-flight receive on a worker link.
// Poll never blocks; Cancel guarantees the message, if it ever arrives, is
// discarded rather than delivered to a later Poll.
type PendingReceive struct {
	ch chan *pb.WireChunk

	mu        sync.Mutex
	cancelled bool
	delivered bool
}

func newPendingReceive() *PendingReceive {
	return &PendingReceive{ch: make(chan *pb.WireChunk, 1)}
}

// Poll returns the received message if it has arrived.
func (p *PendingReceive) Poll() (*pb.WireChunk, bool) {
	select {
	case msg := <-p.ch:
		return msg, true
	default:
		return nil, false
	}
}

// Cancel abandons the receive. A message that raced in before cancellation
// is drained so it cannot surface later.
func (p *PendingReceive) Cancel() {
	p.mu.Lock()
	p.cancelled = true
	p.mu.Unlock()
	select {
	case <-p.ch:
	default:
	}
}

// deliver hands the transport's message to the future. Returns false when
// the receive was cancelled or already satisfied; the caller must discard
// the message in that case.
func (p *PendingReceive) deliver(msg *pb.WireChunk) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancelled || p.delivered {
		return false
	}
	p.delivered = true
	p.ch <- msg
	return true
}

// WorkerLink is one addressable worker endpoint: non-blocking sends, armed
// receives, and permanent retirement on failure. The dispatcher only ever
// talks to workers through this interface, which keeps the round loop
// testable without a transport.
type WorkerLink interface {
	WorkerID() uint32
	Instance() string
	// Send queues a chunk assignment without waiting for the wire.
	Send(chunk *pb.WireChunk) error
	// Receive arms a fresh pending receive, replacing any previous one.
	Receive() *PendingReceive
	// Finish tells the worker the run is over and it may exit.
	Finish()
	// Close retires the link; in-flight replies are discarded.
	Close()
}

// sessionLink binds a WorkerLink to one gRPC session stream. A writer
// goroutine in the session handler drains sendCh, and the handler's reader
// goroutine feeds results to the currently armed receive, preserving FIFO
// order per worker.
type sessionLink struct {
	id       uint32
	instance string
	threads  int32

	sendCh chan *pb.CoordinatorMessage
	closed chan struct{}

	mu      sync.Mutex
	armed   *PendingReceive
	closeFn sync.Once
}

func newSessionLink(id uint32, instance string, threads int32) *sessionLink {
	return &sessionLink{
		id:       id,
		instance: instance,
		threads:  threads,
		sendCh:   make(chan *pb.CoordinatorMessage, 4),
		closed:   make(chan struct{}),
	}
}

func (l *sessionLink) WorkerID() uint32 { return l.id }

func (l *sessionLink) Instance() string { return l.instance }

func (l *sessionLink) Send(chunk *pb.WireChunk) error {
	return l.enqueue(&pb.CoordinatorMessage{Assign: chunk})
}

func (l *sessionLink) Finish() {
	_ = l.enqueue(&pb.CoordinatorMessage{AllDone: true})
}

func (l *sessionLink) enqueue(msg *pb.CoordinatorMessage) error {
	select {
	case <-l.closed:
		return errLinkClosed
	default:
	}
	select {
	case l.sendCh <- msg:
		return nil
	case <-l.closed:
		return errLinkClosed
	}
}

func (l *sessionLink) Receive() *PendingReceive {
	p := newPendingReceive()
	l.mu.Lock()
	l.armed = p
	l.mu.Unlock()
	return p
}

// dispatchResult routes an incoming result to the armed receive. Results
// arriving with no receive armed, or after cancellation, are dropped; the
// dispatcher has already written that worker off.
func (l *sessionLink) dispatchResult(msg *pb.WireChunk) bool {
	l.mu.Lock()
	armed := l.armed
	if armed != nil {
		l.armed = nil
	}
	l.mu.Unlock()
	if armed == nil {
		return false
	}
	return armed.deliver(msg)
}

func (l *sessionLink) Close() {
	l.closeFn.Do(func() { close(l.closed) })
}

func (l *sessionLink) done() <-chan struct{} { return l.closed }
