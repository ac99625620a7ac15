package master

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"crunch/Common/chunkstore"
	"crunch/Common/codec"
	pb "crunch/crunch"
)

// fakeLink scripts one worker endpoint. On every Send the script decides
// which replies (possibly none) come back; replies land on the currently
// armed receive, or queue for the next one.
type fakeLink struct {
	id     uint32
	script func(chunk *pb.WireChunk) []*pb.WireChunk

	mu       sync.Mutex
	armed    *PendingReceive
	queue    []*pb.WireChunk
	sent     []*pb.WireChunk
	sendErr  error
	finished bool
	closed   bool
}

func (l *fakeLink) WorkerID() uint32 { return l.id }

func (l *fakeLink) Instance() string { return fmt.Sprintf("fake-%d", l.id) }

func (l *fakeLink) Send(chunk *pb.WireChunk) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sendErr != nil {
		return l.sendErr
	}
	l.sent = append(l.sent, chunk)
	if l.script == nil {
		return nil
	}
	for _, reply := range l.script(chunk) {
		if l.armed != nil && l.armed.deliver(reply) {
			l.armed = nil
			continue
		}
		l.queue = append(l.queue, reply)
	}
	return nil
}

func (l *fakeLink) Receive() *PendingReceive {
	p := newPendingReceive()
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) > 0 {
		p.deliver(l.queue[0])
		l.queue = l.queue[1:]
		return p
	}
	l.armed = p
	return p
}

func (l *fakeLink) Finish() {
	l.mu.Lock()
	l.finished = true
	l.mu.Unlock()
}

func (l *fakeLink) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

func (l *fakeLink) sendCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sent)
}

// goodReply computes the reference transform for a chunk as worker id would.
func goodReply(t *testing.T, chunk *pb.WireChunk, id uint32) *pb.WireChunk {
	t.Helper()
	elems, err := codec.Unpack(chunk)
	require.NoError(t, err)
	for i := range elems {
		elems[i] *= int32(id)
	}
	out, err := codec.Pack(chunk.GetChunkId(), elems)
	require.NoError(t, err)
	return out
}

func respondGood(t *testing.T, id uint32) func(*pb.WireChunk) []*pb.WireChunk {
	return func(chunk *pb.WireChunk) []*pb.WireChunk {
		return []*pb.WireChunk{goodReply(t, chunk, id)}
	}
}

func respondSilent(*pb.WireChunk) []*pb.WireChunk { return nil }

func testConfig(datasetSize, chunkSize, workers int) *Config {
	cfg := DefaultConfig()
	cfg.DatasetSize = datasetSize
	cfg.ChunkSize = chunkSize
	cfg.Workers = workers
	cfg.HeartbeatTimeout = 50 * time.Millisecond
	cfg.PollInterval = time.Millisecond
	return cfg
}

func newTestDispatcher(t *testing.T, cfg *Config, links ...*fakeLink) (*Dispatcher, *chunkstore.Store) {
	t.Helper()
	store, err := chunkstore.NewSequential(cfg.DatasetSize, cfg.ChunkSize)
	require.NoError(t, err)
	wired := make([]WorkerLink, len(links))
	for i, l := range links {
		wired[i] = l
	}
	return NewDispatcher(cfg, zaptest.NewLogger(t), store, wired), store
}

func TestRunAllWorkersRespond(t *testing.T) {
	cfg := testConfig(40, 10, 4)
	links := make([]*fakeLink, 4)
	for i := range links {
		id := uint32(i + 1)
		links[i] = &fakeLink{id: id, script: respondGood(t, id)}
	}
	d, _ := newTestDispatcher(t, cfg, links...)

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 40)

	// Stable pairing: chunk c goes to worker c+1, so element i of chunk c
	// comes back as i*(c+1).
	for i, v := range result {
		owner := int32(i/10 + 1)
		require.Equal(t, int32(i)*owner, v, "element %d", i)
	}
	require.Equal(t, 1, d.Report().Rounds)
	for _, l := range links {
		require.Equal(t, 1, l.sendCount())
		require.True(t, l.finished)
		require.False(t, l.closed)
	}
}

func TestSilentWorkerChunksRedistributed(t *testing.T) {
	cfg := testConfig(40, 10, 3)
	w1 := &fakeLink{id: 1, script: respondGood(t, 1)}
	w2 := &fakeLink{id: 2, script: respondSilent}
	w3 := &fakeLink{id: 3, script: respondGood(t, 3)}
	d, _ := newTestDispatcher(t, cfg, w1, w2, w3)

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 40)

	// Round 0: chunks 0,1,2 to workers 1,2,3; worker 2 never answers.
	// Round 1: chunks 1,3 to workers 1,3.
	for i := 0; i < 10; i++ {
		require.Equal(t, int32(i), result[i])
		require.Equal(t, int32(i+10), result[i+10])
		require.Equal(t, int32(i+20)*3, result[i+20])
		require.Equal(t, int32(i+30)*3, result[i+30])
	}

	require.True(t, w2.closed)
	require.False(t, w2.finished)
	require.Equal(t, 1, w2.sendCount(), "a failed worker must never be assigned again")

	report := d.Report()
	require.Equal(t, []uint32{2}, report.FailedWorkers)
	require.Equal(t, 2, report.Rounds)
}

func TestAllWorkersSilentRunExhausted(t *testing.T) {
	cfg := testConfig(40, 10, 1)
	w1 := &fakeLink{id: 1, script: respondSilent}
	d, _ := newTestDispatcher(t, cfg, w1)

	result, err := d.Run(context.Background())
	require.Nil(t, result)

	var exhausted *RunExhaustedError
	require.True(t, errors.As(err, &exhausted))
	require.Equal(t, []int{0, 1, 2, 3}, exhausted.MissingChunks)
	require.Equal(t, []uint32{1}, exhausted.FailedWorkers)
	require.True(t, w1.closed)
	require.Equal(t, 1, w1.sendCount())
}

func TestCorruptReplyFailsWorkerAndRedistributes(t *testing.T) {
	cfg := testConfig(20, 10, 2)
	w1 := &fakeLink{id: 1, script: func(chunk *pb.WireChunk) []*pb.WireChunk {
		return []*pb.WireChunk{{
			ChunkId:              chunk.GetChunkId(),
			OriginalByteLength:   chunk.GetOriginalByteLength(),
			CompressedByteLength: 4,
			Payload:              []byte{0xde, 0xad, 0xbe, 0xef},
		}}
	}}
	w2 := &fakeLink{id: 2, script: respondGood(t, 2)}
	d, _ := newTestDispatcher(t, cfg, w1, w2)

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 20)
	for i, v := range result {
		require.Equal(t, int32(i)*2, v)
	}

	require.True(t, w1.closed)
	require.Equal(t, 1, w1.sendCount())
	require.Equal(t, []uint32{1}, d.Report().FailedWorkers)
}

func TestSendErrorFailsWorker(t *testing.T) {
	cfg := testConfig(20, 10, 2)
	w1 := &fakeLink{id: 1, sendErr: errLinkClosed}
	w2 := &fakeLink{id: 2, script: respondGood(t, 2)}
	d, _ := newTestDispatcher(t, cfg, w1, w2)

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 20)
	require.True(t, w1.closed)
	require.Equal(t, []uint32{1}, d.Report().FailedWorkers)
}

func TestReplyWithUnexpectedChunkDiscarded(t *testing.T) {
	cfg := testConfig(10, 10, 1)
	w1 := &fakeLink{id: 1, script: func(chunk *pb.WireChunk) []*pb.WireChunk {
		stray := goodReply(t, chunk, 1)
		stray.ChunkId = chunk.GetChunkId() + 7
		return []*pb.WireChunk{stray, goodReply(t, chunk, 1)}
	}}
	d, _ := newTestDispatcher(t, cfg, w1)

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 10)
	require.False(t, w1.closed, "a stray reply is not a worker failure")
	require.Empty(t, d.Report().FailedWorkers)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	cfg := testConfig(40, 10, 1)
	w1 := &fakeLink{id: 1, script: respondSilent}
	d, _ := newTestDispatcher(t, cfg, w1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWrongLengthReplyIsCorrupt(t *testing.T) {
	cfg := testConfig(20, 10, 2)
	w1 := &fakeLink{id: 1, script: func(chunk *pb.WireChunk) []*pb.WireChunk {
		elems, err := codec.Unpack(chunk)
		require.NoError(t, err)
		short, err := codec.Pack(chunk.GetChunkId(), elems[:len(elems)-1])
		require.NoError(t, err)
		return []*pb.WireChunk{short}
	}}
	w2 := &fakeLink{id: 2, script: respondGood(t, 2)}
	d, _ := newTestDispatcher(t, cfg, w1, w2)

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 20)
	require.True(t, w1.closed)
}
