package master

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crunch/Common/chunkstore"
	"crunch/Common/codec"
)

// workerState is the dispatcher's view of one worker. Failure is monotone:
// once failed, a worker never receives another assignment.
type workerState struct {
	link   WorkerLink
	failed bool
	busy   bool
}

// Dispatcher owns the assignment table and drives the round-based
// send/await/redistribute loop until every chunk has a result or no alive
// worker remains. All state is single-writer: the loop runs phases strictly
// in sequence and nothing else touches the table.
type Dispatcher struct {
	cfg     *Config
	log     *zap.Logger
	store   *chunkstore.Store
	monitor *HeartbeatMonitor
	runID   string

	table   *assignmentTable
	workers map[uint32]*workerState
	order   []uint32 // ascending worker IDs, for stable pairing
	rounds  int
	started time.Time
}

// NewDispatcher builds a dispatcher over an immutable store and a fixed
// worker roster.
func NewDispatcher(cfg *Config, log *zap.Logger, store *chunkstore.Store, links []WorkerLink) *Dispatcher {
	d := &Dispatcher{
		cfg:     cfg,
		log:     log,
		store:   store,
		monitor: &HeartbeatMonitor{PollInterval: cfg.PollInterval},
		runID:   uuid.NewString(),
		table:   newAssignmentTable(store.NumChunks()),
		workers: make(map[uint32]*workerState, len(links)),
	}
	for _, link := range links {
		d.workers[link.WorkerID()] = &workerState{link: link}
		d.order = append(d.order, link.WorkerID())
	}
	sort.Slice(d.order, func(i, j int) bool { return d.order[i] < d.order[j] })
	return d
}

// RunID identifies this run in logs and reports.
func (d *Dispatcher) RunID() string { return d.runID }

// Run executes the full protocol and returns the transformed dataset
// reassembled in chunk order. On exhaustion it returns a RunExhaustedError
// naming every incomplete chunk, never a truncated result.
func (d *Dispatcher) Run(ctx context.Context) ([]int32, error) {
	d.started = time.Now()
	d.log.Info("run starting",
		zap.String("run_id", d.runID),
		zap.Int("dataset_size", d.store.Len()),
		zap.Int("chunks", d.store.NumChunks()),
		zap.Int("workers", len(d.workers)))
	defer d.finishWorkers()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		inflight := d.distribute()
		if len(inflight) == 0 {
			if d.table.remaining() == 0 {
				out, err := d.table.assemble()
				if err != nil {
					return nil, err
				}
				d.log.Info("run complete",
					zap.String("run_id", d.runID),
					zap.Int("rounds", d.rounds),
					zap.Duration("elapsed", time.Since(d.started)))
				return out, nil
			}
			err := &RunExhaustedError{
				MissingChunks: d.table.missing(),
				FailedWorkers: d.failedWorkerIDs(),
			}
			d.log.Error("run exhausted",
				zap.String("run_id", d.runID),
				zap.Ints("missing_chunks", err.MissingChunks),
				zap.Int("failed_workers", len(err.FailedWorkers)))
			return nil, err
		}
		d.await(inflight)
		d.rounds++
	}
}

// distribute pairs every unassigned chunk with an alive, idle worker in
// stable order (ascending chunk ID to ascending worker ID), encodes and
// sends each one, and arms the matching receive.
func (d *Dispatcher) distribute() []*Assignment {
	chunks := d.table.unassigned()
	idle := d.idleWorkerIDs()
	n := len(chunks)
	if len(idle) < n {
		n = len(idle)
	}

	inflight := make([]*Assignment, 0, n)
	for i := 0; i < n; i++ {
		chunk, _ := d.store.Chunk(chunks[i])
		workerID := idle[i]
		w := d.workers[workerID]

		a := d.table.create(chunk.ID, workerID, d.rounds)
		msg, err := codec.Pack(uint32(chunk.ID), d.store.Read(chunk))
		if err != nil {
			// Encoding is local and deterministic; failure means a bug,
			// not a worker fault.
			d.log.Error("chunk encode failed", zap.Int("chunk", chunk.ID), zap.Error(err))
			d.table.markLost(a)
			continue
		}

		// Arm the receive before the send lands so an instant reply is
		// buffered rather than dropped.
		pending := w.link.Receive()
		if err := w.link.Send(msg); err != nil {
			pending.Cancel()
			d.table.markLost(a)
			d.failWorker(workerID, "send failed", err)
			continue
		}
		d.table.markInFlight(a, pending)
		w.busy = true
		inflight = append(inflight, a)
		d.log.Info("chunk dispatched",
			zap.Int("chunk", chunk.ID),
			zap.Int("elements", chunk.Length),
			zap.Uint32("worker", workerID),
			zap.Int("round", d.rounds))
	}
	return inflight
}

// await resolves every in-flight assignment: Completed on a valid reply
// before the deadline, Lost (and the worker Failed) on timeout or corrupt
// payload. Replies correlating to a different chunk are discarded and the
// wait continues against the same deadline.
func (d *Dispatcher) await(inflight []*Assignment) {
	completedNow, lostNow := 0, 0
	for _, a := range inflight {
		w := d.workers[a.WorkerID]
		deadline := time.Now().Add(d.cfg.HeartbeatTimeout)
		for {
			msg, result := d.monitor.AwaitWithDeadline(a.pending, deadline)
			if result == TimedOut {
				a.pending.Cancel()
				d.table.markLost(a)
				w.busy = false
				d.failWorker(a.WorkerID, "heartbeat timeout", nil)
				lostNow++
				break
			}

			if int(msg.GetChunkId()) != a.ChunkID {
				// Late or duplicate reply from an earlier assignment.
				// First completion wins; drop it and keep waiting.
				d.log.Warn("discarding reply with unexpected chunk id",
					zap.Uint32("got", msg.GetChunkId()),
					zap.Int("want", a.ChunkID),
					zap.Uint32("worker", a.WorkerID))
				a.pending = w.link.Receive()
				continue
			}

			elems, err := codec.Unpack(msg)
			if err == nil && len(elems) != chunkLength(d.store, a.ChunkID) {
				err = fmt.Errorf("%w: chunk %d decoded to %d elements, want %d",
					codec.ErrCorruptPayload, a.ChunkID, len(elems), chunkLength(d.store, a.ChunkID))
			}
			if err != nil {
				// A peer that emits unparseable frames is handled like one
				// that timed out: assignment lost, worker failed.
				a.pending.Cancel()
				d.table.markLost(a)
				w.busy = false
				d.failWorker(a.WorkerID, "corrupt payload", err)
				lostNow++
				break
			}

			d.table.complete(a, elems)
			w.busy = false
			completedNow++
			d.log.Info("chunk completed",
				zap.Int("chunk", a.ChunkID),
				zap.Uint32("worker", a.WorkerID),
				zap.Int("round", a.RoundIssued))
			break
		}
	}

	d.log.Info("round finished",
		zap.Int("round", d.rounds),
		zap.Int("completed", completedNow),
		zap.Int("lost", lostNow),
		zap.Int("chunks_remaining", d.table.remaining()),
		zap.Int("workers_alive", d.aliveCount()))
}

func (d *Dispatcher) failWorker(id uint32, reason string, err error) {
	w := d.workers[id]
	if w.failed {
		return
	}
	w.failed = true
	w.link.Close()
	d.log.Warn("worker failed",
		zap.Uint32("worker", id),
		zap.String("instance", w.link.Instance()),
		zap.String("reason", reason),
		zap.Error(err))
}

func (d *Dispatcher) idleWorkerIDs() []uint32 {
	var out []uint32
	for _, id := range d.order {
		w := d.workers[id]
		if !w.failed && !w.busy {
			out = append(out, id)
		}
	}
	return out
}

func (d *Dispatcher) failedWorkerIDs() []uint32 {
	var out []uint32
	for _, id := range d.order {
		if d.workers[id].failed {
			out = append(out, id)
		}
	}
	return out
}

func (d *Dispatcher) aliveCount() int {
	return len(d.workers) - len(d.failedWorkerIDs())
}

// finishWorkers tells every still-alive worker the run is over.
func (d *Dispatcher) finishWorkers() {
	for _, id := range d.order {
		if w := d.workers[id]; !w.failed {
			w.link.Finish()
		}
	}
}

func chunkLength(store *chunkstore.Store, chunkID int) int {
	c, _ := store.Chunk(chunkID)
	return c.Length
}
