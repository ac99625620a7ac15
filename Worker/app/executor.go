package worker

import (
	"fmt"

	"github.com/panjf2000/ants/v2"

	"crunch/Common/codec"
	"crunch/Common/parallel"
	pb "crunch/crunch"
)

// Kernel is the per-element transform applied to every value of a chunk.
type Kernel func(v int32, workerID uint32) int32

// MultiplyByRank scales each element by the worker's assigned rank, so the
// same chunk produces a different result on each worker.
func MultiplyByRank(v int32, workerID uint32) int32 {
	return v * int32(workerID)
}

// Executor applies a kernel to incoming chunks across a fixed goroutine pool.
type Executor struct {
	pool    *ants.Pool
	threads int
	kernel  Kernel
}

func NewExecutor(threads int, kernel Kernel) (*Executor, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("threads %d must be positive", threads)
	}
	pool, err := ants.NewPool(threads)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Executor{pool: pool, threads: threads, kernel: kernel}, nil
}

// Process unpacks one assignment, transforms it in place across the pool,
// and repacks the result under the same chunk id.
func (e *Executor) Process(msg *pb.WireChunk, workerID uint32) (*pb.WireChunk, error) {
	elems, err := codec.Unpack(msg)
	if err != nil {
		return nil, fmt.Errorf("unpack chunk %d: %w", msg.GetChunkId(), err)
	}
	err = parallel.ForEachRange(e.pool, len(elems), e.threads, func(start, end int) {
		for i := start; i < end; i++ {
			elems[i] = e.kernel(elems[i], workerID)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("transform chunk %d: %w", msg.GetChunkId(), err)
	}
	return codec.Pack(msg.GetChunkId(), elems)
}

func (e *Executor) Release() {
	e.pool.Release()
}
