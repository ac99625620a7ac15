package worker

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "crunch/crunch"
)

// RunSession connects to the master and serves one full run.
func RunSession(ctx context.Context, cfg *Config, log *zap.Logger) error {
	conn, err := grpc.Dial(cfg.MasterAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect to master at %s: %w", cfg.MasterAddr, err)
	}
	defer conn.Close()

	exec, err := NewExecutor(cfg.Threads, MultiplyByRank)
	if err != nil {
		return err
	}
	defer exec.Release()

	return RunSessionWithClient(ctx, pb.NewChunkComputeClient(conn), cfg.Instance, cfg.Threads, exec, log)
}

// RunSessionWithClient drives the session protocol over an already-built
// client: hello out, rank in, then assignments in and results out until the
// master says all_done or closes the stream.
func RunSessionWithClient(ctx context.Context, client pb.ChunkComputeClient, instance string, threads int, exec *Executor, log *zap.Logger) error {
	stream, err := client.Session(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	if err := stream.Send(&pb.WorkerMessage{Instance: instance, Threads: int32(threads)}); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}

	first, err := stream.Recv()
	if err != nil {
		return fmt.Errorf("await rank: %w", err)
	}
	workerID := first.GetAssignedWorkerId()
	if workerID == 0 {
		return fmt.Errorf("master assigned no rank")
	}
	log = log.With(zap.Uint32("worker", workerID))
	log.Info("joined run", zap.String("instance", instance), zap.Int("threads", threads))

	for {
		in, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("receive assignment: %w", err)
		}
		if in.GetAllDone() {
			log.Info("run complete")
			return nil
		}
		chunk := in.GetAssign()
		if chunk == nil {
			continue
		}

		out, err := exec.Process(chunk, workerID)
		if err != nil {
			// Stay quiet; the master reassigns this chunk after its timeout.
			log.Error("chunk failed", zap.Uint32("chunk", chunk.GetChunkId()), zap.Error(err))
			continue
		}
		if err := stream.Send(&pb.WorkerMessage{Result: out}); err != nil {
			return fmt.Errorf("send result for chunk %d: %w", chunk.GetChunkId(), err)
		}
		log.Info("chunk done",
			zap.Uint32("chunk", chunk.GetChunkId()),
			zap.Uint32("bytes", out.GetCompressedByteLength()))
	}
}
