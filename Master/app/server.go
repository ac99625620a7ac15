package master

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crunch/Common/chunkstore"
	pb "crunch/crunch"
)

const stopGrace = 5 * time.Second

type server struct {
	pb.UnimplementedChunkComputeServer
	registry *registry
	log      *zap.Logger
}

// Session carries one worker's whole run: hello in, rank out, then chunk
// assignments down and results up until all_done. The stream gives FIFO
// ordering per worker; nothing is ordered across workers.
func (s *server) Session(stream pb.ChunkCompute_SessionServer) error {
	hello, err := stream.Recv()
	if err != nil {
		return err
	}
	if hello.GetResult() != nil {
		return status.Error(codes.InvalidArgument, "first message must be a hello")
	}

	link := s.registry.join(hello.GetInstance(), hello.GetThreads())
	if link == nil {
		return status.Error(codes.ResourceExhausted, "worker roster is full")
	}
	defer link.Close()
	s.log.Info("worker joined",
		zap.Uint32("worker", link.WorkerID()),
		zap.String("instance", link.Instance()),
		zap.Int32("threads", hello.GetThreads()))

	if err := stream.Send(&pb.CoordinatorMessage{AssignedWorkerId: link.WorkerID()}); err != nil {
		return err
	}

	recvErr := make(chan error, 1)
	go func() {
		for {
			in, err := stream.Recv()
			if err != nil {
				recvErr <- err
				return
			}
			if res := in.GetResult(); res != nil {
				if !link.dispatchResult(res) {
					s.log.Debug("discarded stray result",
						zap.Uint32("worker", link.WorkerID()),
						zap.Uint32("chunk", res.GetChunkId()))
				}
			}
		}
	}()

	for {
		select {
		case msg := <-link.sendCh:
			if err := stream.Send(msg); err != nil {
				return err
			}
			if msg.GetAllDone() {
				return nil
			}
		case err := <-recvErr:
			if err == io.EOF {
				return nil
			}
			return err
		case <-link.done():
			return nil
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// Serve runs one full coordination cycle: listen, wait for the worker
// roster, dispatch until Done or Exhausted, report, shut down.
func Serve(ctx context.Context, cfg *Config, log *zap.Logger) error {
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}

	reg := newRegistry(cfg.Workers)
	grpcServer := grpc.NewServer()
	pb.RegisterChunkComputeServer(grpcServer, &server{registry: reg, log: log})
	go grpcServer.Serve(lis)
	defer stopServer(grpcServer)

	log.Info("master listening",
		zap.String("addr", lis.Addr().String()),
		zap.Int("workers_expected", cfg.Workers))

	links, err := reg.WaitForWorkers(ctx, cfg.JoinTimeout)
	if err != nil {
		return err
	}

	store, err := chunkstore.NewSequential(cfg.DatasetSize, cfg.ChunkSize)
	if err != nil {
		return err
	}

	dispatcher := NewDispatcher(cfg, log, store, asWorkerLinks(links))
	result, runErr := dispatcher.Run(ctx)
	logReport(log, dispatcher.Report(), runErr)
	if runErr != nil {
		return runErr
	}

	if cfg.Output != "" {
		if err := writeOutput(cfg.Output, result); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info("output written", zap.String("path", cfg.Output), zap.Int("elements", len(result)))
	}
	return nil
}

func asWorkerLinks(links []*sessionLink) []WorkerLink {
	out := make([]WorkerLink, len(links))
	for i, l := range links {
		out[i] = l
	}
	return out
}

func stopServer(s *grpc.Server) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(stopGrace):
		s.Stop()
	}
}
