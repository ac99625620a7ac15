package master

import (
	"os"
	"time"

	"go.uber.org/zap"

	"crunch/Common/codec"
)

// RunReport summarizes a finished (or abandoned) dispatch run.
type RunReport struct {
	RunID         string
	Rounds        int
	Chunks        int
	ChunksMissing []int
	Workers       int
	FailedWorkers []uint32
	Elapsed       time.Duration
}

func (d *Dispatcher) Report() RunReport {
	return RunReport{
		RunID:         d.runID,
		Rounds:        d.rounds,
		Chunks:        d.store.NumChunks(),
		ChunksMissing: d.table.missing(),
		Workers:       len(d.workers),
		FailedWorkers: d.failedWorkerIDs(),
		Elapsed:       time.Since(d.started),
	}
}

func logReport(log *zap.Logger, r RunReport, runErr error) {
	fields := []zap.Field{
		zap.String("run_id", r.RunID),
		zap.Int("rounds", r.Rounds),
		zap.Int("chunks", r.Chunks),
		zap.Int("workers", r.Workers),
		zap.Uint32s("failed_workers", r.FailedWorkers),
		zap.Duration("elapsed", r.Elapsed),
	}
	if runErr != nil {
		fields = append(fields, zap.Ints("missing_chunks", r.ChunksMissing), zap.Error(runErr))
		log.Error("run abandoned", fields...)
		return
	}
	log.Info("run complete", fields...)
}

// writeOutput dumps the assembled dataset as raw little-endian int32.
func writeOutput(path string, elems []int32) error {
	return os.WriteFile(path, codec.MarshalElems(elems), 0o644)
}
