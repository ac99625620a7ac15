package master

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// Run wires up the root command and executes it with signal handling.
func Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	var (
		cfgFile     string
		listen      string
		datasetSize int
		chunkSize   int
		workers     int
		heartbeat   time.Duration
		poll        time.Duration
		joinTimeout time.Duration
		output      string
	)

	cmd := &cobra.Command{
		Use:   "crunch-master",
		Short: "Coordinate a fault-tolerant chunked compute run",
		Long: `crunch-master partitions a fixed dataset into chunks, hands them out to a
fleet of workers over gRPC, and reassigns the chunks of any worker that goes
silent past the heartbeat timeout. The run finishes when every chunk has a
result or when no live worker remains to take the leftovers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("listen") {
				cfg.Listen = listen
			}
			if flags.Changed("dataset-size") {
				cfg.DatasetSize = datasetSize
			}
			if flags.Changed("chunk-size") {
				cfg.ChunkSize = chunkSize
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("heartbeat-timeout") {
				cfg.HeartbeatTimeout = heartbeat
			}
			if flags.Changed("poll-interval") {
				cfg.PollInterval = poll
			}
			if flags.Changed("join-timeout") {
				cfg.JoinTimeout = joinTimeout
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := buildLogger(cfg)
			defer func() { _ = log.Sync() }()
			return Serve(cmd.Context(), cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.StringVar(&listen, "listen", DefaultListen, "gRPC listen address")
	flags.IntVar(&datasetSize, "dataset-size", DefaultDatasetSize, "total number of dataset elements")
	flags.IntVar(&chunkSize, "chunk-size", DefaultChunkSize, "elements per chunk")
	flags.IntVar(&workers, "workers", DefaultWorkers, "worker count to wait for before dispatching")
	flags.DurationVar(&heartbeat, "heartbeat-timeout", DefaultHeartbeatTimeout, "silence after which a worker is declared failed")
	flags.DurationVar(&poll, "poll-interval", DefaultPollInterval, "how often pending results are polled")
	flags.DurationVar(&joinTimeout, "join-timeout", DefaultJoinTimeout, "how long to wait for the full worker roster")
	flags.StringVar(&output, "output", "", "write the transformed dataset here as raw little-endian int32")
	return cmd
}
