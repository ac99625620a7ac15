package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crunch/Common/logger"
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
		cfgFile    string
		masterAddr string
		threads    int
		instance   string
	)

	cmd := &cobra.Command{
		Use:   "crunch-worker",
		Short: "Process chunk assignments from a crunch master",
		Long: `crunch-worker connects to a master, announces itself, and processes the
chunks it is handed across a fixed goroutine pool until the run completes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("master") {
				cfg.MasterAddr = masterAddr
			}
			if flags.Changed("threads") {
				cfg.Threads = threads
			}
			if flags.Changed("instance") {
				cfg.Instance = instance
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.New(cfg.Logging).With(zap.String("component", "worker"))
			defer func() { _ = log.Sync() }()
			return RunSession(cmd.Context(), cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "path to a YAML config file")
	flags.StringVar(&masterAddr, "master", DefaultMasterAddr, "master gRPC address")
	flags.IntVar(&threads, "threads", DefaultThreads, "goroutines processing each chunk")
	flags.StringVar(&instance, "instance", "", "instance name reported to the master")
	return cmd
}
