package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/healthlog"
	"github.com/spacemeshos/synchealth/hubrpc"
	"github.com/spacemeshos/synchealth/metrics"
	"github.com/spacemeshos/synchealth/synchealth"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "compare sampled peers with the primary hub and repair differences",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()
		ctx := cmd.Context()
		if cfg.Session.Primary == "" {
			return errors.New("primary hub address is required")
		}
		addr, err := synchealth.ResolveAddress(cfg.Session.Primary)
		if err != nil {
			return err
		}
		dialer := hubrpc.NewDialer(
			hubrpc.WithDialerLogger(logger.Named("dialer")),
			hubrpc.WithDialerConfig(cfg.Hub),
		)
		primary, err := dialer.Connect(ctx, addr)
		if err != nil {
			return fmt.Errorf("connect to primary: %w", err)
		}
		defer primary.Close()
		logger.Info("connected to primary",
			zap.String("target", primary.Target()),
			zap.Bool("secure", primary.Secure()),
		)

		writer := healthlog.NewWriter(cfg.Health.Path,
			healthlog.WithFs(afero.NewOsFs()),
			healthlog.WithLogger(logger.Named("healthlog")),
		)
		syncer := synchealth.New(primary, synchealth.HubDialer(dialer), writer,
			synchealth.WithLogger(logger.Named("synchealth")),
			synchealth.WithConfig(cfg.Session),
		)
		session, err := syncer.Run(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "run %s: %d peers, %d records, %d failures\n",
			session.RunID, len(session.Peers), len(session.Records), len(session.Failures))
		for _, f := range session.Failures {
			fmt.Fprintf(out, "  %s %s: %v\n", f.Peer, f.Stage, f.Err)
		}
		fmt.Fprintf(out, "health log: %s\n", writer.Path())
		if err := metrics.Push(cfg.Push, prometheus.DefaultGatherer, cfg.Session.Primary); err != nil {
			logger.Warn("failed to push metrics", zap.Error(err))
		}
		return nil
	},
}

func init() {
	fs := runCmd.Flags()
	fs.String("primary", defaults.Session.Primary, "address of the primary hub")
	bind(fs, "primary", "session.primary")
	fs.String("start", defaults.Session.StartTime, "start of the checked window as time of day")
	bind(fs, "start", "session.start-time")
	fs.String("stop", defaults.Session.StopTime, "end of the checked window as time of day")
	bind(fs, "stop", "session.stop-time")
	fs.Int("max-peers", defaults.Session.MaxPeers, "number of peers sampled per run, 0 for all")
	bind(fs, "max-peers", "session.max-peers")
	fs.Bool("investigate", defaults.Session.Investigate, "find and repair missing records")
	bind(fs, "investigate", "session.investigate")
	fs.Bool("dry-run", defaults.Session.Repair.DryRun, "report missing records without transferring them")
	bind(fs, "dry-run", "session.repair.dry-run")
	fs.String("out", defaults.Health.Path, "health log path")
	bind(fs, "out", "health.path")
	fs.String("metrics-push", defaults.Push.URL, "pushgateway url")
	bind(fs, "metrics-push", "metrics-push.url")
}
