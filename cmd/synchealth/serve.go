package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/hubrpc"
	"github.com/spacemeshos/synchealth/metrics"
	"github.com/spacemeshos/synchealth/replica"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve an in-memory hub seeded with random records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		hub := replica.NewMemory(cfg.Serve.ID)
		if err := seed(hub, cfg.Serve.Seed, time.Now(), cfg.Serve.Span); err != nil {
			return err
		}
		for _, addr := range cfg.Serve.Peers {
			hub.AddPeer(types.Peer{ID: addr, Address: addr})
		}

		lis, err := net.Listen("tcp", cfg.Hub.Listen)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Hub.Listen, err)
		}
		gs := hubrpc.NewGRPCServer(logger.Named("grpc"))
		hubrpc.NewServer(hub).Register(gs)
		logger.Info("serving hub",
			zap.String("id", hub.ID()),
			zap.Stringer("address", lis.Addr()),
			zap.Uint64("messages", hub.Count()),
			zap.Int("peers", len(cfg.Serve.Peers)),
		)

		eg, ctx := errgroup.WithContext(cmd.Context())
		eg.Go(func() error {
			if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			gs.GracefulStop()
			return nil
		})
		if cfg.Serve.MetricsAddr != "" {
			eg.Go(func() error {
				return metrics.Serve(ctx, logger.Named("metrics"), cfg.Serve.MetricsAddr)
			})
		}
		if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// seed adds n records with random payloads spread over the span ending at now.
func seed(hub *replica.Memory, n int, now time.Time, span time.Duration) error {
	if n > 0 && span < time.Second {
		return fmt.Errorf("seed span %v is shorter than a second", span)
	}
	start := now.Add(-span)
	for range n {
		ts := start.Add(time.Duration(rand.Int64N(int64(span))))
		payload := make([]byte, 32)
		for i := range payload {
			payload[i] = byte(rand.Uint32())
		}
		rec, err := types.NewRecord(ts, payload)
		if err != nil {
			return fmt.Errorf("seed record: %w", err)
		}
		hub.Add(rec)
	}
	return nil
}

func init() {
	fs := serveCmd.Flags()
	fs.String("listen", defaults.Hub.Listen, "address the hub listens on")
	bind(fs, "listen", "hub.listen")
	fs.String("id", defaults.Serve.ID, "hub identifier")
	bind(fs, "id", "serve.id")
	fs.Int("seed", defaults.Serve.Seed, "number of random records to start with")
	bind(fs, "seed", "serve.seed")
	fs.Duration("span", defaults.Serve.Span, "time range, ending now, of seeded records")
	bind(fs, "span", "serve.span")
	fs.StringSlice("peers", defaults.Serve.Peers, "addresses advertised as known peers")
	bind(fs, "peers", "serve.peers")
	fs.String("metrics", defaults.Serve.MetricsAddr, "address to serve prometheus metrics on")
	bind(fs, "metrics", "serve.metrics-addr")
}
