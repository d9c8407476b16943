package synchealth

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/synchealth/common/types"
	"github.com/spacemeshos/synchealth/metrics"
)

const subsystem = "session"

const (
	outcomeConnectFailed = "connect_failed"
	outcomeMeasureFailed = "measure_failed"
	outcomeRepairFailed  = "repair_failed"
	outcomePersistFailed = "persist_failed"
	outcomeInSync        = "in_sync"
	outcomeDiverged      = "diverged"
)

var (
	peerOutcomes = metrics.NewCounter(
		"peers",
		subsystem,
		"peers processed by outcome",
		[]string{"outcome"},
	)
	selectedPeers = metrics.NewGauge(
		"selected_peers",
		subsystem,
		"peers selected by the last run",
		[]string{},
	)
	transfers = metrics.NewCounter(
		"transfers",
		subsystem,
		"records transferred during repair",
		[]string{"direction", "result"},
	)
	messageDiff = metrics.NewHistogramWithBuckets(
		"message_diff",
		subsystem,
		"absolute difference of message counts between primary and peer",
		[]string{},
		prometheus.ExponentialBuckets(1, 4, 10),
	)
	runDuration = metrics.NewHistogramWithBuckets(
		"run_duration_seconds",
		subsystem,
		"duration of a run",
		[]string{},
		prometheus.ExponentialBuckets(0.1, 2, 14),
	)
)

func reportTransfers(direction string, outcomes []types.TransferOutcome) {
	ok := types.Succeeded(outcomes)
	transfers.WithLabelValues(direction, "ok").Add(float64(ok))
	transfers.WithLabelValues(direction, "failed").Add(float64(len(outcomes) - ok))
}
