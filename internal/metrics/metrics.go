/**
 * Metrics.
 *
 * A promauto-registered counter/gauge set scoped to discovery, modeled on
 * grimm-is-glacic's internal/metrics.Registry singleton pattern (Get()
 * builds it once, package code reaches for the shared instance rather
 * than threading it through every constructor).
 */

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric fieldwatcher exports.
type Registry struct {
	FramesCaptured   *prometheus.CounterVec
	RecordsParsed    *prometheus.CounterVec
	RecordsDropped   *prometheus.CounterVec
	ChannelFull      *prometheus.CounterVec
	AssetsSynced     prometheus.Counter
	StoreErrors      prometheus.Counter
	InventorySize    prometheus.Gauge
	CaptureWorkersUp prometheus.Gauge
}

var (
	once     sync.Once
	registry *Registry
)

// Get returns the process-wide metrics registry, building it on first use.
func Get() *Registry {
	once.Do(func() {
		registry = newRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	r := &Registry{}

	r.FramesCaptured = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldwatcher_frames_captured_total",
		Help: "Frames read off the wire, per interface.",
	}, []string{"interface"})

	r.RecordsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldwatcher_records_parsed_total",
		Help: "Discovery records produced by the parser, per method.",
	}, []string{"method"})

	r.RecordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldwatcher_records_dropped_total",
		Help: "Discovery records dropped before reaching the store, by reason.",
	}, []string{"reason"})

	r.ChannelFull = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldwatcher_channel_full_total",
		Help: "Times a capture worker found the aggregator channel full.",
	}, []string{"interface"})

	r.AssetsSynced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldwatcher_assets_synced_total",
		Help: "Successful UPSERTs into the inventory store.",
	})

	r.StoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fieldwatcher_store_errors_total",
		Help: "Failed writes to the inventory store.",
	})

	r.InventorySize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fieldwatcher_inventory_size",
		Help: "Distinct MAC addresses currently known to the inventory.",
	})

	r.CaptureWorkersUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fieldwatcher_capture_workers_up",
		Help: "Capture workers currently running.",
	})

	return r
}
