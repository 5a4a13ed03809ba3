/**
 * Throttle aggregator.
 *
 * Sole consumer of the capture channel. Bounds write amplification against
 * the inventory store: a record is only persisted when it represents
 * meaningful change for its MAC, or when the 10-second heartbeat window
 * has elapsed. Grounded in original_source/src/main.rs's throttle_cache
 * loop and in the teacher's internal/enricher.DeviceTracker, which uses
 * the same one-mutex-one-map, sole-mutator shape.
 */

package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/fieldwatcher/fieldwatcher/internal/metrics"
	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

// heartbeatWindow forces a write at least this often even with no change,
// so a long-lived, quiet device still advances last_seen_at.
const heartbeatWindow = 10 * time.Second

// Store is the subset of the inventory store the aggregator needs.
type Store interface {
	SyncAsset(ctx context.Context, asset model.Asset) error
}

// Logger is the narrow logging surface the aggregator needs.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Aggregator drains a channel of discovery records, deciding per MAC
// whether each one represents enough change to persist.
type Aggregator struct {
	records <-chan model.DiscoveryRecord
	store   Store
	log     Logger

	mu    sync.RWMutex
	cache map[string]*model.ThrottleEntry

	synced  uint64
	dropped uint64
}

// New builds an Aggregator reading from records and writing through store.
func New(records <-chan model.DiscoveryRecord, store Store, log Logger) *Aggregator {
	return &Aggregator{
		records: records,
		store:   store,
		log:     log,
		cache:   make(map[string]*model.ThrottleEntry),
	}
}

// Run drains records until the channel closes or ctx is canceled. On
// cancellation it stops accepting new records but lets an in-flight store
// write finish before returning, per the spec's drain-before-shutdown rule.
func (a *Aggregator) Run(ctx context.Context) {
	for {
		select {
		case rec, ok := <-a.records:
			if !ok {
				return
			}
			a.process(ctx, rec)
		case <-ctx.Done():
			return
		}
	}
}

func (a *Aggregator) process(ctx context.Context, rec model.DiscoveryRecord) {
	now := rec.ObservedAt
	if now.IsZero() {
		now = time.Now()
	}

	a.mu.Lock()
	prev, hadPrev := a.cache[rec.MAC]

	shouldSync := !hadPrev
	var effectiveHostname string
	if hadPrev {
		ipChanged := prev.LastIP != rec.IP
		hostnamePromoted := prev.LastHostname == "" && rec.Hostname != ""
		methodChanged := prev.LastMethod != rec.Method
		heartbeatElapsed := now.Sub(prev.LastSyncAt) > heartbeatWindow
		shouldSync = ipChanged || hostnamePromoted || methodChanged || heartbeatElapsed

		effectiveHostname = rec.Hostname
		if effectiveHostname == "" {
			effectiveHostname = prev.LastHostname
		}
	} else {
		effectiveHostname = rec.Hostname
	}

	if !shouldSync {
		a.mu.Unlock()
		return
	}

	a.cache[rec.MAC] = &model.ThrottleEntry{
		LastSyncAt:   now,
		LastIP:       rec.IP,
		LastHostname: effectiveHostname,
		LastMethod:   rec.Method,
	}
	a.mu.Unlock()

	asset := model.Asset{
		MACAddress:      rec.MAC,
		IPAddress:       rec.IP,
		Hostname:        effectiveHostname,
		Vendor:          rec.Vendor,
		VLANID:          rec.VLANID,
		DiscoveryMethod: rec.Method,
		FirstSeenAt:     now,
		LastSeenAt:      now,
	}

	if err := a.store.SyncAsset(ctx, asset); err != nil {
		a.dropped++
		metrics.Get().StoreErrors.Inc()
		a.log.Errorf("aggregator: sync asset for %s: %v", rec.MAC, err)
		return
	}
	a.synced++
	metrics.Get().AssetsSynced.Inc()
	metrics.Get().InventorySize.Set(float64(len(a.cache)))
}

// Stats reports the aggregator's lifetime counters.
func (a *Aggregator) Stats() (synced, dropped uint64) {
	return a.synced, a.dropped
}
