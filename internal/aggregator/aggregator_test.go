package aggregator

import (
	"context"
	"testing"
	"time"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

type fakeStore struct {
	synced []model.Asset
}

func (f *fakeStore) SyncAsset(ctx context.Context, asset model.Asset) error {
	f.synced = append(f.synced, asset)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

func TestFirstSightingAlwaysSyncs(t *testing.T) {
	store := &fakeStore{}
	ch := make(chan model.DiscoveryRecord, 1)
	a := New(ch, store, nopLogger{})

	rec := model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:01", IP: "192.168.1.5", Method: model.MethodARP, ObservedAt: time.Now()}
	a.process(context.Background(), rec)

	if len(store.synced) != 1 {
		t.Fatalf("expected 1 sync, got %d", len(store.synced))
	}
}

func TestUnchangedWithinHeartbeatIsDropped(t *testing.T) {
	store := &fakeStore{}
	ch := make(chan model.DiscoveryRecord, 1)
	a := New(ch, store, nopLogger{})

	now := time.Now()
	first := model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:02", IP: "192.168.1.6", Method: model.MethodARP, ObservedAt: now}
	a.process(context.Background(), first)

	second := model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:02", IP: "192.168.1.6", Method: model.MethodARP, ObservedAt: now.Add(3 * time.Second)}
	a.process(context.Background(), second)

	if len(store.synced) != 1 {
		t.Fatalf("expected no second sync within heartbeat window, got %d syncs", len(store.synced))
	}
}

func TestIPChangeForcesSync(t *testing.T) {
	store := &fakeStore{}
	ch := make(chan model.DiscoveryRecord, 1)
	a := New(ch, store, nopLogger{})

	now := time.Now()
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:03", IP: "192.168.1.7", Method: model.MethodARP, ObservedAt: now})
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:03", IP: "192.168.1.8", Method: model.MethodARP, ObservedAt: now.Add(time.Second)})

	if len(store.synced) != 2 {
		t.Fatalf("expected a sync on IP change, got %d syncs", len(store.synced))
	}
}

func TestHostnamePromotionForcesSyncAndIsRemembered(t *testing.T) {
	store := &fakeStore{}
	ch := make(chan model.DiscoveryRecord, 1)
	a := New(ch, store, nopLogger{})

	now := time.Now()
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:04", IP: "192.168.1.9", Method: model.MethodMDNS, ObservedAt: now})
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:04", IP: "192.168.1.9", Method: model.MethodMDNS, Hostname: "printer", ObservedAt: now.Add(time.Second)})

	if len(store.synced) != 2 {
		t.Fatalf("expected a sync on hostname promotion, got %d syncs", len(store.synced))
	}
	if got := store.synced[1].Hostname; got != "printer" {
		t.Errorf("synced hostname = %q, want %q", got, "printer")
	}

	// A later ARP record with no hostname must not clobber the remembered one.
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:04", IP: "192.168.1.10", Method: model.MethodARP, ObservedAt: now.Add(2 * time.Second)})
	if got := store.synced[2].Hostname; got != "printer" {
		t.Errorf("hostname memory lost: got %q, want %q preserved", got, "printer")
	}
}

func TestMethodChangeForcesSync(t *testing.T) {
	store := &fakeStore{}
	ch := make(chan model.DiscoveryRecord, 1)
	a := New(ch, store, nopLogger{})

	now := time.Now()
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:05", IP: "192.168.1.11", Method: model.MethodARP, ObservedAt: now})
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:05", IP: "192.168.1.11", Method: model.MethodNDP, ObservedAt: now.Add(time.Second)})

	if len(store.synced) != 2 {
		t.Fatalf("expected a sync on method change, got %d syncs", len(store.synced))
	}
}

func TestHeartbeatForcesSyncAfterWindow(t *testing.T) {
	store := &fakeStore{}
	ch := make(chan model.DiscoveryRecord, 1)
	a := New(ch, store, nopLogger{})

	now := time.Now()
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:06", IP: "192.168.1.12", Method: model.MethodARP, ObservedAt: now})
	a.process(context.Background(), model.DiscoveryRecord{MAC: "AA:BB:CC:00:00:06", IP: "192.168.1.12", Method: model.MethodARP, ObservedAt: now.Add(11 * time.Second)})

	if len(store.synced) != 2 {
		t.Fatalf("expected a sync after the heartbeat window elapsed, got %d syncs", len(store.synced))
	}
}
