/**
 * Inventory store tests.
 */

package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

func openTestStore(t *testing.T, name string) *SQLiteStore {
	t.Helper()
	dbPath := name
	t.Cleanup(func() {
		os.Remove(dbPath)
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	})

	store, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreSyncAndList(t *testing.T) {
	store := openTestStore(t, "test_fieldwatcher.db")
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	asset := model.Asset{
		MACAddress:      "AA:BB:CC:DD:EE:FF",
		IPAddress:       "192.168.1.100",
		Hostname:        "printer",
		Vendor:          "Hewlett Packard",
		VLANID:          10,
		DiscoveryMethod: model.MethodARP,
		FirstSeenAt:     now,
		LastSeenAt:      now,
	}
	require.NoError(t, store.SyncAsset(ctx, asset))

	assets, err := store.GetAllAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.Equal(t, "printer", assets[0].Hostname)
}

func TestSQLiteStoreHostnameStickyThroughUpsert(t *testing.T) {
	store := openTestStore(t, "test_fieldwatcher_sticky.db")
	ctx := context.Background()
	first := time.Now().Truncate(time.Second)

	require.NoError(t, store.SyncAsset(ctx, model.Asset{
		MACAddress:      "11:22:33:44:55:66",
		IPAddress:       "10.0.0.5",
		Hostname:        "thermostat",
		DiscoveryMethod: model.MethodMDNS,
		FirstSeenAt:     first,
		LastSeenAt:      first,
	}))

	second := first.Add(time.Minute)
	require.NoError(t, store.SyncAsset(ctx, model.Asset{
		MACAddress:      "11:22:33:44:55:66",
		IPAddress:       "10.0.0.6",
		Hostname:        "", // not observed this time; must not clobber stored value
		DiscoveryMethod: model.MethodARP,
		FirstSeenAt:     second,
		LastSeenAt:      second,
	}))

	assets, err := store.GetAllAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1, "expected UPSERT, not a second row")

	got := assets[0]
	require.Equal(t, "thermostat", got.Hostname, "hostname must survive the empty-hostname update")
	require.Equal(t, "10.0.0.6", got.IPAddress, "ip_address is always overwritten")
	require.True(t, got.FirstSeenAt.Equal(first), "first_seen_at must never move on conflict")
	require.True(t, got.LastSeenAt.Equal(second))
}

func TestSQLiteStoreReset(t *testing.T) {
	store := openTestStore(t, "test_fieldwatcher_reset.db")
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SyncAsset(ctx, model.Asset{MACAddress: "DE:AD:BE:EF:00:01", IPAddress: "10.0.0.1", FirstSeenAt: now, LastSeenAt: now}))
	require.NoError(t, store.Reset(ctx))

	assets, err := store.GetAllAssets(ctx)
	require.NoError(t, err)
	require.Empty(t, assets)
}
