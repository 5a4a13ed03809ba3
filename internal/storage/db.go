/**
 * Storage interface.
 *
 * Narrow contract the aggregator and cmd/fieldwatcher need; SQLiteStore is
 * the only implementation, but keeping it an interface matches the
 * teacher's storage.Storage pattern and lets tests substitute a fake.
 */

package storage

import (
	"context"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

// Store persists the MAC-keyed asset inventory.
type Store interface {
	Close() error
	SyncAsset(ctx context.Context, asset model.Asset) error
	GetAllAssets(ctx context.Context) ([]model.Asset, error)
	Reset(ctx context.Context) error
}
