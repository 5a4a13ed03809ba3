/**
 * SQLite-backed inventory store.
 *
 * Grounded in the teacher's internal/storage.SQLiteStorage for the
 * sql.DB/Migrate/Close shape, and in
 * original_source/src/storage/database.rs for the WAL pragmas and the
 * exact UPSERT semantics (hostname/vendor stickiness via COALESCE,
 * first_seen_at omitted from the update clause).
 */

package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fieldwatcher/fieldwatcher/internal/model"
)

// SQLiteStore implements Store over an embedded SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens the database at path, enables WAL journaling and
// NORMAL synchronous mode, and applies the schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: set WAL journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: set synchronous mode: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SyncAsset performs the atomic UPSERT §4.5 describes: ip_address,
// vlan_id, discovery_method, and last_seen_at always move to the new
// value; hostname and vendor are only overwritten when the incoming
// value is non-empty; first_seen_at is never touched on conflict.
func (s *SQLiteStore) SyncAsset(ctx context.Context, asset model.Asset) error {
	hostname := sql.NullString{String: asset.Hostname, Valid: asset.Hostname != ""}
	vendor := sql.NullString{String: asset.Vendor, Valid: asset.Vendor != ""}

	_, err := s.db.ExecContext(ctx, upsertAssetQuery,
		asset.MACAddress, asset.IPAddress, hostname, vendor, asset.VLANID,
		string(asset.DiscoveryMethod), asset.FirstSeenAt, asset.LastSeenAt,
	)
	if err != nil {
		return fmt.Errorf("storage: sync asset %s: %w", asset.MACAddress, err)
	}
	return nil
}

// GetAllAssets returns every known asset, most recently seen first.
func (s *SQLiteStore) GetAllAssets(ctx context.Context) ([]model.Asset, error) {
	rows, err := s.db.QueryContext(ctx, selectAllAssetsQuery)
	if err != nil {
		return nil, fmt.Errorf("storage: list assets: %w", err)
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		var (
			a        model.Asset
			hostname sql.NullString
			vendor   sql.NullString
			method   string
		)
		if err := rows.Scan(&a.MACAddress, &a.IPAddress, &hostname, &vendor, &a.VLANID, &method, &a.FirstSeenAt, &a.LastSeenAt); err != nil {
			return nil, fmt.Errorf("storage: scan asset row: %w", err)
		}
		a.Hostname = hostname.String
		a.Vendor = vendor.String
		a.DiscoveryMethod = model.Method(method)
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Reset drops and re-creates the assets table, discarding the inventory.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS assets;"); err != nil {
		return fmt.Errorf("storage: drop assets table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("storage: recreate assets table: %w", err)
	}
	return nil
}
