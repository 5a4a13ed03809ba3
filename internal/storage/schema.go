/**
 * Inventory schema.
 *
 * Single table, keyed by MAC address, per SPEC_FULL.md §4.5 and
 * original_source/src/storage/database.rs's init_db.
 */

package storage

// Schema creates the inventory table if it does not already exist.
const Schema = `
CREATE TABLE IF NOT EXISTS assets (
    mac_address      TEXT PRIMARY KEY,
    ip_address       TEXT,
    hostname         TEXT,
    vendor           TEXT,
    vlan_id          INTEGER,
    discovery_method TEXT,
    first_seen_at    TIMESTAMP,
    last_seen_at     TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_assets_last_seen ON assets(last_seen_at);
`
