/**
 * SQL queries.
 *
 * Centralizes the inventory store's raw SQL so the UPSERT's stickiness
 * rules live in one place. Grounded in
 * original_source/src/storage/database.rs's sync_asset statement.
 */

package storage

const upsertAssetQuery = `
INSERT INTO assets (
	mac_address, ip_address, hostname, vendor, vlan_id,
	discovery_method, first_seen_at, last_seen_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(mac_address) DO UPDATE SET
	ip_address       = excluded.ip_address,
	hostname         = COALESCE(excluded.hostname, assets.hostname),
	vendor           = COALESCE(excluded.vendor, assets.vendor),
	vlan_id          = excluded.vlan_id,
	discovery_method = excluded.discovery_method,
	last_seen_at     = excluded.last_seen_at
`

const selectAllAssetsQuery = `
SELECT mac_address, ip_address, hostname, vendor, vlan_id, discovery_method, first_seen_at, last_seen_at
FROM assets
ORDER BY last_seen_at DESC
`
