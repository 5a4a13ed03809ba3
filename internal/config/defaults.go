/**
 * Configuration defaults.
 */

package config

const (
	defaultDBPath      = "fieldwatcher.db"
	defaultMetricsAddr = ""
)
