// Package config handles runtime configuration for the portal, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the portal.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local store database.
//   - LogFormat: "text" for human-readable logs, "json" for structured output.
//   - StrictShipmentIDs: use collision-free shipment id generation instead
//     of the historical count-based scheme.
//   - ExportDir: directory CSV reports are written into.
type Config struct {
	DatabaseDSN       string
	LogFormat         string
	StrictShipmentIDs bool
	ExportDir         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "portal.db"
	c.LogFormat = "text"
	c.StrictShipmentIDs = false
	c.ExportDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
