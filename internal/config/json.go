package config

import (
	"encoding/json"
	"os"

	"github.com/neximprove/portal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a config file only
// overrides what it mentions.
type JsonConfig struct {
	DatabaseDSN       *string `json:"database_dsn"`
	LogFormat         *string `json:"log_format"`
	StrictShipmentIDs *bool   `json:"strict_shipment_ids"`
	ExportDir         *string `json:"export_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, nothing is loaded.
// Read or unmarshal errors panic (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.StrictShipmentIDs != nil {
		cfg.StrictShipmentIDs = *jc.StrictShipmentIDs
	}
	if jc.ExportDir != nil {
		cfg.ExportDir = *jc.ExportDir
	}
}
