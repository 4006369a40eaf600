package config

import (
	"flag"
	"os"

	"github.com/neximprove/portal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database file path (default from Config)
//	-l string   log format: text or json
//	-e string   directory for CSV exports
//	-s          strict (collision-free) shipment id generation
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-e", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database file path")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for CSV exports")
	fs.BoolVar(&cfg.StrictShipmentIDs, "s", cfg.StrictShipmentIDs, "strict shipment id generation")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
