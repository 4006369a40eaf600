package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"go.uber.org/zap"

	"github.com/neximprove/portal/internal/cli"
	"github.com/neximprove/portal/internal/config"
	"github.com/neximprove/portal/internal/logging"
)

func newLogger(format string) (logging.Logger, func(), error) {
	if format == "json" {
		zl, err := zap.NewProduction()
		if err != nil {
			return nil, nil, err
		}
		return logging.NewZapLogger(zl), func() { _ = zl.Sync() }, nil
	}
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))), func() {}, nil
}

func main() {

	cfg := config.LoadConfig()

	logger, cleanup, err := newLogger(cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer cleanup()

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
