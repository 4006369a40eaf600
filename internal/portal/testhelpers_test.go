package portal

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/neximprove/portal/internal/kvstore"
	"github.com/neximprove/portal/internal/logging"
)

func newTestService(t *testing.T) (*Service, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(store, log), store
}

// freezeClock pins nowFn for the duration of the test.
func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := nowFn
	nowFn = func() time.Time { return at }
	t.Cleanup(func() { nowFn = orig })
}
