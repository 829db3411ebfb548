package collector

import (
	"context"
	"time"

	"github.com/mitsutoshi/gmo-data-collector/config"
	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"

	"go.uber.org/zap"
)

// Venue is the slice of the exchange API the pipeline consumes.
// *gmo.RESTClient satisfies it; tests use a fake.
type Venue interface {
	GetLatestExecutions(ctx context.Context, symbol string, page, count int64) (*gmo.LatestExecutions, error)
	GetExecutions(ctx context.Context, orderID, executionID string) ([]gmo.Execution, error)
	GetAssets(ctx context.Context) ([]gmo.Asset, error)
}

// Sink is the slice of the warehouse client the pipeline consumes.
// *postgres.PostgresClient satisfies it; tests use an in-memory fake.
type Sink interface {
	MaxExecutionID(ctx context.Context) (int64, error)
	LatestPosition(ctx context.Context) (*postgres.PositionRecord, error)
	InsertExecutions(ctx context.Context, rows []*postgres.ExecutionRecord) (int, error)
	InsertAssets(ctx context.Context, rows []*postgres.AssetRecord) (int, error)
	InsertPositions(ctx context.Context, rows []*postgres.PositionRecord) (int, error)
}

// Syncer runs the reconciliation pipeline: one watermark query, some number of
// venue fetches, one batch write. Strictly sequential; no retries. Any failure
// aborts the run before the batch write, so re-invoking after a failure is the
// recovery path.
type Syncer struct {
	venue  Venue
	sink   Sink
	cfg    config.SyncConfig
	logger *zap.Logger
	now    func() time.Time
}

func NewSyncer(venue Venue, sink Sink, cfg config.SyncConfig, logger *zap.Logger) *Syncer {
	return &Syncer{
		venue:  venue,
		sink:   sink,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}
