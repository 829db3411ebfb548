package collector

import (
	"context"
	"errors"

	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"
)

// fakeVenue serves canned venue responses and records the fetch order.
type fakeVenue struct {
	latest     *gmo.LatestExecutions
	latestErr  error
	byOrder    map[string][]gmo.Execution
	byOrderErr map[string]error
	assets     []gmo.Asset
	assetsErr  error

	fetchedOrders []string
}

func (v *fakeVenue) GetLatestExecutions(ctx context.Context, symbol string, page, count int64) (*gmo.LatestExecutions, error) {
	if v.latestErr != nil {
		return nil, v.latestErr
	}
	if v.latest == nil {
		return &gmo.LatestExecutions{}, nil
	}
	return v.latest, nil
}

func (v *fakeVenue) GetExecutions(ctx context.Context, orderID, executionID string) ([]gmo.Execution, error) {
	v.fetchedOrders = append(v.fetchedOrders, orderID)
	if err := v.byOrderErr[orderID]; err != nil {
		return nil, err
	}
	return v.byOrder[orderID], nil
}

func (v *fakeVenue) GetAssets(ctx context.Context) ([]gmo.Asset, error) {
	if v.assetsErr != nil {
		return nil, v.assetsErr
	}
	return v.assets, nil
}

// memorySink implements Sink in memory, honoring the adapter contract:
// appending an empty batch returns 0 without counting as a write.
type memorySink struct {
	maxID        int64
	maxIDErr     error
	latestPos    *postgres.PositionRecord
	latestPosErr error
	insertErr    error

	executions []*postgres.ExecutionRecord
	assets     []*postgres.AssetRecord
	positions  []*postgres.PositionRecord

	executionWrites int
}

func (m *memorySink) MaxExecutionID(ctx context.Context) (int64, error) {
	if m.maxIDErr != nil {
		return 0, m.maxIDErr
	}
	return m.maxID, nil
}

func (m *memorySink) LatestPosition(ctx context.Context) (*postgres.PositionRecord, error) {
	if m.latestPosErr != nil {
		return nil, m.latestPosErr
	}
	return m.latestPos, nil
}

func (m *memorySink) InsertExecutions(ctx context.Context, rows []*postgres.ExecutionRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.executionWrites++
	m.executions = append(m.executions, rows...)
	return len(rows), nil
}

func (m *memorySink) InsertAssets(ctx context.Context, rows []*postgres.AssetRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.assets = append(m.assets, rows...)
	return len(rows), nil
}

func (m *memorySink) InsertPositions(ctx context.Context, rows []*postgres.PositionRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.positions = append(m.positions, rows...)
	return len(rows), nil
}

var errVenueDown = errors.New("venue unreachable")
