package collector

import (
	"context"
	"testing"
	"time"

	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAssetsRecordsTrackedSymbols(t *testing.T) {
	venue := &fakeVenue{
		assets: []gmo.Asset{
			{Symbol: "JPY", Amount: "250000.5", Available: "200000"},
			{Symbol: "BTC", Amount: "0.35641193", Available: "0.35641193"},
			{Symbol: "XRP", Amount: "100", Available: "100"}, // not tracked
		},
	}
	sink := &memorySink{}

	syncer := newTestSyncer(venue, sink)
	syncer.now = func() time.Time {
		return time.Date(2023, 1, 10, 9, 15, 6, 0, time.UTC)
	}

	written, err := syncer.SnapshotAssets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, written)
	require.Len(t, sink.assets, 2)

	assert.Equal(t, "JPY", sink.assets[0].Symbol)
	assert.Equal(t, 250000.5, sink.assets[0].Amount)
	assert.Equal(t, 200000.0, sink.assets[0].Available)
	assert.Equal(t, "BTC", sink.assets[1].Symbol)

	// All rows of one run share the same wall-clock stamp.
	assert.Equal(t, "2023-01-10 09:15:06", sink.assets[0].Timestamp)
	assert.Equal(t, sink.assets[0].Timestamp, sink.assets[1].Timestamp)
}

func TestSnapshotAssetsVenueErrorAborts(t *testing.T) {
	venue := &fakeVenue{assetsErr: errVenueDown}
	sink := &memorySink{}

	_, err := newTestSyncer(venue, sink).SnapshotAssets(context.Background())

	require.ErrorIs(t, err, errVenueDown)
	assert.Empty(t, sink.assets)
}

func TestSnapshotAssetsMalformedBalanceAborts(t *testing.T) {
	venue := &fakeVenue{
		assets: []gmo.Asset{{Symbol: "BTC", Amount: "lots", Available: "0"}},
	}
	sink := &memorySink{}

	_, err := newTestSyncer(venue, sink).SnapshotAssets(context.Background())

	require.ErrorIs(t, err, postgres.ErrMalformedNumeric)
	assert.Empty(t, sink.assets)
}
