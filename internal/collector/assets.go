package collector

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"

	"go.uber.org/zap"
)

// SnapshotAssets records the current balance of each configured symbol into
// the assets table. Every run appends a fresh sample stamped with one shared
// wall-clock timestamp; no relationship to earlier samples is kept.
func (s *Syncer) SnapshotAssets(ctx context.Context) (int, error) {
	assets, err := s.venue.GetAssets(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch assets: %w", err)
	}

	ts := s.now().UTC().Format(postgres.TimestampLayout)

	var rows []*postgres.AssetRecord
	for _, a := range assets {
		if !s.tracksAsset(a.Symbol) {
			continue
		}

		amount, err := strconv.ParseFloat(a.Amount, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: amount=%q symbol=%s", postgres.ErrMalformedNumeric, a.Amount, a.Symbol)
		}
		available, err := strconv.ParseFloat(a.Available, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: available=%q symbol=%s", postgres.ErrMalformedNumeric, a.Available, a.Symbol)
		}

		s.logger.Info("asset balance",
			zap.String("symbol", a.Symbol),
			zap.Float64("amount", amount),
			zap.Float64("available", available))

		rows = append(rows, &postgres.AssetRecord{
			Timestamp: ts,
			Symbol:    a.Symbol,
			Amount:    amount,
			Available: available,
		})
	}

	written, err := s.sink.InsertAssets(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("write assets batch: %w", err)
	}
	return written, nil
}

func (s *Syncer) tracksAsset(symbol string) bool {
	for _, sym := range s.cfg.AssetSymbols {
		if sym == symbol {
			return true
		}
	}
	return false
}
