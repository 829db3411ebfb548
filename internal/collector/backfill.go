package collector

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mitsutoshi/gmo-data-collector/pkg/ratelimit"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"

	"go.uber.org/zap"
)

// Backfill fetches every execution of the given orders and appends them to
// my_executions in one final batch. Returns the number of rows written.
//
// Orders are fetched strictly one at a time with the gate between requests:
// GMO enforces a per-key request rate, and a throttling ban costs more than
// the serialization does. An order with zero executions is fine (it may have
// been cancelled before filling); a fetch failure is fatal to the whole run,
// nothing is written.
func (s *Syncer) Backfill(ctx context.Context, orderIDs []string, gate ratelimit.Gate) (int, error) {
	var rows []*postgres.ExecutionRecord

	for i, orderID := range orderIDs {
		if i > 0 {
			gate.Wait()
		}
		s.logger.Info("fetching executions for order", zap.String("order_id", orderID))

		execs, err := s.venue.GetExecutions(ctx, orderID, "")
		if err != nil {
			return 0, fmt.Errorf("fetch executions for order %s: %w", orderID, err)
		}

		for _, e := range execs {
			rec, err := postgres.ToExecutionRecord(e)
			if err != nil {
				return 0, err
			}
			s.logger.Info("  execution", zap.Int64("execution_id", e.ExecutionID))
			rows = append(rows, rec)
		}
	}

	written, err := s.sink.InsertExecutions(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("write backfill batch: %w", err)
	}

	s.logger.Info("backfill finished",
		zap.Int("orders", len(orderIDs)),
		zap.Int("rows", written))
	return written, nil
}

// ReadOrderIDs loads order ids from the first column of a CSV file. The whole
// file is read up front; the backfill CSV is small and operator-curated.
func ReadOrderIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open order id file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may carry trailing memo columns
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read order id file: %w", err)
	}

	var ids []string
	for _, rec := range records {
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		ids = append(ids, rec[0])
	}
	return ids, nil
}
