package collector

import (
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"
	"github.com/shopspring/decimal"
)

// PositionState carries the two registers of the cost-basis fold: the running
// position size in the base asset and the size-weighted average buy price of
// the current long position.
type PositionState struct {
	Size     float64
	AvgPrice float64
}

// Fold applies an ordered batch of normalized executions to the state and
// emits one checkpoint per execution. Rows must already be in ascending
// execution-time order; Fold itself never reorders.
//
// A BUY folds the new lot into the weighted average and grows the position.
// A SELL only shrinks the position: the realized gain or loss on the sold lot
// never feeds back into the cost basis.
//
// Pure function of its inputs; the caller owns the returned state.
func Fold(state PositionState, rows []*postgres.ExecutionRecord) ([]*postgres.PositionRecord, PositionState) {
	checkpoints := make([]*postgres.PositionRecord, 0, len(rows))

	for _, r := range rows {
		if r.Side == "BUY" {
			// Weighted average of the existing basis and the new lot.
			// A zero denominator only happens against an exactly offsetting
			// short position; the average is kept unchanged by convention.
			if denom := state.Size + r.Size; denom != 0 {
				state.AvgPrice = (r.Price*r.Size + state.AvgPrice*state.Size) / denom
			}
			state.Size += r.Size
		} else {
			state.Size -= r.Size
		}

		checkpoints = append(checkpoints, &postgres.PositionRecord{
			Timestamp:    r.Timestamp,
			ExecutionID:  r.ExecutionID,
			AveragePrice: state.AvgPrice,
			Size:         roundSize(state.Size),
		})
	}

	return checkpoints, state
}

// roundSize snaps a running size to the venue's base-asset granularity of
// 8 fractional digits, rounding half away from zero.
func roundSize(v float64) float64 {
	return decimal.NewFromFloat(v).Round(8).InexactFloat64()
}
