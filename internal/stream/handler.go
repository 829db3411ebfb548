package stream

import (
	"context"
	"encoding/json"

	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"

	"go.uber.org/zap"
)

// ExecutionWriter is the slice of the sink the stream needs.
type ExecutionWriter interface {
	InsertExecutions(ctx context.Context, rows []*postgres.ExecutionRecord) (int, error)
}

// MakeMessageHandler returns a function that handles incoming WebSocket
// messages by parsing execution events and appending them to the sink.
// Unlike the batch pipeline, a bad streamed record is logged and dropped:
// crashing the long-lived stream on one record would lose everything after it,
// and the next batch sync picks the record up again through the watermark.
func MakeMessageHandler(logger *zap.Logger, buffer *SeenBuffer, sink ExecutionWriter) func(msg []byte) {
	return func(msg []byte) {
		// Step 1: Extract the channel for early filtering
		var meta struct {
			Channel string `json:"channel"`
		}
		if err := json.Unmarshal(msg, &meta); err != nil {
			logger.Warn("failed to extract channel", zap.Error(err))
			return
		}
		if meta.Channel != "executionEvents" {
			return // Ignore non-execution messages (e.g., subscription acks)
		}

		// Step 2: Fully parse the execution event payload
		var event ExecutionEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			logger.Warn("failed to parse execution event", zap.Error(err))
			return
		}

		// Step 3: Suppress redelivered events within this session
		if !buffer.MarkSeen(event.ExecutionID) {
			logger.Debug("duplicate execution event skipped", zap.Int64("execution_id", event.ExecutionID))
			return
		}

		rec, err := postgres.ToExecutionRecord(toExecution(event))
		if err != nil {
			logger.Warn("failed to convert execution event", zap.Error(err))
			return
		}

		ctx := context.Background()
		if _, err := sink.InsertExecutions(ctx, []*postgres.ExecutionRecord{rec}); err != nil {
			logger.Warn("failed to insert execution record", zap.Error(err))
			return
		}

		logger.Info("streamed execution stored",
			zap.Int64("execution_id", event.ExecutionID),
			zap.String("side", event.Side),
			zap.Int("session_total", buffer.Count()))
	}
}

// toExecution maps a WS event onto the REST execution shape the normalizer
// accepts. The WS feed prefixes the fill fields with "execution".
func toExecution(e ExecutionEvent) gmo.Execution {
	return gmo.Execution{
		ExecutionID: e.ExecutionID,
		OrderID:     e.OrderID,
		Symbol:      e.Symbol,
		Side:        e.Side,
		SettleType:  e.SettleType,
		Size:        e.ExecutionSize,
		Price:       e.ExecutionPrice,
		LossGain:    e.LossGain,
		Fee:         e.Fee,
		Timestamp:   e.ExecutionTimestamp,
	}
}
