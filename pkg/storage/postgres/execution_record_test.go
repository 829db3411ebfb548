package postgres_test

import (
	"errors"
	"testing"

	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"
)

func sampleExecution() gmo.Execution {
	return gmo.Execution{
		ExecutionID: 72123,
		OrderID:     123456789,
		Symbol:      "BTC",
		Side:        "BUY",
		SettleType:  "OPEN",
		Size:        "0.7361",
		Price:       "877404",
		LossGain:    "0",
		Fee:         "323",
		Timestamp:   "2019-03-19T02:15:06.081Z",
	}
}

// go test -v --run TestToExecutionRecord
func TestToExecutionRecord(t *testing.T) {
	rec, err := postgres.ToExecutionRecord(sampleExecution())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ExecutionID != 72123 || rec.OrderID != 123456789 {
		t.Errorf("unexpected ids: %+v", rec)
	}
	if rec.Symbol != "BTC" || rec.Side != "BUY" || rec.SettleType != "OPEN" {
		t.Errorf("unexpected string fields: %+v", rec)
	}
	if rec.Size != 0.7361 || rec.Price != 877404.0 || rec.LossGain != 0.0 || rec.Fee != 323.0 {
		t.Errorf("unexpected numeric fields: %+v", rec)
	}
	if rec.Timestamp != "2019-03-19 02:15:06" {
		t.Errorf("unexpected timestamp: %s", rec.Timestamp)
	}
}

// go test -v --run TestToExecutionRecordConvertsToUTC
func TestToExecutionRecordConvertsToUTC(t *testing.T) {
	e := sampleExecution()
	e.Timestamp = "2019-03-19T11:15:06.081+09:00"

	rec, err := postgres.ToExecutionRecord(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Timestamp != "2019-03-19 02:15:06" {
		t.Errorf("expected UTC wall clock, got %s", rec.Timestamp)
	}
}

// go test -v --run TestToExecutionRecordMalformedTimestamp
func TestToExecutionRecordMalformedTimestamp(t *testing.T) {
	e := sampleExecution()
	e.Timestamp = "2019/03/19 02:15:06"

	_, err := postgres.ToExecutionRecord(e)
	if !errors.Is(err, postgres.ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
}

// go test -v --run TestToExecutionRecordMalformedNumeric
func TestToExecutionRecordMalformedNumeric(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*gmo.Execution)
	}{
		{"size", func(e *gmo.Execution) { e.Size = "" }},
		{"price", func(e *gmo.Execution) { e.Price = "1,000" }},
		{"lossGain", func(e *gmo.Execution) { e.LossGain = "null" }},
		{"fee", func(e *gmo.Execution) { e.Fee = "abc" }},
	} {
		e := sampleExecution()
		tc.mutate(&e)

		_, err := postgres.ToExecutionRecord(e)
		if !errors.Is(err, postgres.ErrMalformedNumeric) {
			t.Errorf("%s: expected ErrMalformedNumeric, got %v", tc.name, err)
		}
	}
}
