package postgres

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mitsutoshi/gmo-data-collector/pkg/gmo"
)

// Errors reported when a venue execution cannot be converted into a storage
// row. Both indicate suspect source data; callers abort the run instead of
// skipping the record.
var (
	ErrMalformedTimestamp = errors.New("malformed execution timestamp")
	ErrMalformedNumeric   = errors.New("malformed numeric field")
)

// TimestampLayout is the wall-clock format stored in the sink.
const TimestampLayout = "2006-01-02 15:04:05"

// ExecutionRecord represents one trade execution stored in the database.
// Rows are append-only; execution_id is indexed for the watermark query but
// deliberately carries no uniqueness constraint, matching the sink contract.
type ExecutionRecord struct {
	ID uint `gorm:"primaryKey"`

	ExecutionID int64  `gorm:"column:execution_id;not null;index:idx_my_executions_execution_id"`
	OrderID     int64  `gorm:"column:order_id;not null"`
	Symbol      string `gorm:"type:text;not null"`
	Side        string `gorm:"type:varchar(4);not null"`
	SettleType  string `gorm:"column:settle_type;type:varchar(10);not null"`

	Size     float64 `gorm:"type:numeric;not null"`
	Price    float64 `gorm:"type:numeric;not null"`
	LossGain float64 `gorm:"column:loss_gain;type:numeric;not null"`
	Fee      float64 `gorm:"type:numeric;not null"`

	// Wall-clock string "YYYY-MM-DD HH:MM:SS" in UTC, seconds precision.
	Timestamp string `gorm:"type:varchar(19);not null"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (ExecutionRecord) TableName() string {
	return "my_executions"
}

// ToExecutionRecord converts a venue execution into a storage row.
// Pure conversion: RFC3339 timestamp becomes the sink's wall-clock string and
// the venue's decimal strings become float64 columns.
func ToExecutionRecord(e gmo.Execution) (*ExecutionRecord, error) {
	t, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: execution_id=%d timestamp=%q", ErrMalformedTimestamp, e.ExecutionID, e.Timestamp)
	}

	size, err := parseNumeric("size", e.Size)
	if err != nil {
		return nil, err
	}
	price, err := parseNumeric("price", e.Price)
	if err != nil {
		return nil, err
	}
	lossGain, err := parseNumeric("lossGain", e.LossGain)
	if err != nil {
		return nil, err
	}
	fee, err := parseNumeric("fee", e.Fee)
	if err != nil {
		return nil, err
	}

	return &ExecutionRecord{
		ExecutionID: e.ExecutionID,
		OrderID:     e.OrderID,
		Symbol:      e.Symbol,
		Side:        e.Side,
		SettleType:  e.SettleType,
		Size:        size,
		Price:       price,
		LossGain:    lossGain,
		Fee:         fee,
		Timestamp:   t.UTC().Format(TimestampLayout),
	}, nil
}

func parseNumeric(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedNumeric, field, s)
	}
	return v, nil
}
