package postgres

import "time"

// PositionRecord is a running cost-basis checkpoint emitted by the position
// fold. The row with the greatest execution_id is the authoritative state;
// older rows form an append-only audit trail and are never rewritten.
type PositionRecord struct {
	ID uint `gorm:"primaryKey"`

	// Wall-clock string "YYYY-MM-DD HH:MM:SS" of the execution that produced
	// this checkpoint.
	Timestamp   string `gorm:"type:varchar(19);not null"`
	ExecutionID int64  `gorm:"column:execution_id;not null;index:idx_positions_execution_id"`

	AveragePrice float64 `gorm:"column:average_price;type:numeric;not null"`
	Size         float64 `gorm:"type:numeric;not null"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (PositionRecord) TableName() string {
	return "positions"
}
