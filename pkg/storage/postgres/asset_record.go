package postgres

import "time"

// AssetRecord represents a point-in-time balance sample stored in the database.
// Every snapshot run appends fresh rows; there is no delta logic against
// earlier samples.
type AssetRecord struct {
	ID uint `gorm:"primaryKey"`

	// Wall-clock string "YYYY-MM-DD HH:MM:SS" shared by all rows of one run.
	Timestamp string `gorm:"type:varchar(19);not null;index:idx_assets_timestamp"`
	Symbol    string `gorm:"type:text;not null"`

	Amount    float64 `gorm:"type:numeric;not null"`
	Available float64 `gorm:"type:numeric;not null"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (AssetRecord) TableName() string {
	return "assets"
}
