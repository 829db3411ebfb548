package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MaxExecutionID returns the greatest execution_id stored in my_executions,
// or 0 when the table is empty. An empty table is not an error; it only means
// no prior sync has written anything.
func (p *PostgresClient) MaxExecutionID(ctx context.Context) (int64, error) {
	var maxID int64
	err := p.DB.WithContext(ctx).
		Model(&ExecutionRecord{}).
		Select("COALESCE(MAX(execution_id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, fmt.Errorf("query max execution_id: %w", err)
	}
	return maxID, nil
}

// LatestPosition returns the checkpoint with the greatest execution_id, or
// nil when the positions table holds none.
func (p *PostgresClient) LatestPosition(ctx context.Context) (*PositionRecord, error) {
	var rec PositionRecord
	err := p.DB.WithContext(ctx).
		Order("execution_id DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest position: %w", err)
	}
	return &rec, nil
}
