package postgres

import "context"

const insertBatchSize = 500

// InsertExecutions appends rows to my_executions in one batch.
// An empty slice is a successful no-op and never touches the database.
func (p *PostgresClient) InsertExecutions(ctx context.Context, rows []*ExecutionRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx := p.DB.WithContext(ctx).CreateInBatches(rows, insertBatchSize)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return len(rows), nil
}

// InsertAssets appends rows to assets in one batch.
func (p *PostgresClient) InsertAssets(ctx context.Context, rows []*AssetRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx := p.DB.WithContext(ctx).CreateInBatches(rows, insertBatchSize)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return len(rows), nil
}

// InsertPositions appends rows to positions in one batch.
func (p *PostgresClient) InsertPositions(ctx context.Context, rows []*PositionRecord) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx := p.DB.WithContext(ctx).CreateInBatches(rows, insertBatchSize)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return len(rows), nil
}
