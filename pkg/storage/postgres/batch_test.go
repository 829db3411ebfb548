package postgres_test

import (
	"context"
	"testing"

	"github.com/mitsutoshi/gmo-data-collector/pkg/storage/postgres"
)

// The adapter defines an empty batch as a successful no-op that never reaches
// the database. The nil DB here proves it: any insert attempt would panic.
// go test -v --run TestInsertEmptyBatchIsNoOp
func TestInsertEmptyBatchIsNoOp(t *testing.T) {
	client := &postgres.PostgresClient{DB: nil}
	ctx := context.Background()

	n, err := client.InsertExecutions(ctx, nil)
	if err != nil || n != 0 {
		t.Errorf("InsertExecutions: expected (0, nil), got (%d, %v)", n, err)
	}

	n, err = client.InsertAssets(ctx, []*postgres.AssetRecord{})
	if err != nil || n != 0 {
		t.Errorf("InsertAssets: expected (0, nil), got (%d, %v)", n, err)
	}

	n, err = client.InsertPositions(ctx, nil)
	if err != nil || n != 0 {
		t.Errorf("InsertPositions: expected (0, nil), got (%d, %v)", n, err)
	}
}
