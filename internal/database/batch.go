package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// execBatch queues query once per argument tuple, sends them in a single
// round trip and returns the total rows affected. No statement is sent when
// args is empty.
func execBatch(ctx context.Context, db DBTX, query string, args [][]interface{}) (int64, error) {
	if len(args) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, a := range args {
		batch.Queue(query, a...)
	}

	br := db.SendBatch(ctx, batch)
	defer br.Close()

	var affected int64
	for i := range args {
		tag, err := br.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch statement %d of %d: %w", i+1, len(args), err)
		}
		affected += tag.RowsAffected()
	}

	if err := br.Close(); err != nil {
		return affected, fmt.Errorf("close batch: %w", err)
	}
	return affected, nil
}
