package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listHistory = `-- name: ListHistory :many
SELECT id, sender, recipient, log_pending, send_datetime, company_id
FROM history
WHERE send_datetime >= $1 AND send_datetime < $2
ORDER BY send_datetime, id
`

type ListHistoryParams struct {
	From  pgtype.Timestamp
	Until pgtype.Timestamp
}

// ListHistory returns the records sent in the half-open range [From, Until).
func (q *Queries) ListHistory(ctx context.Context, arg ListHistoryParams) ([]History, error) {
	rows, err := q.db.Query(ctx, listHistory, arg.From, arg.Until)
	if err != nil {
		return nil, err
	}
	return scanHistory(rows)
}

const listHistoryByCompany = `-- name: ListHistoryByCompany :many
SELECT id, sender, recipient, log_pending, send_datetime, company_id
FROM history
WHERE send_datetime >= $1 AND send_datetime < $2
  AND company_id = $3
ORDER BY send_datetime, id
`

type ListHistoryByCompanyParams struct {
	From      pgtype.Timestamp
	Until     pgtype.Timestamp
	CompanyID int64
}

func (q *Queries) ListHistoryByCompany(ctx context.Context, arg ListHistoryByCompanyParams) ([]History, error) {
	rows, err := q.db.Query(ctx, listHistoryByCompany, arg.From, arg.Until, arg.CompanyID)
	if err != nil {
		return nil, err
	}
	return scanHistory(rows)
}

func scanHistory(rows pgx.Rows) ([]History, error) {
	defer rows.Close()
	var items []History
	for rows.Next() {
		var i History
		if err := rows.Scan(
			&i.ID,
			&i.Sender,
			&i.Recipient,
			&i.LogPending,
			&i.SendDatetime,
			&i.CompanyID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertHistory = `-- name: InsertHistory :exec
INSERT INTO history (sender, recipient, log_pending, send_datetime, company_id)
VALUES ($1, $2, $3, $4, $5)
`

type InsertHistoryParams struct {
	Sender       string
	Recipient    string
	LogPending   string
	SendDatetime pgtype.Timestamp
	CompanyID    int64
}

func (q *Queries) InsertHistory(ctx context.Context, arg InsertHistoryParams) error {
	_, err := q.db.Exec(ctx, insertHistory,
		arg.Sender,
		arg.Recipient,
		arg.LogPending,
		arg.SendDatetime,
		arg.CompanyID,
	)
	return err
}
