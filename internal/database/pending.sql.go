package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listPendingByCompany = `-- name: ListPendingByCompany :many
SELECT id, type, value, competence, maturity, observations, company_id
FROM pending
WHERE company_id = $1
ORDER BY id
`

func (q *Queries) ListPendingByCompany(ctx context.Context, companyID int64) ([]Pending, error) {
	rows, err := q.db.Query(ctx, listPendingByCompany, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Pending
	for rows.Next() {
		var i Pending
		if err := rows.Scan(
			&i.ID,
			&i.Type,
			&i.Value,
			&i.Competence,
			&i.Maturity,
			&i.Observations,
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

const insertPending = `-- name: InsertPending :batchexec
INSERT INTO pending (value, competence, type, maturity, observations, company_id)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertPendingParams struct {
	Value        pgtype.Numeric
	Competence   pgtype.Date
	Type         int64
	Maturity     pgtype.Date
	Observations pgtype.Text
	CompanyID    int64
}

// InsertPending inserts every row of arg in one batch and returns the number
// of rows written.
func (q *Queries) InsertPending(ctx context.Context, arg []InsertPendingParams) (int64, error) {
	args := make([][]interface{}, len(arg))
	for i, a := range arg {
		args[i] = []interface{}{a.Value, a.Competence, a.Type, a.Maturity, a.Observations, a.CompanyID}
	}
	return execBatch(ctx, q.db, insertPending, args)
}

const updatePending = `-- name: UpdatePending :batchexec
UPDATE pending SET
    value = $1, competence = $2, maturity = $3, type = $4, observations = $5
WHERE company_id = $6 AND id = $7
`

type UpdatePendingParams struct {
	Value        pgtype.Numeric
	Competence   pgtype.Date
	Maturity     pgtype.Date
	Type         int64
	Observations pgtype.Text
	CompanyID    int64
	ID           int64
}

// UpdatePending updates the rows of arg scoped to their company. Rows whose
// id belongs to another company are not touched.
func (q *Queries) UpdatePending(ctx context.Context, arg []UpdatePendingParams) (int64, error) {
	args := make([][]interface{}, len(arg))
	for i, a := range arg {
		args[i] = []interface{}{a.Value, a.Competence, a.Maturity, a.Type, a.Observations, a.CompanyID, a.ID}
	}
	return execBatch(ctx, q.db, updatePending, args)
}

const deletePending = `-- name: DeletePending :batchexec
DELETE FROM pending
WHERE company_id = $1 AND id = $2
`

type DeletePendingParams struct {
	CompanyID int64
	ID        int64
}

func (q *Queries) DeletePending(ctx context.Context, arg []DeletePendingParams) (int64, error) {
	args := make([][]interface{}, len(arg))
	for i, a := range arg {
		args[i] = []interface{}{a.CompanyID, a.ID}
	}
	return execBatch(ctx, q.db, deletePending, args)
}
