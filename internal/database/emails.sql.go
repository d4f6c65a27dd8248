package database

import (
	"context"
)

const listEmailsByCompany = `-- name: ListEmailsByCompany :many
SELECT id, address, company_id
FROM emails
WHERE company_id = $1
ORDER BY id
`

func (q *Queries) ListEmailsByCompany(ctx context.Context, companyID int64) ([]Email, error) {
	rows, err := q.db.Query(ctx, listEmailsByCompany, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Email
	for rows.Next() {
		var i Email
		if err := rows.Scan(&i.ID, &i.Address, &i.CompanyID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertEmail = `-- name: InsertEmail :batchexec
INSERT INTO emails (address, company_id) VALUES ($1, $2)
`

type InsertEmailParams struct {
	Address   string
	CompanyID int64
}

func (q *Queries) InsertEmails(ctx context.Context, arg []InsertEmailParams) (int64, error) {
	args := make([][]interface{}, len(arg))
	for i, a := range arg {
		args[i] = []interface{}{a.Address, a.CompanyID}
	}
	return execBatch(ctx, q.db, insertEmail, args)
}

const updateEmail = `-- name: UpdateEmail :batchexec
UPDATE emails SET address = $1
WHERE company_id = $2 AND id = $3
`

type UpdateEmailParams struct {
	Address   string
	CompanyID int64
	ID        int64
}

func (q *Queries) UpdateEmails(ctx context.Context, arg []UpdateEmailParams) (int64, error) {
	args := make([][]interface{}, len(arg))
	for i, a := range arg {
		args[i] = []interface{}{a.Address, a.CompanyID, a.ID}
	}
	return execBatch(ctx, q.db, updateEmail, args)
}

const deleteEmail = `-- name: DeleteEmail :batchexec
DELETE FROM emails
WHERE company_id = $1 AND id = $2
`

type DeleteEmailParams struct {
	CompanyID int64
	ID        int64
}

func (q *Queries) DeleteEmails(ctx context.Context, arg []DeleteEmailParams) (int64, error) {
	args := make([][]interface{}, len(arg))
	for i, a := range arg {
		args[i] = []interface{}{a.CompanyID, a.ID}
	}
	return execBatch(ctx, q.db, deleteEmail, args)
}
