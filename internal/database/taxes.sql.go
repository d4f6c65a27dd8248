package database

import (
	"context"
)

const listTaxes = `-- name: ListTaxes :many
SELECT id, title FROM taxes
ORDER BY id
`

func (q *Queries) ListTaxes(ctx context.Context) ([]Tax, error) {
	rows, err := q.db.Query(ctx, listTaxes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tax
	for rows.Next() {
		var i Tax
		if err := rows.Scan(&i.ID, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createTax = `-- name: CreateTax :one
INSERT INTO taxes (title) VALUES ($1)
RETURNING id
`

func (q *Queries) CreateTax(ctx context.Context, title string) (int64, error) {
	row := q.db.QueryRow(ctx, createTax, title)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const renameTax = `-- name: RenameTax :execrows
UPDATE taxes SET title = $1
WHERE id = $2
`

type RenameTaxParams struct {
	Title string
	ID    int64
}

func (q *Queries) RenameTax(ctx context.Context, arg RenameTaxParams) (int64, error) {
	result, err := q.db.Exec(ctx, renameTax, arg.Title, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteTax = `-- name: DeleteTax :execrows
DELETE FROM taxes
WHERE id = $1
`

func (q *Queries) DeleteTax(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTax, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
