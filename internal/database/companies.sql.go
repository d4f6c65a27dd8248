package database

import (
	"context"
)

const listCompanies = `-- name: ListCompanies :many
SELECT id, name FROM companies
ORDER BY id
`

func (q *Queries) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := q.db.Query(ctx, listCompanies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Company
	for rows.Next() {
		var i Company
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createCompany = `-- name: CreateCompany :one
INSERT INTO companies (name) VALUES ($1)
RETURNING id
`

func (q *Queries) CreateCompany(ctx context.Context, name string) (int64, error) {
	row := q.db.QueryRow(ctx, createCompany, name)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const renameCompany = `-- name: RenameCompany :execrows
UPDATE companies SET name = $1
WHERE id = $2
`

type RenameCompanyParams struct {
	Name string
	ID   int64
}

func (q *Queries) RenameCompany(ctx context.Context, arg RenameCompanyParams) (int64, error) {
	result, err := q.db.Exec(ctx, renameCompany, arg.Name, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCompany = `-- name: DeleteCompany :execrows
DELETE FROM companies
WHERE id = $1
`

func (q *Queries) DeleteCompany(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCompany, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
