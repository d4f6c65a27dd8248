// Package database is the record store for companies, taxes, pendencies,
// notification emails and the send history.
//
// Queries follow the sqlc layout: one file per table, a Queries type bound to
// any DBTX, and a Querier interface so callers can substitute the store in
// tests. Multi-row writes are sent as a single pgx.Batch per call.
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// New returns Queries that run against db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds every statement the application issues.
type Queries struct {
	db DBTX
}
