package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Runner runs a unit of work against the record store.
//
// Run acquires a connection, hands fn queries bound to a transaction, commits
// when fn returns nil and releases the connection on every exit path.
type Runner interface {
	Run(ctx context.Context, fn func(q Querier) error) error
}

// Pool is the subset of *pgxpool.Pool the Store depends on.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// Store is the pgx-backed Runner.
type Store struct {
	pool Pool
}

// NewStore wraps a connection pool.
func NewStore(pool Pool) *Store {
	return &Store{pool: pool}
}

// Run executes fn inside a transaction.
func (s *Store) Run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	if err := fn(New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

var _ Runner = (*Store)(nil)
