package core

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/JonMunkholm/pendencies/internal/database"
)

// ChangeSet is a batch of additions, updates and removals for one entity
// collection.
type ChangeSet[T any] interface {
	Data() (additions []T, updates map[int64]T, removals []int64)
}

// Change is the standard ChangeSet. The zero value is empty and ready to use.
type Change[T any] struct {
	Additions []T         `json:"add"`
	Updates   map[int64]T `json:"update"`
	Removals  []int64     `json:"remove"`
}

// Data returns the three collections.
func (c *Change[T]) Data() ([]T, map[int64]T, []int64) {
	return c.Additions, c.Updates, c.Removals
}

// Add queues a new item.
func (c *Change[T]) Add(v T) {
	c.Additions = append(c.Additions, v)
}

// Update queues new content for an existing id. A pending removal of the same
// id is dropped.
func (c *Change[T]) Update(id int64, v T) {
	c.dropRemoval(id)
	if c.Updates == nil {
		c.Updates = make(map[int64]T)
	}
	c.Updates[id] = v
}

// Remove queues the removal of an existing id. A pending update of the same
// id is dropped.
func (c *Change[T]) Remove(id int64) {
	delete(c.Updates, id)
	for _, r := range c.Removals {
		if r == id {
			return
		}
	}
	c.Removals = append(c.Removals, id)
}

// Empty reports whether the change set has nothing to apply.
func (c *Change[T]) Empty() bool {
	return len(c.Additions) == 0 && len(c.Updates) == 0 && len(c.Removals) == 0
}

func (c *Change[T]) dropRemoval(id int64) {
	kept := c.Removals[:0]
	for _, r := range c.Removals {
		if r != id {
			kept = append(kept, r)
		}
	}
	c.Removals = kept
}

// checkConflicts rejects an id present in both updates and removals.
func checkConflicts[T any](updates map[int64]T, removals []int64) error {
	for _, id := range removals {
		if _, ok := updates[id]; ok {
			return &ChangeConflictError{ID: id}
		}
	}
	return nil
}

// sortedIDs returns the keys of updates in ascending order so batches are
// built deterministically.
func sortedIDs[T any](updates map[int64]T) []int64 {
	ids := make([]int64, 0, len(updates))
	for id := range updates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// chunk splits items into slices of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) <= size {
		return [][]T{items}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[:size])
	}
	return append(chunks, items)
}

// phase is one batched statement of a change set.
type phase struct {
	kind Phase
	name string
	rows int
	exec func(ctx context.Context, q database.Querier) (int64, error)
}

// runPhase executes a non-empty phase in its own unit of work and records it
// in res once committed. Earlier phases stay committed if this one fails.
func runPhase(ctx context.Context, store database.Runner, logger *slog.Logger, p phase, res *ApplyResult) error {
	if p.rows == 0 {
		return nil
	}

	start := time.Now()
	var affected int64
	err := store.Run(ctx, func(q database.Querier) error {
		n, err := p.exec(ctx, q)
		affected = n
		return err
	})
	if err != nil {
		logger.Error("phase failed", "phase", p.name, "rows", p.rows, "error", err)
		return storeErr(p.name, err)
	}
	res.record(p.kind, affected)

	logger.Debug("phase applied",
		"phase", p.name,
		"rows", p.rows,
		"affected", affected,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// batched runs fn over params in chunks of at most size rows, summing rows
// affected. All chunks share the caller's unit of work.
func batched[P any](ctx context.Context, params []P, size int, fn func(context.Context, []P) (int64, error)) (int64, error) {
	var total int64
	for _, c := range chunk(params, size) {
		n, err := fn(ctx, c)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
