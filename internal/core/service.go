package core

import (
	"context"
	"time"

	"github.com/JonMunkholm/pendencies/internal/database"
)

// Options tunes the repositories built by NewService.
type Options struct {
	// BatchSize caps statements per round trip inside one phase.
	BatchSize int

	// MaxConcurrentApplies bounds change sets applied at once; ApplyWait is
	// how long a caller waits for a slot.
	MaxConcurrentApplies int
	ApplyWait            time.Duration

	// Now stamps history records. Defaults to time.Now.
	Now func() time.Time
}

// Service groups the repositories that share one record store.
type Service struct {
	Companies  *CompanyRepository
	Taxes      *TaxRepository
	Pendencies *PendencyRepository
	Emails     *EmailRepository
	History    *HistoryRepository

	// Applies gates ApplyChanges calls from the transport.
	Applies *ApplyLimiter

	store database.Runner
}

// NewService builds every repository on top of store.
func NewService(store database.Runner, opts Options) *Service {
	return &Service{
		Companies:  NewCompanyRepository(store),
		Taxes:      NewTaxRepository(store),
		Pendencies: NewPendencyRepository(store, opts.BatchSize),
		Emails:     NewEmailRepository(store, opts.BatchSize),
		History:    NewHistoryRepository(store, opts.Now),
		Applies:    NewApplyLimiter(opts.MaxConcurrentApplies, opts.ApplyWait),
		store:      store,
	}
}

// Ping checks the store when it supports health checks.
func (s *Service) Ping(ctx context.Context) error {
	if p, ok := s.store.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}
