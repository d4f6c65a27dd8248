package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/pendencies/internal/database"
	"github.com/JonMunkholm/pendencies/internal/logging"
	"github.com/google/uuid"
)

// EmailRepository reads and applies change sets to a company's notification
// addresses.
type EmailRepository struct {
	store     database.Runner
	batchSize int
}

func NewEmailRepository(store database.Runner, batchSize int) *EmailRepository {
	return &EmailRepository{store: store, batchSize: batchSize}
}

// List returns the company's addresses aligned with their ids.
func (r *EmailRepository) List(ctx context.Context, companyID int64) (EmailColumns, error) {
	var rows []database.Email
	err := r.store.Run(ctx, func(q database.Querier) error {
		var err error
		rows, err = q.ListEmailsByCompany(ctx, companyID)
		return err
	})
	if err != nil {
		return EmailColumns{}, storeErr("list emails", err)
	}

	var cols EmailColumns
	for _, e := range rows {
		cols.IDs = append(cols.IDs, e.ID)
		cols.Addresses = append(cols.Addresses, e.Address)
	}
	return cols, nil
}

// ApplyChanges applies additions, updates and removals in that order with the
// same phase semantics as PendencyRepository.ApplyChanges.
func (r *EmailRepository) ApplyChanges(ctx context.Context, companyID int64, cs ChangeSet[string]) (ApplyResult, error) {
	add, updt, remove := cs.Data()
	if err := checkConflicts(updt, remove); err != nil {
		return ApplyResult{}, err
	}

	inserts := make([]database.InsertEmailParams, 0, len(add))
	for i, a := range add {
		address, err := cleanAddress(a)
		if err != nil {
			return ApplyResult{}, fmt.Errorf("addition %d: %w", i+1, err)
		}
		inserts = append(inserts, database.InsertEmailParams{Address: address, CompanyID: companyID})
	}

	updates := make([]database.UpdateEmailParams, 0, len(updt))
	for _, id := range sortedIDs(updt) {
		address, err := cleanAddress(updt[id])
		if err != nil {
			return ApplyResult{}, fmt.Errorf("email %d: %w", id, err)
		}
		updates = append(updates, database.UpdateEmailParams{Address: address, CompanyID: companyID, ID: id})
	}

	deletes := make([]database.DeleteEmailParams, len(remove))
	for i, id := range remove {
		deletes[i] = database.DeleteEmailParams{CompanyID: companyID, ID: id}
	}

	logger := logging.WithFields(ctx,
		"apply_id", uuid.NewString(),
		"entity", "email",
		"company_id", companyID,
	)

	var res ApplyResult
	if err := runPhase(ctx, r.store, logger, phase{
		kind: PhaseAdd,
		name: "insert emails",
		rows: len(inserts),
		exec: func(ctx context.Context, q database.Querier) (int64, error) {
			return batched(ctx, inserts, r.batchSize, q.InsertEmails)
		},
	}, &res); err != nil {
		return res, err
	}

	if err := runPhase(ctx, r.store, logger, phase{
		kind: PhaseUpdate,
		name: "update emails",
		rows: len(updates),
		exec: func(ctx context.Context, q database.Querier) (int64, error) {
			return batched(ctx, updates, r.batchSize, q.UpdateEmails)
		},
	}, &res); err != nil {
		return res, err
	}

	if err := runPhase(ctx, r.store, logger, phase{
		kind: PhaseRemove,
		name: "delete emails",
		rows: len(deletes),
		exec: func(ctx context.Context, q database.Querier) (int64, error) {
			return batched(ctx, deletes, r.batchSize, q.DeleteEmails)
		},
	}, &res); err != nil {
		return res, err
	}

	logger.Info("email changes applied",
		"added", res.Added,
		"updated", res.Updated,
		"removed", res.Removed,
	)
	return res, nil
}

func cleanAddress(raw string) (string, error) {
	address := strings.TrimSpace(raw)
	if address == "" {
		return "", &MissingFieldError{Field: "address"}
	}
	return address, nil
}
