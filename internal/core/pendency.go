package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/JonMunkholm/pendencies/internal/database"
	"github.com/JonMunkholm/pendencies/internal/logging"
	"github.com/google/uuid"
)

// Normalize converts the raw mapping to stored values. The receiver is not
// modified.
func (r RawPendency) Normalize() (NormalizedPendency, error) {
	var n NormalizedPendency
	for _, f := range pendencyFields {
		raw, ok := r[f.Key()]
		if !ok {
			if f.Required() {
				return NormalizedPendency{}, &MissingFieldError{Field: f.Key()}
			}
			continue
		}
		if err := n.set(f, raw); err != nil {
			return NormalizedPendency{}, err
		}
	}
	return n, nil
}

// set normalizes one field into n.
func (n *NormalizedPendency) set(f Field, raw string) error {
	var err error
	switch f {
	case FieldType:
		n.Type, err = parseTaxID(raw)
	case FieldValue:
		n.Value, err = ParseAmount(raw)
	case FieldCompetence:
		n.Competence, err = ParseCompetence(raw)
	case FieldMaturity:
		n.Maturity, err = ParseMaturity(raw)
	case FieldObservations:
		n.Observations = strings.TrimSpace(raw)
	default:
		err = fmt.Errorf("unknown pendency field %d", f)
	}
	return err
}

func parseTaxID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValueFormatError{Field: FieldType.Key(), Value: raw, Reason: "expected a tax id"}
	}
	return id, nil
}

// PendencyRepository reads and applies change sets to a company's pendencies.
type PendencyRepository struct {
	store     database.Runner
	batchSize int
}

// NewPendencyRepository creates a repository. batchSize caps the statements
// sent per round trip; zero or negative sends each phase as one batch.
func NewPendencyRepository(store database.Runner, batchSize int) *PendencyRepository {
	return &PendencyRepository{store: store, batchSize: batchSize}
}

// List returns the company's pendencies in columnar form together with the
// tax catalog.
func (r *PendencyRepository) List(ctx context.Context, companyID int64) (PendencyColumns, error) {
	var rows []database.Pending
	var taxes []database.Tax
	err := r.store.Run(ctx, func(q database.Querier) error {
		var err error
		if rows, err = q.ListPendingByCompany(ctx, companyID); err != nil {
			return err
		}
		taxes, err = q.ListTaxes(ctx)
		return err
	})
	if err != nil {
		return PendencyColumns{}, storeErr("list pendencies", err)
	}

	cols := PendencyColumns{Taxes: taxCatalog(taxes)}
	for _, p := range rows {
		cols.IDs = append(cols.IDs, p.ID)
		cols.Types = append(cols.Types, p.Type)
		cols.Values = append(cols.Values, FromPgNumeric(p.Value))
		cols.Competences = append(cols.Competences, FromPgDate(p.Competence))
		cols.Maturities = append(cols.Maturities, FromPgDate(p.Maturity))
		cols.Observations = append(cols.Observations, FromPgText(p.Observations))
	}
	return cols, nil
}

// ApplyChanges applies additions, then updates, then removals for the
// company. Every row is validated before the first statement is sent. Each
// non-empty phase commits on its own, so a store failure in a later phase
// leaves earlier phases applied.
func (r *PendencyRepository) ApplyChanges(ctx context.Context, companyID int64, cs ChangeSet[RawPendency]) (ApplyResult, error) {
	add, updt, remove := cs.Data()
	if err := checkConflicts(updt, remove); err != nil {
		return ApplyResult{}, err
	}

	inserts, err := pendencyInsertParams(companyID, add)
	if err != nil {
		return ApplyResult{}, err
	}
	updates, err := pendencyUpdateParams(companyID, updt)
	if err != nil {
		return ApplyResult{}, err
	}
	deletes := make([]database.DeletePendingParams, len(remove))
	for i, id := range remove {
		deletes[i] = database.DeletePendingParams{CompanyID: companyID, ID: id}
	}

	logger := logging.WithFields(ctx,
		"apply_id", uuid.NewString(),
		"entity", "pendency",
		"company_id", companyID,
	)

	var res ApplyResult
	if err := runPhase(ctx, r.store, logger, phase{
		kind: PhaseAdd,
		name: "insert pendencies",
		rows: len(inserts),
		exec: func(ctx context.Context, q database.Querier) (int64, error) {
			return batched(ctx, inserts, r.batchSize, q.InsertPending)
		},
	}, &res); err != nil {
		return res, err
	}

	if err := runPhase(ctx, r.store, logger, phase{
		kind: PhaseUpdate,
		name: "update pendencies",
		rows: len(updates),
		exec: func(ctx context.Context, q database.Querier) (int64, error) {
			return batched(ctx, updates, r.batchSize, q.UpdatePending)
		},
	}, &res); err != nil {
		return res, err
	}

	if err := runPhase(ctx, r.store, logger, phase{
		kind: PhaseRemove,
		name: "delete pendencies",
		rows: len(deletes),
		exec: func(ctx context.Context, q database.Querier) (int64, error) {
			return batched(ctx, deletes, r.batchSize, q.DeletePending)
		},
	}, &res); err != nil {
		return res, err
	}

	logger.Info("pendency changes applied",
		"added", res.Added,
		"updated", res.Updated,
		"removed", res.Removed,
	)
	return res, nil
}

func pendencyInsertParams(companyID int64, add []RawPendency) ([]database.InsertPendingParams, error) {
	params := make([]database.InsertPendingParams, 0, len(add))
	for i, raw := range add {
		n, err := raw.Normalize()
		if err != nil {
			return nil, fmt.Errorf("addition %d: %w", i+1, err)
		}
		params = append(params, database.InsertPendingParams{
			Value:        ToPgNumeric(n.Value),
			Competence:   ToPgDate(n.Competence),
			Type:         n.Type,
			Maturity:     ToPgDate(n.Maturity),
			Observations: ToPgText(n.Observations),
			CompanyID:    companyID,
		})
	}
	return params, nil
}

func pendencyUpdateParams(companyID int64, updt map[int64]RawPendency) ([]database.UpdatePendingParams, error) {
	params := make([]database.UpdatePendingParams, 0, len(updt))
	for _, id := range sortedIDs(updt) {
		n, err := updt[id].Normalize()
		if err != nil {
			return nil, fmt.Errorf("pendency %d: %w", id, err)
		}
		params = append(params, database.UpdatePendingParams{
			Value:        ToPgNumeric(n.Value),
			Competence:   ToPgDate(n.Competence),
			Maturity:     ToPgDate(n.Maturity),
			Type:         n.Type,
			Observations: ToPgText(n.Observations),
			CompanyID:    companyID,
			ID:           id,
		})
	}
	return params, nil
}
