// Package core holds the data-access logic for companies, their pendencies
// (recurring taxes and invoices), notification emails, the tax catalog and
// the notification send history.
//
// # Change Sets
//
// Pendencies and emails are edited in batches. A [ChangeSet] carries
// additions, updates keyed by existing id, and removals:
//
//	var change core.Change[core.RawPendency]
//	change.Add(core.RawPendency{
//	    "type":       "1",
//	    "value":      "1.000,00",
//	    "competence": "01/2024",
//	    "maturity":   "31/01/2024",
//	})
//	change.Remove(42)
//	res, err := svc.Pendencies.ApplyChanges(ctx, companyID, &change)
//
// ApplyChanges validates every row first, then runs additions, updates and
// removals in that order. Each phase is one batched statement inside its own
// transaction: a store failure in a later phase leaves earlier phases
// committed. Updating or removing an id the company does not own touches
// zero rows and is not an error.
//
// # Value Formats
//
// Raw values use Brazilian conventions: amounts "1.234,56", competence
// "MM/YYYY" (stored as the first day of the month), maturity "DD/MM/YYYY".
// See [ParseAmount], [ParseCompetence] and [ParseMaturity].
//
// # Errors
//
// Validation failures are [ValueFormatError], [MissingFieldError],
// [ChangeConflictError] and [InvalidRangeError]; store failures are wrapped
// in [StoreError]. [MapError] turns any of them into a coded [UserMessage].
package core
