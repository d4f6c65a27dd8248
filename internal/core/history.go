package core

import (
	"context"
	"strings"
	"time"

	"github.com/JonMunkholm/pendencies/internal/database"
	"github.com/JonMunkholm/pendencies/internal/logging"
)

// HistoryRepository records and queries notification sends. Records are
// append-only.
type HistoryRepository struct {
	store database.Runner
	now   func() time.Time
}

// NewHistoryRepository creates a repository stamping records with now; a nil
// clock uses time.Now.
func NewHistoryRepository(store database.Runner, now func() time.Time) *HistoryRepository {
	if now == nil {
		now = time.Now
	}
	return &HistoryRepository{store: store, now: now}
}

// Query returns the records sent from the start of q.From through the end of
// q.Until, optionally restricted to one company, formatted for display.
func (r *HistoryRepository) Query(ctx context.Context, q HistoryQuery) (HistoryColumns, error) {
	from := startOfDay(q.From)
	until := startOfDay(q.Until)
	if from.After(until) {
		return HistoryColumns{}, &InvalidRangeError{From: q.From, Until: q.Until}
	}
	// Half-open upper bound: everything before the next midnight.
	until = until.AddDate(0, 0, 1)

	var rows []database.History
	err := r.store.Run(ctx, func(qr database.Querier) error {
		var err error
		if q.CompanyID == nil {
			rows, err = qr.ListHistory(ctx, database.ListHistoryParams{
				From:  ToPgTimestamp(from),
				Until: ToPgTimestamp(until),
			})
			return err
		}
		rows, err = qr.ListHistoryByCompany(ctx, database.ListHistoryByCompanyParams{
			From:      ToPgTimestamp(from),
			Until:     ToPgTimestamp(until),
			CompanyID: *q.CompanyID,
		})
		return err
	})
	if err != nil {
		return HistoryColumns{}, storeErr("query history", err)
	}

	var cols HistoryColumns
	for _, h := range rows {
		cols.append(FormatHistoryRow(HistoryRecord{
			Sender:    h.Sender,
			Recipient: h.Recipient,
			Log:       h.LogPending,
			SentAt:    FromPgTimestamp(h.SendDatetime),
			CompanyID: h.CompanyID,
		}))
	}
	return cols, nil
}

// Append records one send stamped with the current time.
func (r *HistoryRepository) Append(ctx context.Context, sender, companyName, log string, companyID int64) error {
	if strings.TrimSpace(sender) == "" {
		return &MissingFieldError{Field: "sender"}
	}

	sentAt := r.now()
	err := r.store.Run(ctx, func(q database.Querier) error {
		return q.InsertHistory(ctx, database.InsertHistoryParams{
			Sender:       sender,
			Recipient:    companyName,
			LogPending:   log,
			SendDatetime: ToPgTimestamp(sentAt),
			CompanyID:    companyID,
		})
	})
	if err != nil {
		return storeErr("append history", err)
	}

	logging.FromContext(ctx).Debug("history appended",
		"company_id", companyID,
		"sender", sender,
	)
	return nil
}

// startOfDay drops the time of day, keeping the calendar date of t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
