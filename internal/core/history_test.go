package core

import (
	"context"
	"testing"
	"time"

	"github.com/JonMunkholm/pendencies/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedHistory(m *memStore, companyID int64, sentAt time.Time, log string) {
	m.history = append(m.history, database.History{
		ID:           m.id(),
		Sender:       "ana",
		Recipient:    "Padaria Central",
		LogPending:   log,
		SendDatetime: ToPgTimestamp(sentAt),
		CompanyID:    companyID,
	})
}

func TestHistoryQuery_SameDayIsInclusive(t *testing.T) {
	store := newMemStore()
	seedHistory(store, 1, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), "before")
	seedHistory(store, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "midnight")
	seedHistory(store, 1, time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), "last second")
	seedHistory(store, 1, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "next day")
	repo := NewHistoryRepository(store, nil)

	cols, err := repo.Query(context.Background(), HistoryQuery{From: day(2024, 1, 1), Until: day(2024, 1, 1)})

	require.NoError(t, err)
	assert.Equal(t, []string{"midnight", "last second"}, cols.Logs)
	assert.Equal(t, []string{"01/01/2024", "01/01/2024"}, cols.Dates)
	assert.Equal(t, []string{"00:00:00", "23:59:59"}, cols.Times)
}

func TestHistoryQuery_TimeOfDayOnBoundsIgnored(t *testing.T) {
	store := newMemStore()
	seedHistory(store, 1, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), "morning")
	repo := NewHistoryRepository(store, nil)

	cols, err := repo.Query(context.Background(), HistoryQuery{
		From:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Until: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, cols.Len())
}

func TestHistoryQuery_InvertedRange(t *testing.T) {
	store := newMemStore()
	repo := NewHistoryRepository(store, nil)

	_, err := repo.Query(context.Background(), HistoryQuery{From: day(2024, 2, 1), Until: day(2024, 1, 1)})

	var ire *InvalidRangeError
	require.ErrorAs(t, err, &ire)
	assert.Zero(t, store.runs, "the store is not queried for an invalid range")
}

func TestHistoryQuery_CompanyFilter(t *testing.T) {
	store := newMemStore()
	seedHistory(store, 1, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), "mine")
	seedHistory(store, 2, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), "theirs")
	repo := NewHistoryRepository(store, nil)

	company := int64(1)
	cols, err := repo.Query(context.Background(), HistoryQuery{From: day(2024, 1, 1), Until: day(2024, 1, 31), CompanyID: &company})

	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, cols.Logs)
	assert.Equal(t, []string{"ListHistoryByCompany"}, store.calls)
}

func TestHistoryAppend_UsesClock(t *testing.T) {
	store := newMemStore()
	now := time.Date(2024, 5, 6, 14, 30, 15, 0, time.UTC)
	repo := NewHistoryRepository(store, func() time.Time { return now })

	err := repo.Append(context.Background(), "ana", "Padaria Central", "DAS 04/2024 sent", 1)
	require.NoError(t, err)

	require.Len(t, store.history, 1)
	h := store.history[0]
	assert.Equal(t, "ana", h.Sender)
	assert.Equal(t, "Padaria Central", h.Recipient)
	assert.Equal(t, "DAS 04/2024 sent", h.LogPending)
	assert.Equal(t, int64(1), h.CompanyID)
	assert.Equal(t, now, h.SendDatetime.Time)

	cols, err := repo.Query(context.Background(), HistoryQuery{From: day(2024, 5, 6), Until: day(2024, 5, 6)})
	require.NoError(t, err)
	assert.Equal(t, []string{"06/05/2024"}, cols.Dates)
	assert.Equal(t, []string{"14:30:15"}, cols.Times)
	assert.Equal(t, []string{"Padaria Central"}, cols.Recipients)
}

func TestHistoryAppend_RequiresSender(t *testing.T) {
	store := newMemStore()
	repo := NewHistoryRepository(store, nil)

	err := repo.Append(context.Background(), " ", "Padaria Central", "log", 1)

	var mfe *MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Empty(t, store.history)
}
