package core

import (
	"context"
	"testing"

	"github.com/JonMunkholm/pendencies/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailApply_AllPhases(t *testing.T) {
	store := newMemStore()
	store.emails[1] = database.Email{ID: 1, Address: "old@example.com", CompanyID: 3}
	store.emails[2] = database.Email{ID: 2, Address: "gone@example.com", CompanyID: 3}
	repo := NewEmailRepository(store, 0)

	var change Change[string]
	change.Add(" new@example.com ")
	change.Update(1, "renamed@example.com")
	change.Remove(2)

	res, err := repo.ApplyChanges(context.Background(), 3, &change)

	require.NoError(t, err)
	assert.Equal(t, ApplyResult{
		Added: 1, Updated: 1, Removed: 1,
		Committed: []Phase{PhaseAdd, PhaseUpdate, PhaseRemove},
	}, res)
	assert.Equal(t, []string{"InsertEmails", "UpdateEmails", "DeleteEmails"}, store.calls)

	cols, err := repo.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"renamed@example.com", "new@example.com"}, cols.Addresses)
}

func TestEmailApply_EmptyChangeIsNoop(t *testing.T) {
	store := newMemStore()
	repo := NewEmailRepository(store, 0)

	res, err := repo.ApplyChanges(context.Background(), 3, &Change[string]{})

	require.NoError(t, err)
	assert.Equal(t, ApplyResult{}, res)
	assert.Zero(t, store.runs)
}

func TestEmailApply_ScopedToCompany(t *testing.T) {
	store := newMemStore()
	store.emails[1] = database.Email{ID: 1, Address: "other@example.com", CompanyID: 9}
	repo := NewEmailRepository(store, 0)

	var change Change[string]
	change.Update(1, "hijack@example.com")

	res, err := repo.ApplyChanges(context.Background(), 3, &change)
	require.NoError(t, err)
	assert.Zero(t, res.Updated)

	change = Change[string]{}
	change.Remove(1)

	res, err = repo.ApplyChanges(context.Background(), 3, &change)
	require.NoError(t, err)
	assert.Zero(t, res.Removed)
	assert.Equal(t, "other@example.com", store.emails[1].Address)
}

func TestEmailApply_BlankAddressRejected(t *testing.T) {
	store := newMemStore()
	repo := NewEmailRepository(store, 0)

	var change Change[string]
	change.Add("a@example.com")
	change.Add("   ")

	_, err := repo.ApplyChanges(context.Background(), 3, &change)

	var mfe *MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "address", mfe.Field)
	assert.Empty(t, store.calls)
}
