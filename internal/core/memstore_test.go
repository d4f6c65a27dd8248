package core

import (
	"context"
	"sort"

	"github.com/JonMunkholm/pendencies/internal/database"
)

// memStore is an in-memory record store. It implements database.Runner and
// database.Querier with the same company scoping as the SQL statements.
type memStore struct {
	runs   int
	calls  []string
	fail   map[string]error
	nextID int64

	companies map[int64]database.Company
	taxes     map[int64]database.Tax
	pending   map[int64]database.Pending
	emails    map[int64]database.Email
	history   []database.History
}

func newMemStore() *memStore {
	return &memStore{
		fail:      make(map[string]error),
		nextID:    100,
		companies: make(map[int64]database.Company),
		taxes:     make(map[int64]database.Tax),
		pending:   make(map[int64]database.Pending),
		emails:    make(map[int64]database.Email),
	}
}

var (
	_ database.Runner  = (*memStore)(nil)
	_ database.Querier = (*memStore)(nil)
)

func (m *memStore) Run(_ context.Context, fn func(database.Querier) error) error {
	m.runs++
	return fn(m)
}

// call records the statement and returns the injected failure, if any.
func (m *memStore) call(name string) error {
	m.calls = append(m.calls, name)
	return m.fail[name]
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) ListCompanies(context.Context) ([]database.Company, error) {
	if err := m.call("ListCompanies"); err != nil {
		return nil, err
	}
	var out []database.Company
	for _, c := range m.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreateCompany(_ context.Context, name string) (int64, error) {
	if err := m.call("CreateCompany"); err != nil {
		return 0, err
	}
	id := m.id()
	m.companies[id] = database.Company{ID: id, Name: name}
	return id, nil
}

func (m *memStore) RenameCompany(_ context.Context, arg database.RenameCompanyParams) (int64, error) {
	if err := m.call("RenameCompany"); err != nil {
		return 0, err
	}
	if _, ok := m.companies[arg.ID]; !ok {
		return 0, nil
	}
	m.companies[arg.ID] = database.Company{ID: arg.ID, Name: arg.Name}
	return 1, nil
}

func (m *memStore) DeleteCompany(_ context.Context, id int64) (int64, error) {
	if err := m.call("DeleteCompany"); err != nil {
		return 0, err
	}
	if _, ok := m.companies[id]; !ok {
		return 0, nil
	}
	delete(m.companies, id)
	for pid, p := range m.pending {
		if p.CompanyID == id {
			delete(m.pending, pid)
		}
	}
	for eid, e := range m.emails {
		if e.CompanyID == id {
			delete(m.emails, eid)
		}
	}
	return 1, nil
}

func (m *memStore) ListTaxes(context.Context) ([]database.Tax, error) {
	if err := m.call("ListTaxes"); err != nil {
		return nil, err
	}
	var out []database.Tax
	for _, t := range m.taxes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreateTax(_ context.Context, title string) (int64, error) {
	if err := m.call("CreateTax"); err != nil {
		return 0, err
	}
	id := m.id()
	m.taxes[id] = database.Tax{ID: id, Title: title}
	return id, nil
}

func (m *memStore) RenameTax(_ context.Context, arg database.RenameTaxParams) (int64, error) {
	if err := m.call("RenameTax"); err != nil {
		return 0, err
	}
	if _, ok := m.taxes[arg.ID]; !ok {
		return 0, nil
	}
	m.taxes[arg.ID] = database.Tax{ID: arg.ID, Title: arg.Title}
	return 1, nil
}

func (m *memStore) DeleteTax(_ context.Context, id int64) (int64, error) {
	if err := m.call("DeleteTax"); err != nil {
		return 0, err
	}
	if _, ok := m.taxes[id]; !ok {
		return 0, nil
	}
	delete(m.taxes, id)
	return 1, nil
}

func (m *memStore) ListPendingByCompany(_ context.Context, companyID int64) ([]database.Pending, error) {
	if err := m.call("ListPendingByCompany"); err != nil {
		return nil, err
	}
	var out []database.Pending
	for _, p := range m.pending {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) InsertPending(_ context.Context, arg []database.InsertPendingParams) (int64, error) {
	if err := m.call("InsertPending"); err != nil {
		return 0, err
	}
	for _, a := range arg {
		id := m.id()
		m.pending[id] = database.Pending{
			ID:           id,
			Type:         a.Type,
			Value:        a.Value,
			Competence:   a.Competence,
			Maturity:     a.Maturity,
			Observations: a.Observations,
			CompanyID:    a.CompanyID,
		}
	}
	return int64(len(arg)), nil
}

func (m *memStore) UpdatePending(_ context.Context, arg []database.UpdatePendingParams) (int64, error) {
	if err := m.call("UpdatePending"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range arg {
		p, ok := m.pending[a.ID]
		if !ok || p.CompanyID != a.CompanyID {
			continue
		}
		p.Type, p.Value, p.Competence, p.Maturity, p.Observations = a.Type, a.Value, a.Competence, a.Maturity, a.Observations
		m.pending[a.ID] = p
		n++
	}
	return n, nil
}

func (m *memStore) DeletePending(_ context.Context, arg []database.DeletePendingParams) (int64, error) {
	if err := m.call("DeletePending"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range arg {
		if p, ok := m.pending[a.ID]; ok && p.CompanyID == a.CompanyID {
			delete(m.pending, a.ID)
			n++
		}
	}
	return n, nil
}

func (m *memStore) ListEmailsByCompany(_ context.Context, companyID int64) ([]database.Email, error) {
	if err := m.call("ListEmailsByCompany"); err != nil {
		return nil, err
	}
	var out []database.Email
	for _, e := range m.emails {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) InsertEmails(_ context.Context, arg []database.InsertEmailParams) (int64, error) {
	if err := m.call("InsertEmails"); err != nil {
		return 0, err
	}
	for _, a := range arg {
		id := m.id()
		m.emails[id] = database.Email{ID: id, Address: a.Address, CompanyID: a.CompanyID}
	}
	return int64(len(arg)), nil
}

func (m *memStore) UpdateEmails(_ context.Context, arg []database.UpdateEmailParams) (int64, error) {
	if err := m.call("UpdateEmails"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range arg {
		if e, ok := m.emails[a.ID]; ok && e.CompanyID == a.CompanyID {
			e.Address = a.Address
			m.emails[a.ID] = e
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteEmails(_ context.Context, arg []database.DeleteEmailParams) (int64, error) {
	if err := m.call("DeleteEmails"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range arg {
		if e, ok := m.emails[a.ID]; ok && e.CompanyID == a.CompanyID {
			delete(m.emails, a.ID)
			n++
		}
	}
	return n, nil
}

func (m *memStore) ListHistory(_ context.Context, arg database.ListHistoryParams) ([]database.History, error) {
	if err := m.call("ListHistory"); err != nil {
		return nil, err
	}
	var out []database.History
	for _, h := range m.history {
		t := h.SendDatetime.Time
		if !t.Before(arg.From.Time) && t.Before(arg.Until.Time) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memStore) ListHistoryByCompany(_ context.Context, arg database.ListHistoryByCompanyParams) ([]database.History, error) {
	if err := m.call("ListHistoryByCompany"); err != nil {
		return nil, err
	}
	var out []database.History
	for _, h := range m.history {
		t := h.SendDatetime.Time
		if h.CompanyID == arg.CompanyID && !t.Before(arg.From.Time) && t.Before(arg.Until.Time) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memStore) InsertHistory(_ context.Context, arg database.InsertHistoryParams) error {
	if err := m.call("InsertHistory"); err != nil {
		return err
	}
	m.history = append(m.history, database.History{
		ID:           m.id(),
		Sender:       arg.Sender,
		Recipient:    arg.Recipient,
		LogPending:   arg.LogPending,
		SendDatetime: arg.SendDatetime,
		CompanyID:    arg.CompanyID,
	})
	return nil
}
