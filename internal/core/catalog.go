package core

import (
	"context"
	"strings"

	"github.com/JonMunkholm/pendencies/internal/database"
)

// CompanyRepository manages companies. Deleting a company removes its
// pendencies, emails and history through the store's cascade.
type CompanyRepository struct {
	store database.Runner
}

func NewCompanyRepository(store database.Runner) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// List returns every company, id to name.
func (r *CompanyRepository) List(ctx context.Context) (map[int64]string, error) {
	var rows []database.Company
	err := r.store.Run(ctx, func(q database.Querier) error {
		var err error
		rows, err = q.ListCompanies(ctx)
		return err
	})
	if err != nil {
		return nil, storeErr("list companies", err)
	}

	companies := make(map[int64]string, len(rows))
	for _, c := range rows {
		companies[c.ID] = c.Name
	}
	return companies, nil
}

// Create adds a company and returns its id.
func (r *CompanyRepository) Create(ctx context.Context, name string) (int64, error) {
	name, err := requireText("name", name)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.store.Run(ctx, func(q database.Querier) error {
		id, err = q.CreateCompany(ctx, name)
		return err
	})
	if err != nil {
		return 0, storeErr("create company", err)
	}
	return id, nil
}

// Rename changes a company's name.
func (r *CompanyRepository) Rename(ctx context.Context, id int64, name string) error {
	name, err := requireText("name", name)
	if err != nil {
		return err
	}
	err = r.store.Run(ctx, func(q database.Querier) error {
		return affectedOne(q.RenameCompany(ctx, database.RenameCompanyParams{Name: name, ID: id}))
	})
	return storeErr("rename company", err)
}

// Delete removes a company and, by cascade, everything it owns.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	err := r.store.Run(ctx, func(q database.Querier) error {
		return affectedOne(q.DeleteCompany(ctx, id))
	})
	return storeErr("delete company", err)
}

// TaxRepository manages the flat catalog of tax types.
type TaxRepository struct {
	store database.Runner
}

func NewTaxRepository(store database.Runner) *TaxRepository {
	return &TaxRepository{store: store}
}

// List returns the catalog, id to title.
func (r *TaxRepository) List(ctx context.Context) (map[int64]string, error) {
	var rows []database.Tax
	err := r.store.Run(ctx, func(q database.Querier) error {
		var err error
		rows, err = q.ListTaxes(ctx)
		return err
	})
	if err != nil {
		return nil, storeErr("list taxes", err)
	}
	return taxCatalog(rows), nil
}

// Create adds a tax type and returns its id.
func (r *TaxRepository) Create(ctx context.Context, title string) (int64, error) {
	title, err := requireText("title", title)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.store.Run(ctx, func(q database.Querier) error {
		id, err = q.CreateTax(ctx, title)
		return err
	})
	if err != nil {
		return 0, storeErr("create tax", err)
	}
	return id, nil
}

// Rename changes a tax type's title.
func (r *TaxRepository) Rename(ctx context.Context, id int64, title string) error {
	title, err := requireText("title", title)
	if err != nil {
		return err
	}
	err = r.store.Run(ctx, func(q database.Querier) error {
		return affectedOne(q.RenameTax(ctx, database.RenameTaxParams{Title: title, ID: id}))
	})
	return storeErr("rename tax", err)
}

// Delete removes a tax type. The store refuses while pendencies reference it.
func (r *TaxRepository) Delete(ctx context.Context, id int64) error {
	err := r.store.Run(ctx, func(q database.Querier) error {
		return affectedOne(q.DeleteTax(ctx, id))
	})
	return storeErr("delete tax", err)
}

func taxCatalog(rows []database.Tax) map[int64]string {
	taxes := make(map[int64]string, len(rows))
	for _, t := range rows {
		taxes[t.ID] = t.Title
	}
	return taxes
}

func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &MissingFieldError{Field: field}
	}
	return s, nil
}

func affectedOne(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
