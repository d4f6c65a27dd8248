package database

import (
	"context"
)

type Querier interface {
	CreateCompany(ctx context.Context, name string) (int64, error)
	CreateTax(ctx context.Context, title string) (int64, error)
	DeleteCompany(ctx context.Context, id int64) (int64, error)
	DeleteEmails(ctx context.Context, arg []DeleteEmailParams) (int64, error)
	DeletePending(ctx context.Context, arg []DeletePendingParams) (int64, error)
	DeleteTax(ctx context.Context, id int64) (int64, error)
	InsertEmails(ctx context.Context, arg []InsertEmailParams) (int64, error)
	InsertHistory(ctx context.Context, arg InsertHistoryParams) error
	InsertPending(ctx context.Context, arg []InsertPendingParams) (int64, error)
	ListCompanies(ctx context.Context) ([]Company, error)
	ListEmailsByCompany(ctx context.Context, companyID int64) ([]Email, error)
	ListHistory(ctx context.Context, arg ListHistoryParams) ([]History, error)
	ListHistoryByCompany(ctx context.Context, arg ListHistoryByCompanyParams) ([]History, error)
	ListPendingByCompany(ctx context.Context, companyID int64) ([]Pending, error)
	ListTaxes(ctx context.Context) ([]Tax, error)
	RenameCompany(ctx context.Context, arg RenameCompanyParams) (int64, error)
	RenameTax(ctx context.Context, arg RenameTaxParams) (int64, error)
	UpdateEmails(ctx context.Context, arg []UpdateEmailParams) (int64, error)
	UpdatePending(ctx context.Context, arg []UpdatePendingParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
