package database

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Company struct {
	ID   int64
	Name string
}

type Tax struct {
	ID    int64
	Title string
}

type Pending struct {
	ID           int64
	Type         int64
	Value        pgtype.Numeric
	Competence   pgtype.Date
	Maturity     pgtype.Date
	Observations pgtype.Text
	CompanyID    int64
}

type Email struct {
	ID        int64
	Address   string
	CompanyID int64
}

type History struct {
	ID           int64
	Sender       string
	Recipient    string
	LogPending   string
	SendDatetime pgtype.Timestamp
	CompanyID    int64
}
