package core

// convert.go moves values between domain types and pgtype values.
//
// ToPg* functions never fail: the values they receive have already been
// validated by the transformer. FromPg* functions return zero values for
// NULL columns.

import (
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ToPgText converts a string to pgtype.Text.
// Returns invalid (NULL) if the string is empty or only whitespace.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgNumeric converts a decimal to pgtype.Numeric without going through a
// float.
func ToPgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   new(big.Int).Set(d.Coefficient()),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

// ToPgDate converts a calendar date to pgtype.Date.
func ToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// ToPgTimestamp converts a wall-clock time to pgtype.Timestamp.
func ToPgTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: t, Valid: true}
}

// FromPgText returns the string value or "" for NULL.
func FromPgText(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// FromPgNumeric returns the decimal value or zero for NULL, NaN and
// infinities.
func FromPgNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// FromPgDate returns the date or the zero time for NULL.
func FromPgDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

// FromPgTimestamp returns the timestamp or the zero time for NULL.
func FromPgTimestamp(ts pgtype.Timestamp) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
