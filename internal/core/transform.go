package core

// transform.go converts locale-formatted (pt-BR) field values to the values
// stored in the database, and back for display.
//
// Input conventions:
//   - Amounts use "." for thousands and "," for decimals: "1.234,56"
//   - Competence is a month: "03/2024"
//   - Maturity is a day: "15/03/2024"
//
// Every parser is a pure function returning a *ValueFormatError on bad input.

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field identifies one column of a raw pendency mapping.
type Field int

const (
	FieldType Field = iota
	FieldValue
	FieldCompetence
	FieldMaturity
	FieldObservations
)

// pendencyFields lists the fields in normalization order.
var pendencyFields = []Field{FieldType, FieldValue, FieldCompetence, FieldMaturity, FieldObservations}

// Key returns the mapping key for the field.
func (f Field) Key() string {
	switch f {
	case FieldType:
		return "type"
	case FieldValue:
		return "value"
	case FieldCompetence:
		return "competence"
	case FieldMaturity:
		return "maturity"
	case FieldObservations:
		return "observations"
	default:
		return "unknown"
	}
}

func (f Field) String() string { return f.Key() }

// Required reports whether a raw mapping must carry the field.
func (f Field) Required() bool {
	return f != FieldObservations
}

const (
	competenceLayout = "1/2006"
	maturityLayout   = "2/1/2006"
	dateDisplay      = "02/01/2006"
	monthDisplay     = "01/2006"
	timeDisplay      = "15:04:05"
)

// amountRegex accepts "1234,56", "1.234,56" and "1234" but not "1.5", which
// is ambiguous between a thousands group and a decimal.
var amountRegex = regexp.MustCompile(`^(\d{1,3}(\.\d{3})+|\d+)(,\d{1,2})?$`)

// maxAmount is the first value the NUMERIC(14, 2) value column cannot hold.
var maxAmount = decimal.New(1, 12)

// ParseAmount converts "1.234,56" to 1234.56.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))

	if !amountRegex.MatchString(s) {
		return decimal.Decimal{}, &ValueFormatError{Field: FieldValue.Key(), Value: raw, Reason: "expected an amount like 1.234,56"}
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ValueFormatError{Field: FieldValue.Key(), Value: raw, Reason: err.Error()}
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, &ValueFormatError{Field: FieldValue.Key(), Value: raw, Reason: "amount must be below 1.000.000.000.000,00"}
	}
	return d.Round(2), nil
}

// ParseCompetence converts "MM/YYYY" to the first day of that month.
func ParseCompetence(raw string) (time.Time, error) {
	t, err := time.Parse(competenceLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &ValueFormatError{Field: FieldCompetence.Key(), Value: raw, Reason: "expected MM/YYYY"}
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// ParseMaturity converts "DD/MM/YYYY" to that calendar date. Out-of-range
// days and months are rejected, never rolled over.
func ParseMaturity(raw string) (time.Time, error) {
	t, err := time.Parse(maturityLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &ValueFormatError{Field: FieldMaturity.Key(), Value: raw, Reason: "expected DD/MM/YYYY"}
	}
	return t, nil
}

// FormatAmount renders an amount as "1.234,56".
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// FormatCompetence renders a competence as "MM/YYYY".
func FormatCompetence(t time.Time) string {
	return t.Format(monthDisplay)
}

// FormatMaturity renders a maturity as "DD/MM/YYYY".
func FormatMaturity(t time.Time) string {
	return t.Format(dateDisplay)
}

// FormatHistoryRow renders a stored history record for display.
func FormatHistoryRow(rec HistoryRecord) HistoryRow {
	return HistoryRow{
		Sender:    rec.Sender,
		Recipient: rec.Recipient,
		Date:      rec.SentAt.Format(dateDisplay),
		Time:      rec.SentAt.Format(timeDisplay),
		Log:       rec.Log,
	}
}
