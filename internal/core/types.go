package core

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RawPendency is a pendency as entered by a user: field key to locale string.
// Keys are the Field keys ("type", "value", "competence", "maturity",
// "observations").
type RawPendency map[string]string

// UnmarshalJSON accepts string values and integer numbers, so "type": 1 and
// "type": "1" decode alike. Other numbers are rejected to keep amounts in
// their locale form. A null value leaves the key absent.
func (r *RawPendency) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	out := make(RawPendency, len(fields))
	for key, val := range fields {
		dec := json.NewDecoder(bytes.NewReader(val))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}

		switch v := v.(type) {
		case nil:
		case string:
			out[key] = v
		case json.Number:
			if _, err := v.Int64(); err != nil {
				return &ValueFormatError{Field: key, Value: v.String(), Reason: "send non-integer numbers as strings"}
			}
			out[key] = v.String()
		default:
			return &ValueFormatError{Field: key, Value: string(val), Reason: "expected a string or an integer"}
		}
	}
	*r = out
	return nil
}

// NormalizedPendency is a RawPendency converted to stored values.
type NormalizedPendency struct {
	Type         int64
	Value        decimal.Decimal
	Competence   time.Time
	Maturity     time.Time
	Observations string
}

// PendencyColumns is a company's pendencies in columnar form. Every slice is
// aligned by position with IDs.
type PendencyColumns struct {
	IDs          []int64           `json:"ids"`
	Types        []int64           `json:"types"`
	Values       []decimal.Decimal `json:"values"`
	Competences  []time.Time       `json:"competences"`
	Maturities   []time.Time       `json:"maturities"`
	Observations []string          `json:"observations"`

	// Taxes is the full tax catalog, id to title.
	Taxes map[int64]string `json:"taxes"`
}

// Len returns the number of pendencies.
func (c PendencyColumns) Len() int { return len(c.IDs) }

// EmailColumns is a company's email addresses aligned by position with IDs.
type EmailColumns struct {
	IDs       []int64  `json:"ids"`
	Addresses []string `json:"addresses"`
}

// HistoryRecord is a stored notification send.
type HistoryRecord struct {
	Sender    string
	Recipient string
	Log       string
	SentAt    time.Time
	CompanyID int64
}

// HistoryRow is a history record formatted for display.
type HistoryRow struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Log       string `json:"log"`
}

// HistoryColumns is the result of a history query, one slice per column.
type HistoryColumns struct {
	Senders    []string `json:"senders"`
	Recipients []string `json:"recipients"`
	Dates      []string `json:"dates"`
	Times      []string `json:"times"`
	Logs       []string `json:"logs"`
}

// Len returns the number of rows.
func (c HistoryColumns) Len() int { return len(c.Senders) }

func (c *HistoryColumns) append(r HistoryRow) {
	c.Senders = append(c.Senders, r.Sender)
	c.Recipients = append(c.Recipients, r.Recipient)
	c.Dates = append(c.Dates, r.Date)
	c.Times = append(c.Times, r.Time)
	c.Logs = append(c.Logs, r.Log)
}

// HistoryQuery selects history records sent between From and Until, both
// inclusive at day resolution.
type HistoryQuery struct {
	From      time.Time
	Until     time.Time
	CompanyID *int64
}

// Phase is one step of a change set.
type Phase string

const (
	PhaseAdd    Phase = "add"
	PhaseUpdate Phase = "update"
	PhaseRemove Phase = "remove"
)

// ApplyResult reports the rows touched by each phase of a change set.
// Committed lists the phases whose unit of work committed, in order, even
// when they affected zero rows. Empty phases never run and are not listed.
type ApplyResult struct {
	Added     int64   `json:"added"`
	Updated   int64   `json:"updated"`
	Removed   int64   `json:"removed"`
	Committed []Phase `json:"committed,omitempty"`
}

func (r *ApplyResult) record(p Phase, affected int64) {
	switch p {
	case PhaseAdd:
		r.Added = affected
	case PhaseUpdate:
		r.Updated = affected
	case PhaseRemove:
		r.Removed = affected
	}
	r.Committed = append(r.Committed, p)
}
