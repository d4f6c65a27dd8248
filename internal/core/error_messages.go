// Package core provides the business logic for pendency and email tracking.
//
// # Error Codes Reference
//
// Errors surfaced to callers carry a code for support reference. Typed
// errors from this package are matched first with errors.As; store errors
// are matched by PostgreSQL SQLSTATE and then by message pattern.
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Invalid amount: value is not an amount like 1.234,56
//	VAL002 - Invalid date: competence is not MM/YYYY or maturity is not DD/MM/YYYY
//	VAL003 - Invalid tax: type is not a tax id
//	VAL004 - Missing field: a required field was not provided
//	VAL005 - Conflicting change: the same id is updated and removed
//	VAL006 - Invalid range: history start date is after the end date
//	VAL007 - Invalid parameter: a request parameter or body is malformed
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Duplicate key (SQLSTATE 23505, "duplicate key")
//	DB003 - Foreign key (SQLSTATE 23503, "violates foreign key")
//	DB004 - Connection refused ("connection refused")
//	DB005 - Connection reset ("connection reset")
//	DB006 - Timeout ("timeout")
//	DB007 - Deadlock (SQLSTATE 40P01, "deadlock")
//	DB008 - Check constraint (SQLSTATE 23514)
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Not found: the company or tax does not exist
//	REQ002 - Request cancelled ("context canceled")
//	REQ003 - Request timeout ("context deadline exceeded")
//
// # Capacity Errors (RATE001-RATE099)
//
//	RATE001 - Too many requests from one client
//	RATE002 - Too many change sets in progress (ErrTooManyApplies)
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check application logs for the original
// technical error.
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
	Field   string // Offending field, when known
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// sqlStateMessages maps PostgreSQL error codes to user messages.
var sqlStateMessages = map[string]UserMessage{
	"23505": {
		Message: "A record with this value already exists",
		Action:  "Review the submitted rows for duplicates",
		Code:    "DB001",
	},
	"23503": {
		Message: "Referenced record does not exist",
		Action:  "Check that the company and tax exist, or remove the pendencies that use them first",
		Code:    "DB003",
	},
	"23514": {
		Message: "A value is outside the allowed range",
		Action:  "Amounts must not be negative",
		Code:    "DB008",
	},
	"40P01": {
		Message: "Database was busy with conflicting operations",
		Action:  "Please try again",
		Code:    "DB007",
	},
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. The first match wins, so specific patterns come first.
var errorPatterns = []errorPattern{
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A record with this value already exists",
			Action:  "Review the submitted rows for duplicates",
			Code:    "DB001",
		},
	},
	{
		pattern: "violates foreign key",
		msg: UserMessage{
			Message: "Referenced record does not exist",
			Action:  "Check that the company and tax exist, or remove the pendencies that use them first",
			Code:    "DB003",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB004",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Submit fewer changes at once or try again later",
			Code:    "REQ003",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB006",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB007",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to a user-facing message.
//
// Example:
//
//	_, err := repo.ApplyChanges(ctx, companyID, change)
//	msg := MapError(err)
//	// msg.Code == "VAL001", msg.Field == "value"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var vfe *ValueFormatError
	var mfe *MissingFieldError
	var ire *InvalidRangeError
	var cce *ChangeConflictError
	var pge *pgconn.PgError

	switch {
	case errors.As(err, &vfe):
		return validationMessage(vfe)
	case errors.As(err, &mfe):
		return UserMessage{
			Message: fmt.Sprintf("Required field %q was not provided", mfe.Field),
			Action:  "Fill in every required field",
			Code:    "VAL004",
			Field:   mfe.Field,
		}
	case errors.As(err, &cce):
		return UserMessage{
			Message: fmt.Sprintf("Record %d is both updated and removed", cce.ID),
			Action:  "Either update or remove the record, not both",
			Code:    "VAL005",
		}
	case errors.As(err, &ire):
		return UserMessage{
			Message: "The start date is after the end date",
			Action:  "Choose a start date on or before the end date",
			Code:    "VAL006",
		}
	case errors.Is(err, ErrTooManyApplies):
		return UserMessage{
			Message: "Too many changes are being saved right now",
			Action:  "Please try again in a few seconds",
			Code:    "RATE002",
		}
	case errors.Is(err, ErrNotFound):
		return UserMessage{
			Message: "Record not found",
			Action:  "Refresh the list and try again",
			Code:    "REQ001",
		}
	case errors.As(err, &pge):
		if msg, ok := sqlStateMessages[pge.Code]; ok {
			return msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

func validationMessage(e *ValueFormatError) UserMessage {
	msg := UserMessage{Field: e.Field}
	switch e.Field {
	case FieldValue.Key():
		msg.Message = fmt.Sprintf("Invalid amount %q", e.Value)
		msg.Action = "Use the format 1.234,56 with a value below 1.000.000.000.000,00"
		msg.Code = "VAL001"
	case FieldCompetence.Key():
		msg.Message = fmt.Sprintf("Invalid competence %q", e.Value)
		msg.Action = "Use the format MM/YYYY"
		msg.Code = "VAL002"
	case FieldMaturity.Key():
		msg.Message = fmt.Sprintf("Invalid maturity %q", e.Value)
		msg.Action = "Use the format DD/MM/YYYY with a real calendar date"
		msg.Code = "VAL002"
	case FieldType.Key():
		msg.Message = fmt.Sprintf("Invalid tax type %q", e.Value)
		msg.Action = "Pick a tax from the catalog"
		msg.Code = "VAL003"
	case BodyField:
		msg.Message = "Invalid request body: " + e.Reason
		msg.Action = "Send a JSON object with only the documented fields"
		msg.Code = "VAL007"
	default:
		msg.Message = fmt.Sprintf("Invalid %s %q", e.Field, e.Value)
		msg.Action = "Check the request parameters"
		msg.Code = "VAL007"
	}
	return msg
}

// IsValidation reports whether err was caused by caller input rather than
// the store.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(MapError(err).Code, "VAL")
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
