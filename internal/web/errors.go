package web

// errors.go turns service errors into JSON responses.
//
// The technical error is logged with the request id; the client receives the
// coded message from core.MapError and a status derived from the error kind.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/pendencies/internal/core"
	"github.com/JonMunkholm/pendencies/internal/logging"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`

	// Applied is set when a change set failed after some phases committed.
	Applied *core.ApplyResult `json:"applied,omitempty"`
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	var cce *core.ChangeConflictError
	var pge *pgconn.PgError

	switch {
	case errors.As(err, &cce):
		return http.StatusConflict
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrTooManyApplies):
		return http.StatusServiceUnavailable
	case core.IsValidation(err):
		return http.StatusBadRequest
	case errors.As(err, &pge) && strings.HasPrefix(pge.Code, "23"):
		// Integrity violations: the request conflicts with stored data.
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes its user-facing form.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorResponse(w, r, err, nil)
}

// respondApplyError is respondError for change sets, reporting the phases
// that committed before the failure.
func respondApplyError(w http.ResponseWriter, r *http.Request, err error, res core.ApplyResult) {
	if len(res.Committed) == 0 {
		writeErrorResponse(w, r, err, nil)
		return
	}
	writeErrorResponse(w, r, err, &res)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, err error, applied *core.ApplyResult) {
	status := statusFor(err)
	msg := core.MapError(err)

	logger := logging.FromContext(r.Context())
	attrs := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request error", attrs...)
	} else {
		logger.Warn("request rejected", attrs...)
	}

	writeJSON(w, status, ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
		Field:   msg.Field,
		Applied: applied,
	})
}
