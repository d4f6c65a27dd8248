package web

// handlers_common.go holds request parsing helpers shared by the handlers.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/pendencies/internal/core"
	"github.com/go-chi/chi/v5"
)

// dateParamLayout is the layout of the history query parameters.
const dateParamLayout = "2006-01-02"

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &core.ValueFormatError{Field: name, Value: raw, Reason: "expected a positive id"}
	}
	return id, nil
}

// dateParam parses a required YYYY-MM-DD query parameter.
func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, &core.MissingFieldError{Field: name}
	}
	t, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		return time.Time{}, &core.ValueFormatError{Field: name, Value: raw, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

// optionalIDParam parses an optional positive integer query parameter.
func optionalIDParam(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, &core.ValueFormatError{Field: name, Value: raw, Reason: "expected a positive id"}
	}
	return &id, nil
}

// decodeJSON decodes a size-limited request body into v.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var mbe *http.MaxBytesError
		var vfe *core.ValueFormatError
		switch {
		case errors.As(err, &mbe):
			return &core.ValueFormatError{Field: core.BodyField, Reason: fmt.Sprintf("request body exceeds %d bytes", mbe.Limit)}
		case errors.Is(err, io.EOF):
			return &core.MissingFieldError{Field: core.BodyField}
		case errors.As(err, &vfe):
			// Row-level value errors raised while decoding keep their field.
			return vfe
		default:
			return &core.ValueFormatError{Field: core.BodyField, Reason: strings.TrimPrefix(err.Error(), "json: ")}
		}
	}
	return nil
}

// clientIP returns the host part of RemoteAddr.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
