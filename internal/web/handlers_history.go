package web

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/pendencies/internal/core"
)

// appendHistoryRequest records one notification send. CompanyName defaults
// to the company's current name.
type appendHistoryRequest struct {
	Sender      string `json:"sender"`
	CompanyName string `json:"company_name"`
	Log         string `json:"log"`
}

// handleQueryHistory serves GET /api/history?from=YYYY-MM-DD&until=YYYY-MM-DD[&company=ID].
func (s *Server) handleQueryHistory(w http.ResponseWriter, r *http.Request) {
	from, err := dateParam(r, "from")
	if err != nil {
		respondError(w, r, err)
		return
	}
	until, err := dateParam(r, "until")
	if err != nil {
		respondError(w, r, err)
		return
	}
	companyID, err := optionalIDParam(r, "company")
	if err != nil {
		respondError(w, r, err)
		return
	}

	cols, err := s.service.History.Query(r.Context(), core.HistoryQuery{
		From:      from,
		Until:     until,
		CompanyID: companyID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	if cols.Len() == 0 {
		cols = core.HistoryColumns{Senders: []string{}, Recipients: []string{}, Dates: []string{}, Times: []string{}, Logs: []string{}}
	}
	writeJSON(w, http.StatusOK, cols)
}

func (s *Server) handleAppendHistory(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req appendHistoryRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		companies, err := s.service.Companies.List(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		var ok bool
		if name, ok = companies[companyID]; !ok {
			respondError(w, r, core.ErrNotFound)
			return
		}
	}

	if err := s.service.History.Append(r.Context(), req.Sender, name, req.Log, companyID); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
