package web

import (
	"net/http"

	"github.com/JonMunkholm/pendencies/internal/core"
)

// pendencyListResponse is a company's pendencies formatted for display,
// one slice per column aligned with IDs.
type pendencyListResponse struct {
	IDs          []int64          `json:"ids"`
	Types        []int64          `json:"types"`
	Values       []string         `json:"values"`
	Competences  []string         `json:"competences"`
	Maturities   []string         `json:"maturities"`
	Observations []string         `json:"observations"`
	Taxes        map[int64]string `json:"taxes"`
}

func newPendencyListResponse(cols core.PendencyColumns) pendencyListResponse {
	n := cols.Len()
	resp := pendencyListResponse{
		IDs:          make([]int64, 0, n),
		Types:        make([]int64, 0, n),
		Values:       make([]string, 0, n),
		Competences:  make([]string, 0, n),
		Maturities:   make([]string, 0, n),
		Observations: make([]string, 0, n),
		Taxes:        cols.Taxes,
	}
	for i := 0; i < n; i++ {
		resp.IDs = append(resp.IDs, cols.IDs[i])
		resp.Types = append(resp.Types, cols.Types[i])
		resp.Values = append(resp.Values, core.FormatAmount(cols.Values[i]))
		resp.Competences = append(resp.Competences, core.FormatCompetence(cols.Competences[i]))
		resp.Maturities = append(resp.Maturities, core.FormatMaturity(cols.Maturities[i]))
		resp.Observations = append(resp.Observations, cols.Observations[i])
	}
	return resp
}

func (s *Server) handleListPendencies(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	cols, err := s.service.Pendencies.List(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPendencyListResponse(cols))
}

// handleApplyPendencyChanges applies a change set body:
//
//	{"add": [{"type": "1", "value": "1.000,00", ...}], "update": {"17": {...}}, "remove": [4]}
func (s *Server) handleApplyPendencyChanges(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var change core.Change[core.RawPendency]
	if err := s.decodeJSON(w, r, &change); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.Applies.Acquire(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	defer s.service.Applies.Release()

	res, err := s.service.Pendencies.ApplyChanges(r.Context(), companyID, &change)
	if err != nil {
		respondApplyError(w, r, err, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
