package web

import (
	"net/http"

	"github.com/JonMunkholm/pendencies/internal/core"
)

func (s *Server) handleListEmails(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	cols, err := s.service.Emails.List(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if cols.IDs == nil {
		cols = core.EmailColumns{IDs: []int64{}, Addresses: []string{}}
	}
	writeJSON(w, http.StatusOK, cols)
}

func (s *Server) handleApplyEmailChanges(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var change core.Change[string]
	if err := s.decodeJSON(w, r, &change); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.Applies.Acquire(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	defer s.service.Applies.Release()

	res, err := s.service.Emails.ApplyChanges(r.Context(), companyID, &change)
	if err != nil {
		respondApplyError(w, r, err, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
