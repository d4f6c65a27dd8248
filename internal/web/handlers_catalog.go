package web

import (
	"net/http"

	"github.com/JonMunkholm/pendencies/internal/logging"
)

// companyRequest is the body of company create and rename requests.
type companyRequest struct {
	Name string `json:"name"`
}

// taxRequest is the body of tax create and rename requests.
type taxRequest struct {
	Title string `json:"title"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.service.Companies.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, err := s.service.Companies.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("company created", "company_id", id)
	writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (s *Server) handleRenameCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req companyRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.Companies.Rename(r.Context(), id, req.Name); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.Companies.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("company deleted", "company_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTaxes(w http.ResponseWriter, r *http.Request) {
	taxes, err := s.service.Taxes.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, taxes)
}

func (s *Server) handleCreateTax(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	id, err := s.service.Taxes.Create(r.Context(), req.Title)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (s *Server) handleRenameTax(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taxID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req taxRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.Taxes.Rename(r.Context(), id, req.Title); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTax(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taxID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.service.Taxes.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
