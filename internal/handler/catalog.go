package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GET /questions
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	questions, version, err := h.service.Questions()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, QuestionsResponse{Questions: questions, CatalogVersion: version})
}

// GET /programs
func (h *Handler) Programs(w http.ResponseWriter, r *http.Request) {
	programs, version, err := h.service.Programs()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ProgramsResponse{
		Programs:       programs,
		TotalCount:     len(programs),
		CatalogVersion: version,
	})
}

// GET /programs/{programID}
func (h *Handler) Program(w http.ResponseWriter, r *http.Request) {
	program, err := h.service.Program(chi.URLParam(r, "programID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, program)
}

// POST /admin/catalog/reload
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.ReloadCatalog(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ReloadResponse{
		CatalogVersion: snap.Version(),
		Questions:      len(snap.Questions()),
		Programs:       len(snap.Programs()),
	})
}
