package handler

import (
	"net/http"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

// POST /recommendations/batch
func (h *Handler) RecommendBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	batch := make([]domain.AnswerSet, len(req.Requests))
	for i, item := range req.Requests {
		batch[i] = item.Answers
	}

	result, err := h.service.RecommendBatch(r.Context(), batch)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
