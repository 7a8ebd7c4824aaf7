package handler

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/program-finder/internal/domain"
)

const (
	maxLimit    = 50
	maxContrast = 10

	noMatchesMessage = "No strong matches found"
)

// POST /recommendations
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	// Parse and validate limit
	limit, hasLimit, ok := queryInt(r, "limit", 1, maxLimit)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return
	}
	// Parse and validate contrast
	contrast, hasContrast, ok := queryInt(r, "contrast", 0, maxContrast)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid contrast parameter")
		return
	}

	var req RecommendRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	result, err := h.service.Recommend(r.Context(), req.Answers)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	recommended := result.Recommended
	notRecommended := result.NotRecommended
	meta := domain.RecommendationMeta{
		CacheHit:         result.CacheHit,
		CatalogVersion:   result.CatalogVersion,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
		TotalCount:       len(recommended) + len(notRecommended),
		RecommendedCount: len(recommended),
		Issues:           result.Issues,
	}
	if len(recommended) == 0 {
		meta.Message = noMatchesMessage
	}
	if hasLimit && len(recommended) > limit {
		recommended = recommended[:limit]
	}
	if hasContrast && len(notRecommended) > contrast {
		notRecommended = notRecommended[:contrast]
	}

	h.writeJSON(w, http.StatusOK, RecommendationResponse{
		Recommended:    recommended,
		NotRecommended: notRecommended,
		Metadata:       meta,
	})
}
