package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/actuallystonmai/program-finder/internal/catalog"
	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/actuallystonmai/program-finder/internal/service"
	"github.com/actuallystonmai/program-finder/internal/validation"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service *service.Service
	log     *zap.Logger
}

func NewHandler(svc *service.Service, log *zap.Logger) *Handler {
	return &Handler{service: svc, log: log}
}

// write JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent; the client sees a truncated body
		h.log.Debug("encode response", zap.Int("status", status), zap.Error(err))
	}
}

// writes JSON error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, errCode, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// decodeBody reads a single JSON value into dst and validates it.
// It writes the error response itself and reports whether decoding succeeded.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "invalid_body", "Request body is too large")
			return false
		}
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Could not read request body")
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Request body is empty")
		return false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Request body must contain a single JSON object")
		return false
	}

	if err := validation.Struct(dst); err != nil {
		resp := ErrorResponse{Error: "validation_failed", Message: err.Error()}
		var verr *validation.Error
		if errors.As(err, &verr) {
			resp.Fields = verr.Fields
		}
		h.writeJSON(w, http.StatusUnprocessableEntity, resp)
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter bounded to [lo, hi].
// ok is false when the parameter is present but unusable.
func queryInt(r *http.Request, name string, lo, hi int) (value int, present, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < lo || parsed > hi {
		return 0, true, false
	}
	return parsed, true, true
}

// writeServiceError maps service errors onto status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProgramNotFound):
		h.writeError(w, http.StatusNotFound, "program_not_found", err.Error())
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.writeError(w, http.StatusServiceUnavailable, "catalog_unavailable", "Program catalog is not loaded")
	case errors.Is(err, domain.ErrStaticCatalog):
		h.writeError(w, http.StatusConflict, "catalog_source_static", "Catalog is built in and cannot be reloaded")
	case errors.Is(err, catalog.ErrInvalidCatalog):
		h.writeError(w, http.StatusUnprocessableEntity, "invalid_catalog", err.Error())
	// Request timeout
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		h.writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
	default:
		h.log.Error("request failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
