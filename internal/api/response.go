package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/invoicekit/pkg/email"
	"github.com/dmitrymomot/invoicekit/pkg/environment"
	"github.com/dmitrymomot/invoicekit/pkg/invoice"
	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/storage"
	"github.com/dmitrymomot/invoicekit/pkg/template"
	"github.com/dmitrymomot/invoicekit/pkg/validator"
)

var (
	ErrInvalidBody     = errors.New("invalid request body")
	ErrNotConfigured   = errors.New("feature not configured")
	ErrRequestTooLarge = errors.New("request body too large")
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error     string              `json:"error"`
	Fields    map[string][]string `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code. Validation problems are 400 with
// per-field messages, missing archive objects are 404, skin syntax errors
// are 422, the rest is 500 with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{RequestID: RequestIDFromContext(r.Context())}
	status := http.StatusInternalServerError

	switch {
	case validator.IsValidationError(err):
		status = http.StatusBadRequest
		resp.Error = "invalid invoice"
		resp.Fields = validator.ExtractValidationErrors(err).Map()
	case errors.Is(err, ErrRequestTooLarge):
		status = http.StatusRequestEntityTooLarge
		resp.Error = err.Error()
	case errors.Is(err, ErrInvalidBody),
		errors.Is(err, invoice.ErrNoRecipient),
		errors.Is(err, email.ErrInvalidParams):
		status = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, template.ErrSyntax), errors.Is(err, template.ErrMissingBinding):
		status = http.StatusUnprocessableEntity
		resp.Error = "template error"
	case errors.Is(err, storage.ErrObjectNotFound), errors.Is(err, storage.ErrDirectoryNotFound):
		status = http.StatusNotFound
		resp.Error = "not found"
	case errors.Is(err, storage.ErrInvalidKey):
		status = http.StatusBadRequest
		resp.Error = "invalid archive key"
	case errors.Is(err, ErrNotConfigured):
		status = http.StatusServiceUnavailable
		resp.Error = err.Error()
	default:
		resp.Error = "internal error"
		if environment.IsDevelopment(r.Context()) {
			resp.Error = err.Error()
		}
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", logger.Error(err))
	} else {
		h.logger.DebugContext(r.Context(), "request rejected", logger.Error(err))
	}
	writeJSON(w, status, resp)
}
