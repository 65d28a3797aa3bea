package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/invoicekit/pkg/invoice"
	"github.com/dmitrymomot/invoicekit/pkg/skins"
	"github.com/dmitrymomot/invoicekit/pkg/storage"
)

// Response headers describing style resolution.
const (
	StyleHeader         = "X-Style"
	StyleFallbackHeader = "X-Style-Fallback"
)

type styleInfo struct {
	ID          skins.Style `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
}

type stylesResponse struct {
	Documents []styleInfo `json:"documents"`
	Emails    []styleInfo `json:"emails"`
}

type archivedDocument struct {
	*invoice.Document
	HTML   string          `json:"html,omitempty"`
	Object *storage.Object `json:"object"`
}

type sentEmail struct {
	Number  string      `json:"number"`
	Style   skins.Style `json:"style"`
	To      string      `json:"to"`
	Subject string      `json:"subject"`
}

func (h *Handler) listStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stylesResponse{
		Documents: styleList(h.renderer.Styles(skins.KindDocument)),
		Emails:    styleList(h.renderer.Styles(skins.KindEmail)),
	})
}

func styleList(list []*skins.Skin) []styleInfo {
	out := make([]styleInfo, 0, len(list))
	for _, s := range list {
		out = append(out, styleInfo{ID: s.Style, Name: s.Name, Description: s.Description})
	}
	return out
}

func (h *Handler) renderDocument(w http.ResponseWriter, r *http.Request) {
	inv, err := h.decodeInvoice(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	doc, err := h.renderer.RenderDocument(r.Context(), inv, chi.URLParam(r, "style"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	setStyleHeaders(w, doc.Style, doc.Fallback)

	if store, _ := strconv.ParseBool(r.URL.Query().Get("store")); store {
		if h.store == nil {
			h.writeError(w, r, fmt.Errorf("%w: storage", ErrNotConfigured))
			return
		}
		obj, err := doc.Archive(r.Context(), h.store, h.now())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, archivedDocument{Document: doc, Object: obj})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.HTML))
}

func (h *Handler) renderEmail(w http.ResponseWriter, r *http.Request) {
	inv, err := h.decodeInvoice(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.renderer.RenderEmail(r.Context(), inv, chi.URLParam(r, "style"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	setStyleHeaders(w, msg.Style, msg.Fallback)
	writeJSON(w, http.StatusOK, msg)
}

// sendEmail sends to the "to" query parameter, or the client email.
func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	if h.mailer == nil {
		h.writeError(w, r, fmt.Errorf("%w: email", ErrNotConfigured))
		return
	}
	inv, err := h.decodeInvoice(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.mailer.Send(r.Context(), inv, chi.URLParam(r, "style"), r.URL.Query().Get("to"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	setStyleHeaders(w, msg.Style, msg.Fallback)
	writeJSON(w, http.StatusAccepted, sentEmail{
		Number:  msg.Number,
		Style:   msg.Style,
		To:      msg.To,
		Subject: msg.Subject,
	})
}

func (h *Handler) decodeInvoice(w http.ResponseWriter, r *http.Request) (*invoice.Invoice, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var inv invoice.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrRequestTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return &inv, nil
}

func setStyleHeaders(w http.ResponseWriter, style skins.Style, fallback bool) {
	w.Header().Set(StyleHeader, string(style))
	if fallback {
		w.Header().Set(StyleFallbackHeader, "true")
	}
}
