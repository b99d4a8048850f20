package forms

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/docsynk/formrelay/pkg/binder"
	"github.com/docsynk/formrelay/pkg/email"
	"github.com/docsynk/formrelay/pkg/logger"
)

// Response is the envelope the UI layer depends on.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Reason  string          `json:"reason,omitempty"`
	Data    *Acknowledgment `json:"data,omitempty"`
}

// Handler exposes the pipeline over JSON HTTP. It is a thin adapter: all
// decisions live in the Pipeline so other hosting entry points can mount the
// same pipeline behind their own request translation.
type Handler struct {
	pipeline *Pipeline
	log      *slog.Logger
}

// NewHandler creates the HTTP adapter for a pipeline.
func NewHandler(p *Pipeline, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{pipeline: p, log: log}
}

// Router mounts the form endpoints:
//
//	POST /contact
//	POST /demo-requests
//
// plus OPTIONS preflight for both, answered by the CORS middleware.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	// Preflight requests terminate in corsMiddleware; the handler below only
	// exists so chi matches the route.
	preflight := func(w http.ResponseWriter, r *http.Request) {}

	r.Post("/contact", h.handleContact)
	r.Options("/contact", preflight)
	r.Post("/demo-requests", h.handleDemoRequest)
	r.Options("/demo-requests", preflight)

	return r
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var sub ContactSubmission
	if err := binder.JSON(r, &sub); err != nil {
		h.log.WarnContext(r.Context(), "invalid contact request body", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	ack, err := h.pipeline.SubmitContact(r.Context(), sub)
	if err != nil {
		h.writeError(w, r, "contact", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Contact form submitted successfully",
		Data:    &ack,
	})
}

func (h *Handler) handleDemoRequest(w http.ResponseWriter, r *http.Request) {
	var sub DemoRequestSubmission
	if err := binder.JSON(r, &sub); err != nil {
		h.log.WarnContext(r.Context(), "invalid demo request body", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	ack, err := h.pipeline.SubmitDemoRequest(r.Context(), sub)
	if err != nil {
		h.writeError(w, r, "demo-request", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Demo request submitted successfully",
		Data:    &ack,
	})
}

// writeError maps pipeline errors onto the response contract: 400 with a
// machine-distinguishable reason for validation failures, 500 otherwise.
// Provider internals never reach the client; they are already in the server
// log by the time the error arrives here.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, form string, err error) {
	switch {
	case errors.Is(err, ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Missing required fields",
			Reason:  ReasonMissingFields,
		})
	case errors.Is(err, ErrInvalidEmail):
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid email address",
			Reason:  ReasonInvalidEmail,
		})
	case errors.Is(err, email.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: "Email service is not configured",
		})
	default:
		h.log.ErrorContext(r.Context(), "submission processing failed",
			logger.Form(form),
			logger.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: "Failed to process form submission",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
