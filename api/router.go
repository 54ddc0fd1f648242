package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poiesic/recollect/ai"
	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/enrichment"
	"github.com/poiesic/recollect/platform"
	"github.com/poiesic/recollect/storage"
)

// ownerHeader names the header the authenticating proxy sets for us.
// Authentication itself happens upstream; a request without the header is
// treated as unauthenticated.
const ownerHeader = "X-Owner-Id"

type ownerContextKey struct{}

func withOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerContextKey{}, owner)
}

func ownerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(ownerContextKey{}).(string)
	return owner
}

// Deps carries the collaborators the HTTP surface needs.
type Deps struct {
	Repository storage.ContentRepository
	Enricher   *enrichment.Orchestrator
	Source     platform.SavedPostSource
	Logger     *slog.Logger
}

// NewHandler builds the content API router.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default().With("component", "api")
	}

	r := chi.NewRouter()
	r.Use(requireOwner)

	r.Route("/content", func(r chi.Router) {
		r.Get("/saved", handleSaved(deps))
		r.Post("/extract-text", handleExtractText(deps))
		r.Post("/transcribe", handleTranscribe(deps))
		r.Post("/save", handleSave(deps))
		r.Get("/{id}", handleGet(deps))
		r.Patch("/{id}", handlePatch(deps))
		r.Delete("/{id}", handleDelete(deps))
	})

	return r
}

// requireOwner rejects requests the upstream proxy did not attribute to an
// owner, and stashes the owner for handlers.
func requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get(ownerHeader)
		if owner == "" {
			httpError(w, http.StatusUnauthorized, "authentication_error", "missing %s header", ownerHeader)
			return
		}
		next.ServeHTTP(w, r.WithContext(withOwner(r.Context(), owner)))
	})
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// mapError translates domain errors into status codes. Classification has
// no mapping on purpose: its failures never surface through the API.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httpError(w, http.StatusNotFound, "not_found", "content not found")
	case errors.Is(err, core.ErrMissingOwner),
		errors.Is(err, core.ErrMissingExternalPostID),
		errors.Is(err, core.ErrInvalidMediaType),
		errors.Is(err, core.ErrEmptyPayload),
		errors.Is(err, core.ErrInvalidContentRecord),
		errors.Is(err, enrichment.ErrUnknownPayloadKind):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	case errors.Is(err, ai.ErrExtractionFailed),
		errors.Is(err, ai.ErrTranscriptionFailed):
		httpError(w, http.StatusBadGateway, "api_error", "%v", err)
	default:
		httpError(w, http.StatusInternalServerError, "api_error", "internal error")
	}
}
