package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/enrichment"
	"github.com/poiesic/recollect/reconcile"
)

const maxUploadSize = 32 << 20 // 32MB

// contentResponse is the wire form of a stored record. The ID travels as a
// decimal string: it is a full 64-bit value and JSON numbers lose precision
// past 2^53.
type contentResponse struct {
	ID             string    `json:"id"`
	ExternalPostID string    `json:"externalPostId"`
	MediaType      string    `json:"mediaType"`
	MediaURL       string    `json:"mediaUrl"`
	Permalink      string    `json:"permalink"`
	ExtractedText  string    `json:"extractedText"`
	Transcription  string    `json:"transcription"`
	Categories     []string  `json:"categories"`
	Tags           []string  `json:"tags"`
	Notes          string    `json:"notes"`
	SavedAt        time.Time `json:"savedAt"`
	LastProcessed  time.Time `json:"lastProcessed"`
}

func toContentResponse(record *core.ContentRecord) contentResponse {
	categories := record.Categories
	if categories == nil {
		categories = []string{}
	}
	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}
	return contentResponse{
		ID:             strconv.FormatUint(uint64(record.Id), 10),
		ExternalPostID: record.ExternalPostId,
		MediaType:      record.MediaType.String(),
		MediaURL:       record.MediaURL,
		Permalink:      record.Permalink,
		ExtractedText:  record.ExtractedText,
		Transcription:  record.Transcription,
		Categories:     categories,
		Tags:           tags,
		Notes:          record.Notes,
		SavedAt:        record.SavedAt,
		LastProcessed:  record.LastProcessed,
	}
}

type savedPostView struct {
	ID            string    `json:"id"`
	MediaType     string    `json:"mediaType"`
	MediaURL      string    `json:"mediaUrl"`
	Permalink     string    `json:"permalink"`
	Timestamp     time.Time `json:"timestamp"`
	Processed     bool      `json:"processed"`
	ExtractedText string    `json:"extractedText,omitempty"`
	Transcription string    `json:"transcription,omitempty"`
	Categories    []string  `json:"categories"`
	Tags          []string  `json:"tags"`
}

type suggestionsResponse struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// handleSaved lists the owner's saved posts overlaid with stored state.
func handleSaved(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := ownerFrom(ctx)

		posts, err := deps.Source.SavedPosts(ctx, owner)
		if err != nil {
			deps.Logger.Error("error listing saved posts", "err", err)
			httpError(w, http.StatusBadGateway, "api_error", "listing saved posts failed")
			return
		}

		records, err := deps.Repository.ListByOwner(ctx, owner)
		if err != nil {
			mapError(w, err)
			return
		}

		views := reconcile.Posts(posts, records)
		out := make([]savedPostView, len(views))
		for i, view := range views {
			categories := view.Categories
			if categories == nil {
				categories = []string{}
			}
			tags := view.Tags
			if tags == nil {
				tags = []string{}
			}
			out[i] = savedPostView{
				ID:            view.Id,
				MediaType:     view.MediaType.String(),
				MediaURL:      view.MediaURL,
				Permalink:     view.Permalink,
				Timestamp:     view.Timestamp,
				Processed:     view.Processed,
				ExtractedText: view.ExtractedText,
				Transcription: view.Transcription,
				Categories:    categories,
				Tags:          tags,
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{"savedPosts": out})
	}
}

// handleExtractText runs OCR plus classification on an uploaded image.
func handleExtractText(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := readUpload(w, r, "image")
		if !ok {
			return
		}

		result, err := deps.Enricher.Enrich(r.Context(), enrichment.PayloadKindImage, payload)
		if err != nil {
			mapError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"text": result.Text,
			"suggestions": suggestionsResponse{
				Categories: result.Suggestions.Categories,
				Tags:       result.Suggestions.Tags,
			},
		})
	}
}

// handleTranscribe runs transcription plus classification on uploaded audio.
func handleTranscribe(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := readUpload(w, r, "audio")
		if !ok {
			return
		}

		result, err := deps.Enricher.Enrich(r.Context(), enrichment.PayloadKindAudio, payload)
		if err != nil {
			mapError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"transcription": result.Text,
			"suggestions": suggestionsResponse{
				Categories: result.Suggestions.Categories,
				Tags:       result.Suggestions.Tags,
			},
		})
	}
}

// saveRequest mirrors the save endpoint's JSON body. Pointer fields keep
// "omitted" apart from "explicitly empty"; both are meaningful here.
type saveRequest struct {
	ExternalPostID string    `json:"externalPostId"`
	MediaType      string    `json:"mediaType"`
	MediaURL       string    `json:"mediaUrl"`
	Permalink      string    `json:"permalink"`
	ExtractedText  *string   `json:"extractedText"`
	Transcription  *string   `json:"transcription"`
	Categories     *[]string `json:"categories"`
	Tags           *[]string `json:"tags"`
	Notes          *string   `json:"notes"`
}

// handleSave creates or merges a record for an external post.
func handleSave(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		defer r.Body.Close()

		var req saveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.ExternalPostID == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "externalPostId is required")
			return
		}

		fields := core.RecordUpsert{
			MediaURL:      req.MediaURL,
			Permalink:     req.Permalink,
			ExtractedText: req.ExtractedText,
			Transcription: req.Transcription,
			Categories:    req.Categories,
			Tags:          req.Tags,
			Notes:         req.Notes,
		}
		if req.MediaType != "" {
			mediaType, err := core.ParseMediaType(req.MediaType)
			if err != nil {
				mapError(w, err)
				return
			}
			fields.MediaType = mediaType
		}

		record, err := deps.Repository.Upsert(r.Context(), ownerFrom(r.Context()), req.ExternalPostID, fields)
		if err != nil {
			mapError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"content": toContentResponse(record),
		})
	}
}

// handleGet returns a single record.
func handleGet(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}

		record, err := deps.Repository.GetRecord(r.Context(), ownerFrom(r.Context()), id)
		if err != nil {
			mapError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toContentResponse(record))
	}
}

type patchRequest struct {
	Categories *[]string `json:"categories"`
	Tags       *[]string `json:"tags"`
	Notes      *string   `json:"notes"`
}

// handlePatch updates the owner-editable fields of a record.
func handlePatch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}

		var req patchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		record, err := deps.Repository.Patch(r.Context(), ownerFrom(r.Context()), id, core.RecordPatch{
			Categories: req.Categories,
			Tags:       req.Tags,
			Notes:      req.Notes,
		})
		if err != nil {
			mapError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"content": toContentResponse(record),
		})
	}
}

// handleDelete removes a record.
func handleDelete(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := recordID(w, r)
		if !ok {
			return
		}

		if err := deps.Repository.Delete(r.Context(), ownerFrom(r.Context()), id); err != nil {
			mapError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// recordID parses the {id} path parameter.
func recordID(w http.ResponseWriter, r *http.Request) (core.ID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid content id %q", raw)
		return 0, false
	}
	return core.ID(id), true
}

// readUpload pulls one multipart file field out of the request.
func readUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	defer r.Body.Close()

	file, _, err := r.FormFile(field)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "missing %s upload", field)
		return nil, false
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "reading %s upload: %v", field, err)
		return nil, false
	}
	if len(payload) == 0 {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "empty %s upload", field)
		return nil, false
	}
	return payload, true
}
