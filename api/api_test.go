package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/poiesic/recollect/ai"
	"github.com/poiesic/recollect/ai/mock"
	"github.com/poiesic/recollect/enrichment"
	"github.com/poiesic/recollect/platform"
	"github.com/poiesic/recollect/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *mock.MockProvider) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)

	provider := mock.NewMockProvider().(*mock.MockProvider)
	enricher, err := enrichment.NewOrchestrator(provider)
	require.NoError(t, err)

	handler := NewHandler(Deps{
		Repository: repo,
		Enricher:   enricher,
		Source:     platform.NewSimulatedSource(),
	})

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		repo.Close()
		backend.Close()
	})
	return server, provider
}

func doRequest(t *testing.T, method, url, owner string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if owner != "" {
		req.Header.Set("X-Owner-Id", owner)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestMissingOwnerHeader(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/content/saved", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSaveGetPatchDeleteFlow(t *testing.T) {
	server, _ := newTestServer(t)

	// Save
	resp := doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
		"mediaType":      "IMAGE",
		"mediaUrl":       "https://cdn/p1.jpg",
		"notes":          "ver luego",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decodeBody(t, resp)
	content := saved["content"].(map[string]any)
	id := content["id"].(string)
	assert.Equal(t, "ver luego", content["notes"])

	// Get
	resp = doRequest(t, http.MethodGet, server.URL+"/content/"+id, "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)
	assert.Equal(t, "post-1", got["externalPostId"])
	assert.Equal(t, "IMAGE", got["mediaType"])

	// Patch notes to explicitly empty
	resp = doRequest(t, http.MethodPatch, server.URL+"/content/"+id, "alice", map[string]any{
		"notes": "",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	patched := decodeBody(t, resp)
	assert.Equal(t, "", patched["content"].(map[string]any)["notes"])

	// Delete
	resp = doRequest(t, http.MethodDelete, server.URL+"/content/"+id, "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Gone
	resp = doRequest(t, http.MethodGet, server.URL+"/content/"+id, "alice", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveMergeKeepsOmittedFields(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
		"mediaType":      "IMAGE",
		"extractedText":  "receta de pan",
		"categories":     []string{"Recetas"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// A second save that only sends tags must not clobber the rest
	resp = doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
		"tags":           []string{"pan", "horno"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	content := body["content"].(map[string]any)
	assert.Equal(t, "receta de pan", content["extractedText"])
	assert.Len(t, content["categories"], 1)
	assert.Len(t, content["tags"], 2)

	// Explicit empty categories clears them
	resp = doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
		"categories":     []string{},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["content"].(map[string]any)["categories"], 0)
}

func TestSaveValidation(t *testing.T) {
	server, _ := newTestServer(t)

	// Missing externalPostId
	resp := doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"mediaType": "IMAGE",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown media type
	resp = doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
		"mediaType":      "HOLOGRAM",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Creating without a media type at all
	resp = doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOwnerScoping(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "post-1",
		"mediaType":      "IMAGE",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id := decodeBody(t, resp)["content"].(map[string]any)["id"].(string)

	// Another owner sees a 404, not a permission error
	resp = doRequest(t, http.MethodGet, server.URL+"/content/"+id, "bob", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSavedListing(t *testing.T) {
	server, _ := newTestServer(t)

	// Enrich one of the simulated posts
	resp := doRequest(t, http.MethodPost, server.URL+"/content/save", "alice", map[string]any{
		"externalPostId": "123456789",
		"mediaType":      "IMAGE",
		"extractedText":  "texto",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, http.MethodGet, server.URL+"/content/saved", "alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	posts := body["savedPosts"].([]any)
	require.Len(t, posts, 6)

	first := posts[0].(map[string]any)
	assert.Equal(t, "123456789", first["id"])
	assert.Equal(t, true, first["processed"])
	assert.Equal(t, "texto", first["extractedText"])

	second := posts[1].(map[string]any)
	assert.Equal(t, false, second["processed"])
}

func uploadRequest(t *testing.T, url, owner, field string, payload []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "upload.bin")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("X-Owner-Id", owner)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestExtractText(t *testing.T) {
	server, provider := newTestServer(t)
	provider.GetMockExtractor().ExtractTextFunc = func(ctx context.Context, image []byte) (string, error) {
		return "texto de la imagen", nil
	}

	resp := uploadRequest(t, server.URL+"/content/extract-text", "alice", "image", []byte("fake image"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "texto de la imagen", body["text"])
	suggestions := body["suggestions"].(map[string]any)
	assert.NotNil(t, suggestions["categories"])
	assert.NotNil(t, suggestions["tags"])
}

func TestExtractTextFailure(t *testing.T) {
	server, provider := newTestServer(t)
	provider.GetMockExtractor().ExtractTextFunc = func(ctx context.Context, image []byte) (string, error) {
		return "", fmt.Errorf("%w: engine down", ai.ErrExtractionFailed)
	}

	resp := uploadRequest(t, server.URL+"/content/extract-text", "alice", "image", []byte("fake image"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestExtractTextMissingUpload(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/content/extract-text", strings.NewReader(""))
	require.NoError(t, err)
	req.Header.Set("X-Owner-Id", "alice")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranscribe(t *testing.T) {
	server, provider := newTestServer(t)
	provider.GetMockTranscriber().TranscribeFunc = func(ctx context.Context, audio []byte) (string, error) {
		return "hola a todos", nil
	}

	resp := uploadRequest(t, server.URL+"/content/transcribe", "alice", "audio", []byte("fake audio"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "hola a todos", body["transcription"])
}

func TestTranscribeClassificationFailureIsInvisible(t *testing.T) {
	server, provider := newTestServer(t)
	provider.GetMockTranscriber().TranscribeFunc = func(ctx context.Context, audio []byte) (string, error) {
		return "hola", nil
	}
	provider.GetMockClassifier().ClassifyFunc = func(ctx context.Context, text string) (ai.Suggestions, error) {
		return ai.Suggestions{}, fmt.Errorf("%w: bad json", ai.ErrClassificationFailed)
	}

	resp := uploadRequest(t, server.URL+"/content/transcribe", "alice", "audio", []byte("fake audio"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, "hola", body["transcription"])
	suggestions := body["suggestions"].(map[string]any)
	assert.Len(t, suggestions["categories"], 0)
	assert.Len(t, suggestions["tags"], 0)
}

func TestInvalidContentID(t *testing.T) {
	server, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/content/not-a-number", "alice", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
