package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	shared "draftshare-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondDraft(t *testing.T, w http.ResponseWriter, draft *shared.Draft) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(shared.DraftResponse{Draft: draft}))
}

func TestCreateDraftFromText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/drafts", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var req shared.CreateDraftFromTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, shared.SourceTypeText, req.SourceType)
		assert.Equal(t, "hello world", req.SourceText)
		assert.Equal(t, shared.SnsX, req.TargetSns)

		respondDraft(t, w, &shared.Draft{
			Id:         "d1",
			Content:    "generated",
			SourceType: shared.SourceTypeText,
			SourceText: "hello world",
			TargetSns:  shared.SnsX,
			CreatedAt:  time.Now(),
		})
	}))
	defer server.Close()
	t.Setenv("DRAFTSHARE_API_HOST", server.URL)

	draft, apiErr := Client.CreateDraftFromText("hello world", shared.SnsX)
	require.Nil(t, apiErr)
	assert.Equal(t, "d1", draft.Id)
	assert.Equal(t, "generated", draft.Content)
}

func TestCreateDraftFromUrl(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req shared.CreateDraftFromUrlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, shared.SourceTypeUrl, req.SourceType)
		assert.Equal(t, "https://example.com/a", req.SourceUrl)
		assert.Equal(t, shared.SnsBluesky, req.TargetSns)

		respondDraft(t, w, &shared.Draft{Id: "d2", SourceType: shared.SourceTypeUrl, TargetSns: shared.SnsBluesky})
	}))
	defer server.Close()
	t.Setenv("DRAFTSHARE_API_HOST", server.URL)

	draft, apiErr := Client.CreateDraftFromUrl("https://example.com/a", shared.SnsBluesky)
	require.Nil(t, apiErr)
	assert.Equal(t, "d2", draft.Id)
}

func TestCreateDraftFromImage(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("fake png bytes"), 0644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/drafts", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "image", r.MultipartForm.Value["sourceType"][0])
		assert.Equal(t, "x", r.MultipartForm.Value["targetSns"][0])

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake png bytes", string(content))

		respondDraft(t, w, &shared.Draft{Id: "d3", SourceType: shared.SourceTypeImage, ImageUrl: "https://cdn/photo.png"})
	}))
	defer server.Close()
	t.Setenv("DRAFTSHARE_API_HOST", server.URL)

	draft, apiErr := Client.CreateDraftFromImage(imagePath, "image/png", shared.SnsX)
	require.Nil(t, apiErr)
	assert.Equal(t, "d3", draft.Id)
	assert.Equal(t, "https://cdn/photo.png", draft.ImageUrl)
}

func TestCreateDraftFromImageMissingFile(t *testing.T) {
	t.Setenv("DRAFTSHARE_API_HOST", "http://localhost:1")

	_, apiErr := Client.CreateDraftFromImage("/does/not/exist.png", "image/png", shared.SnsX)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Msg, "error opening image")
}

func TestGetDrafts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/drafts", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(shared.ListDraftsResponse{
			Drafts: []*shared.Draft{{Id: "d1"}, {Id: "d2"}},
		}))
	}))
	defer server.Close()
	t.Setenv("DRAFTSHARE_API_HOST", server.URL)

	drafts, apiErr := Client.GetDrafts()
	require.Nil(t, apiErr)
	require.Len(t, drafts, 2)
	assert.Equal(t, "d1", drafts[0].Id)
	assert.Equal(t, "d2", drafts[1].Id)
}

func TestUpdateDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/drafts/d1", r.URL.Path)

		var req shared.UpdateDraftRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "new content", req.Content)

		now := time.Now()
		respondDraft(t, w, &shared.Draft{Id: "d1", Content: "new content", UpdatedAt: &now})
	}))
	defer server.Close()
	t.Setenv("DRAFTSHARE_API_HOST", server.URL)

	draft, apiErr := Client.UpdateDraft("d1", "new content")
	require.Nil(t, apiErr)
	assert.Equal(t, "new content", draft.Content)
	assert.NotNil(t, draft.UpdatedAt)
}

func TestDeleteDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/drafts/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	t.Setenv("DRAFTSHARE_API_HOST", server.URL)

	assert.Nil(t, Client.DeleteDraft("d1"))
}

func TestErrorBodyMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantMsg     string
	}{
		{"json error body", "application/json", `{"error": "image too large"}`, "image too large"},
		{"plain text body", "text/plain", "bad gateway", "bad gateway"},
		{"empty body", "text/plain", "", "request failed with status 502"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", test.contentType)
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(test.body))
			}))
			defer server.Close()
			t.Setenv("DRAFTSHARE_API_HOST", server.URL)

			_, apiErr := Client.CreateDraftFromText("hello", shared.SnsX)
			require.NotNil(t, apiErr)
			assert.Equal(t, test.wantMsg, apiErr.Msg)
			assert.Equal(t, http.StatusBadGateway, apiErr.Status)
		})
	}
}
